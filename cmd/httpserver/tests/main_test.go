//go:build integration

package tests

import (
	"context"
	"database/sql"
	"log"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/cmd/httpserver"
	"github.com/go-petr/pet-ledger/internal/middleware"
	"github.com/go-petr/pet-ledger/pkg/configpkg"
	"github.com/go-petr/pet-ledger/pkg/dbpkg"
)

var (
	server *httpserver.Server
	db     *sql.DB
)

// TestMain calls testMain and passes the returned exit code to os.Exit(). The reason
// that TestMain is basically a wrapper around testMain is because os.Exit() does not
// respect deferred functions, so this configuration allows for a deferred function.
func TestMain(m *testing.M) {
	os.Exit(testMain(m))
}

// testMain returns an integer denoting an exit code to be returned and used in
// TestMain. The exit code 0 denotes success, all other codes denote failure.
func testMain(m *testing.M) int {
	config, err := configpkg.Load("../../../configs")
	if err != nil {
		log.Println("cannot load config:", err)
		return 1
	}

	config.RedisAddress = ""

	zerolog.SetGlobalLevel(zerolog.FatalLevel)
	logger := middleware.NewLogger(config)

	db, err = dbpkg.Setup(config.DBDriver, config.DBSource)
	if err != nil {
		log.Println("cannot setup database:", err)
		return 1
	}
	defer db.Close()

	gin.SetMode(gin.ReleaseMode)

	server, err = httpserver.NewWithDB(context.Background(), db, logger, config)
	if err != nil {
		log.Println("cannot create server:", err)
		return 1
	}

	return m.Run()
}

// Package httpserver manages server creation and api routing.
package httpserver

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/internal/accountdelivery"
	"github.com/go-petr/pet-ledger/internal/accountservice"
	"github.com/go-petr/pet-ledger/internal/eventpublisher"
	"github.com/go-petr/pet-ledger/internal/memstore"
	"github.com/go-petr/pet-ledger/internal/middleware"
	"github.com/go-petr/pet-ledger/internal/pgstore"
	"github.com/go-petr/pet-ledger/internal/transactiondelivery"
	"github.com/go-petr/pet-ledger/internal/transactionservice"
	"github.com/go-petr/pet-ledger/pkg/codepkg"
	"github.com/go-petr/pet-ledger/pkg/configpkg"
	"github.com/go-petr/pet-ledger/pkg/dbpkg"
	"github.com/go-petr/pet-ledger/pkg/web"
)

// ErrUnknownStoreDriver indicates that STORE_DRIVER holds an unsupported value.
var ErrUnknownStoreDriver = errors.New("unknown store driver")

type store interface {
	accountservice.Repo
	transactionservice.Repo
}

// Server holds handlers router, configuration and the resources to release on Close.
type Server struct {
	Engine *gin.Engine
	Config configpkg.Config

	closers []io.Closer
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// Close releases database and redis connections opened by New.
func (s *Server) Close() error {
	var errs []error

	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// New creates Server with the store selected by config.StoreDriver.
func New(ctx context.Context, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	switch config.StoreDriver {
	case configpkg.StoreDriverMemory:
		return build(ctx, memstore.New(), logger, config)
	case configpkg.StoreDriverPostgres:
		db, err := dbpkg.Setup(config.DBDriver, config.DBSource)
		if err != nil {
			return nil, fmt.Errorf("cannot connect to database: %w", err)
		}

		server, err := NewWithDB(ctx, db, logger, config)
		if err != nil {
			_ = db.Close()
			return nil, err
		}

		server.closers = append([]io.Closer{db}, server.closers...)

		return server, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownStoreDriver, config.StoreDriver)
}

// NewWithDB creates Server backed by PostgreSQL over the given connection.
// The connection is not closed by Server.Close.
func NewWithDB(ctx context.Context, conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	return build(ctx, pgstore.New(conn), logger, config)
}

func build(ctx context.Context, st store, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	server := &Server{Config: config}

	var publisher transactionservice.Publisher = eventpublisher.Noop{}

	if config.RedisAddress != "" {
		rdb, err := eventpublisher.NewClient(ctx, config.RedisAddress, config.RedisPassword, config.RedisDB)
		if err != nil {
			return nil, err
		}

		server.closers = append(server.closers, rdb)
		publisher = eventpublisher.NewRedis(rdb, config.EventsStream)
	}

	accountService := accountservice.New(st)
	transactionService := transactionservice.New(st, codepkg.New(), publisher)

	accountHandler := accountdelivery.NewHandler(accountService)
	transactionHandler := transactiondelivery.NewHandler(transactionService)

	if err := registerValidators(); err != nil {
		_ = server.Close()
		return nil, err
	}

	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.POST("/accounts", accountHandler.Create)
	engine.GET("/accounts/:id", accountHandler.Get)

	engine.GET("/accounts/:id/balance", transactionHandler.Balance)
	engine.GET("/accounts/:id/transactions", transactionHandler.RecentTransactions)
	engine.POST("/accounts/:id/deposits/:channel", transactionHandler.Deposit)
	engine.POST("/accounts/:id/purchases/:channel", transactionHandler.Purchase)
	engine.POST("/accounts/:id/withdrawals/:channel", transactionHandler.Withdraw)

	server.Engine = engine

	return server, nil
}

func registerValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	if err := v.RegisterValidation("decimal", web.ValidDecimal); err != nil {
		return errors.New("cannot register decimal validator")
	}

	if err := v.RegisterValidation("variant", accountdelivery.ValidVariant); err != nil {
		return errors.New("cannot register variant validator")
	}

	return nil
}

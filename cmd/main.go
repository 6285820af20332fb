// Package main runs the ledger API to open accounts and mutate their balances.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/go-petr/pet-ledger/cmd/httpserver"
	"github.com/go-petr/pet-ledger/internal/middleware"
	"github.com/go-petr/pet-ledger/pkg/configpkg"

	_ "github.com/lib/pq"
)

const shutdownTimeout = 10 * time.Second

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.NewLogger(config)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gin.SetMode(gin.ReleaseMode)

	server, err := httpserver.New(ctx, logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	srv := &http.Server{
		Addr:              config.ServerAddress,
		Handler:           server,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info().Str("address", config.ServerAddress).Str("store", config.StoreDriver).Msg("LEDGER API SERVER HAS STARTED")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("cannot start server")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown failed")
	}

	if err := server.Close(); err != nil {
		logger.Error().Err(err).Msg("cannot release server resources")
	}

	logger.Info().Msg("LEDGER API SERVER HAS STOPPED")
}

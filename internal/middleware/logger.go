// Package middleware provides gin middlewares shared by all routes.
package middleware

import (
	"io"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"

	"github.com/go-petr/pet-ledger/pkg/configpkg"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// NewLogger returns the application logger configured for the environment.
func NewLogger(config configpkg.Config) zerolog.Logger {
	return newLogger(config, os.Stderr)
}

func newLogger(config configpkg.Config, output io.Writer) zerolog.Logger {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	log := zerolog.New(output).
		Level(zerolog.InfoLevel).
		With().
		Timestamp().
		Logger()

	if config.Environement == "development" {
		log = log.
			Output(zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339}).
			Level(zerolog.TraceLevel).
			With().
			Caller().
			Logger()
	}

	return log
}

// RequestLogger puts a request scoped logger into the request context
// and logs every handled request.
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.Request.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
			c.Request.Header.Set(RequestIDHeader, requestID)
		}

		c.Writer.Header().Set(RequestIDHeader, requestID)

		l := logger.With().Str("request_id", requestID).Logger()
		c.Request = c.Request.WithContext(l.WithContext(c.Request.Context()))

		defer func() {
			if panicVal := recover(); panicVal != nil {
				l.Error().Msgf("panic message: %v", panicVal)
				c.AbortWithStatus(http.StatusInternalServerError)
			}

			status := c.Writer.Status()

			event := l.Info()
			if status >= http.StatusInternalServerError {
				event = l.Error()
			}

			event.
				Str("client_ip", c.ClientIP()).
				Str("method", c.Request.Method).
				Int("status_code", status).
				Str("path", c.Request.URL.Path).
				Dur("latency", time.Since(start)).
				Msg(c.Errors.ByType(gin.ErrorTypePrivate).String())
		}()

		c.Next()
	}
}

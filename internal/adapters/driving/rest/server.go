package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/custodia-labs/unitconv/internal/adapters/driving/ratelimit"
	"github.com/custodia-labs/unitconv/internal/core/ports/driving"
	"github.com/custodia-labs/unitconv/internal/logger"
)

// ErrMissingConverterService is returned when the converter service is not provided.
var ErrMissingConverterService = errors.New("rest: converter service is required")

// Options configures the HTTP server.
type Options struct {
	// RateLimit is requests per second per client; 0 disables limiting.
	RateLimit int
}

// Server serves the JSON API.
type Server struct {
	converter driving.ConverterService
	limiter   *ratelimit.Limiter
	router    *httprouter.Router
}

// NewServer creates a new API server.
func NewServer(converter driving.ConverterService, opts Options) (*Server, error) {
	if converter == nil {
		return nil, ErrMissingConverterService
	}

	s := &Server{
		converter: converter,
		limiter:   ratelimit.New(opts.RateLimit),
		router:    httprouter.New(),
	}
	s.setRoutes()

	return s, nil
}

// Handler returns the full middleware chain: request logging, then rate
// limiting, then routing.
func (s *Server) Handler() http.Handler {
	return requestLogging(s.limiter.Middleware(s.router))
}

// Run serves on addr until the context is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go s.limiter.SweepEvery(ctx, time.Minute)

	// Graceful shutdown when context is cancelled
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("rest: shutdown: %v", err)
		}
	}()

	logger.Info("rest: listening on %s", addr)
	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("serving http on %s: %w", addr, err)
	}
	return nil
}

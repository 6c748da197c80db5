package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sketchwell/collabsync/internal/logger"
)

// Server wraps http.Server with start and graceful-stop helpers used by
// cmd/storaged.
type Server struct {
	server *http.Server
	logger *logger.Logger
}

func NewServer(address string, handler http.Handler, requestTimeout time.Duration, log *logger.Logger) *Server {
	return &Server{
		server: &http.Server{
			Addr:         address,
			Handler:      handler,
			ReadTimeout:  requestTimeout,
			WriteTimeout: requestTimeout,
		},
		logger: log,
	}
}

// Run starts serving and blocks until the listener is closed. A regular
// shutdown is not reported as an error.
func (s *Server) Run() error {
	s.logger.Info().Str("address", s.server.Addr).Msg("http server listening")

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting new connections and waits for in-flight
// requests to finish, bounded by ctx.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

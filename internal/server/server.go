package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

type Server struct {
	httpServer *http.Server
}

func New(port string, handler http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{ //nolint:gosec // No timeouts beyond client defaults.
			Addr:    net.JoinHostPort("", port),
			Handler: handler,
		},
	}
}

func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Start blocks until the server is shut down.
func (s *Server) Start() error {
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}

	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}

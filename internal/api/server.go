package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/migudevelop/openapi-mock-generator/internal/logger"
)

// Server runs a Router on a TCP port.
type Server struct {
	httpServer *http.Server
	logger     logger.Sink
}

// NewServer creates a Server listening on port, all interfaces.
func NewServer(port int, handler http.Handler, sink logger.Sink) *Server {
	if sink == nil {
		sink = logger.Nop()
	}

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", port),
			Handler:      handler,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: sink,
	}
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Start serves until Stop is called. It returns nil after a graceful stop.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln until Stop is called.
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Success(fmt.Sprintf("Mock server started on %s. Press Ctrl+C to quit", ln.Addr().String()))

	err := s.httpServer.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Stop waits for active requests until ctx is done, then closes the server.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down mock server")
	return s.httpServer.Shutdown(ctx)
}

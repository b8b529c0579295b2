package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/troski/troski/internal/pkg/logger"
)

// DefaultShutdownTimeout bounds draining in-flight requests
const DefaultShutdownTimeout = 10 * time.Second

// GracefulServer wraps Echo server with graceful shutdown capabilities
type GracefulServer struct {
	echo            *echo.Echo
	logger          *logger.ZapLogger
	addr            string
	shutdownTimeout time.Duration
	components      *ShutdownManager
}

// NewGracefulServer creates a new server with graceful shutdown. Components registered on
// the returned server are shut down after the HTTP listener, in reverse registration order.
func NewGracefulServer(e *echo.Echo, zapLogger *logger.ZapLogger, addr string, shutdownTimeout time.Duration) *GracefulServer {
	if shutdownTimeout <= 0 {
		shutdownTimeout = DefaultShutdownTimeout
	}
	return &GracefulServer{
		echo:            e,
		logger:          zapLogger,
		addr:            addr,
		shutdownTimeout: shutdownTimeout,
		components:      NewShutdownManager(zapLogger),
	}
}

// Register adds a component cleanup to run on shutdown
func (s *GracefulServer) Register(name string, fn func(context.Context) error) {
	s.components.Register(name, fn)
}

// Run serves until ctx is cancelled or the listener fails, then shuts everything down
func (s *GracefulServer) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", logger.String("address", s.addr))
		if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		s.logger.Info("Received shutdown signal")
	case err, ok := <-errCh:
		if ok {
			s.logger.Error("HTTP server stopped", logger.Err(err))
			serveErr = err
		}
	}

	if err := s.Shutdown(); err != nil {
		return err
	}
	return serveErr
}

// Shutdown drains the HTTP server, then the registered components
func (s *GracefulServer) Shutdown() error {
	s.logger.Info("Shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", logger.Err(err))
		return err
	}

	if err := s.components.Shutdown(ctx); err != nil {
		return err
	}

	s.logger.Info("Server shutdown completed")
	return nil
}

type component struct {
	name string
	fn   func(context.Context) error
}

// ShutdownManager runs cleanup functions of long lived components
type ShutdownManager struct {
	mu         sync.Mutex
	logger     *logger.ZapLogger
	components []component
}

// NewShutdownManager creates a new shutdown manager
func NewShutdownManager(zapLogger *logger.ZapLogger) *ShutdownManager {
	return &ShutdownManager{logger: zapLogger}
}

// Register adds a cleanup function to be called during shutdown
func (sm *ShutdownManager) Register(name string, fn func(context.Context) error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.components = append(sm.components, component{name: name, fn: fn})
}

// Shutdown runs every cleanup in reverse order. A failing component does not stop the rest;
// all failures are returned joined.
func (sm *ShutdownManager) Shutdown(ctx context.Context) error {
	sm.mu.Lock()
	components := sm.components
	sm.components = nil
	sm.mu.Unlock()

	sm.logger.Info("Starting graceful shutdown of components", logger.Int("components", len(components)))

	var errs []error
	for i := len(components) - 1; i >= 0; i-- {
		c := components[i]
		if err := c.fn(ctx); err != nil {
			sm.logger.Error("Error during component shutdown",
				logger.String("component", c.name),
				logger.Err(err))
			errs = append(errs, err)
		}
	}

	sm.logger.Info("All components shutdown completed")
	return errors.Join(errs...)
}

package site

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/oracledocs/oracledocs.dev/internal/platform/timeouts"
	sitestorage "github.com/oracledocs/oracledocs.dev/internal/services/site/storage"
	"github.com/oracledocs/oracledocs.dev/internal/services/site/storage/sqlite"
)

// Config defines the inputs for the site server.
type Config struct {
	// HTTPAddr is the listen address.
	HTTPAddr string
	// StoragePath is the sqlite file for page feedback. When empty the
	// feedback endpoints run in a degraded mode and report unavailability.
	StoragePath string
}

// Server hosts the documentation HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	store      sitestorage.Store
}

// NewServer builds a configured site server.
//
// Feedback storage is optional by design: the site still serves the
// documentation catalog when no storage path is configured.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}

	var store sitestorage.Store
	if path := strings.TrimSpace(config.StoragePath); path != "" {
		opened, err := sqlite.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open feedback store: %w", err)
		}
		store = opened
	}

	handler, err := NewHandler(config, store)
	if err != nil {
		if store != nil {
			_ = store.Close()
		}
		return nil, fmt.Errorf("build handler: %w", err)
	}

	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           handler,
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	return &Server{
		httpAddr:   httpAddr,
		httpServer: httpServer,
		store:      store,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("site server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("site listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases resources held by the server.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			log.Printf("close feedback store: %v", err)
		}
	}
}

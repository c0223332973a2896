package emulator

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/routerctl/routerctl/internal/log"
)

// Server represents the emulator API server
type Server struct {
	httpServer *http.Server
	store      *Store
}

// NewServer creates a new emulator server serving the given store.
func NewServer(store *Store, bindAddr string) *Server {
	return &Server{
		store: store,
		httpServer: &http.Server{
			Addr:         bindAddr,
			Handler:      NewRouter(store),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// Start starts the emulator server and blocks until it is shut down.
func (s *Server) Start() error {
	log.Infof("[API] Starting emulator on %s", s.httpServer.Addr)
	log.Infof("[API] Example: curl http://%s/compute/v1/projects/demo-project/regions/us-central1/routers", s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// Stop gracefully stops the emulator server.
func (s *Server) Stop(ctx context.Context) error {
	log.Infof("[API] Shutting down emulator...")
	return s.httpServer.Shutdown(ctx)
}

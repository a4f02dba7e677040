package server

import (
	"context"
	"net"
	"net/http"

	"github.com/vibe-gaming/esp-integrations/internal/config"
)

const readHeaderTimeoutDivisor = 4

type Server struct {
	httpServer *http.Server
}

// NewServer builds the HTTP server. cfg.HttpServer.Timeout bounds a whole request,
// including the outbound ESP calls made while serving it.
func NewServer(cfg *config.Config, handler http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + cfg.HttpServer.Port,
			Handler:           handler,
			ReadHeaderTimeout: cfg.HttpServer.Timeout / readHeaderTimeoutDivisor,
			ReadTimeout:       cfg.HttpServer.Timeout,
			WriteTimeout:      cfg.HttpServer.Timeout,
			IdleTimeout:       cfg.HttpServer.IdleTimeout,
		},
	}
}

func (s *Server) Run() error {
	return s.httpServer.ListenAndServe()
}

// Serve accepts connections on an existing listener.
func (s *Server) Serve(l net.Listener) error {
	return s.httpServer.Serve(l)
}

func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

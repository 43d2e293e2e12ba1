// Package server exposes the assistant and catalog over HTTP.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/techstore/assistant/internal/catalog"
	"github.com/techstore/assistant/internal/chat"
	"github.com/techstore/assistant/internal/config"
)

type Server struct {
	chat       *chat.Service
	catalog    *catalog.Store
	httpServer *http.Server
}

func New(cfg *config.Config, chatSvc *chat.Service, store *catalog.Store) *Server {
	s := &Server{chat: chatSvc, catalog: store}
	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: s.Router(),
	}
	return s
}

// Router assembles the API routes with logging, recovery, CORS and a
// request timeout.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(RequestLogger)
	r.Use(Recover)
	r.Use(CORS)
	r.Use(chimiddleware.Timeout(config.RequestTimeout))

	r.Route("/api", func(r chi.Router) {
		r.Post("/chatbot", s.handleChat)
		r.Post("/chatbot/clear", s.handleClear)
		r.Get("/products", s.handleProducts)
		r.Get("/product/{id}", s.handleProduct)
		r.Post("/cart", s.handleCartAdd)
		r.Get("/health", s.handleHealth)
	})

	return r
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"path"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/nesc-lab/paperpage/internal/livereload"
	"github.com/nesc-lab/paperpage/internal/paper"
	"github.com/nesc-lab/paperpage/internal/render"
)

// LiveReloadPath is the websocket endpoint pages connect to.
const LiveReloadPath = "/livereload"

// Config holds server configuration.
type Config struct {
	Port       int
	AssetsDir  string        // local media served under /
	AssetBase  string        // URL prefix for local media, e.g. "static"
	AllowAll   bool          // allow all CORS origins
	LiveReload bool          // enable the reload websocket
	CopyReset  time.Duration // copy button confirmation window
}

// Server is the local preview server for the project page.
type Server struct {
	cfg        Config
	renderer   *render.Renderer
	paper      atomic.Pointer[paper.Paper]
	hub        *livereload.Hub
	router     chi.Router
	httpServer *http.Server
}

// New creates a server that serves a copy of p until SetPaper replaces it.
func New(cfg Config, p *paper.Paper) (*Server, error) {
	opts := render.Options{CopyReset: cfg.CopyReset, AssetBase: cfg.AssetBase}
	if cfg.LiveReload {
		opts.LiveReload = LiveReloadPath
	}
	r, err := render.New(opts)
	if err != nil {
		return nil, err
	}

	s := &Server{cfg: cfg, renderer: r}
	if cfg.LiveReload {
		s.hub = livereload.NewHub()
	}
	s.paper.Store(p.Clone())
	s.router = s.buildRouter()
	return s, nil
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// The reload socket outlives any request timeout.
	if s.hub != nil {
		r.Handle(LiveReloadPath, s.hub)
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"status":"ok"}`))
		})

		r.Get("/", s.handleIndex)
		r.Get("/"+render.StylesheetName, staticHandler("text/css; charset=utf-8", render.Stylesheet()))
		r.Get("/"+render.ScriptName, staticHandler("application/javascript; charset=utf-8", render.Script()))
		r.Get("/citation.bib", s.handleCitation)
		r.Get("/api/paper", s.handlePaper)

		if s.cfg.AssetsDir != "" {
			fs := http.FileServer(http.Dir(s.cfg.AssetsDir))
			if base := strings.Trim(path.Clean("/"+s.cfg.AssetBase), "/"); base != "" {
				r.Handle("/"+base+"/*", http.StripPrefix("/"+base, fs))
			} else {
				r.Handle("/*", fs)
			}
		}
	})

	return r
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.renderer.Render(&buf, s.Paper()); err != nil {
		log.Printf("server: rendering page: %v", err)
		http.Error(w, "rendering page failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

func (s *Server) handleCitation(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(s.Paper().Citation))
}

func (s *Server) handlePaper(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.Paper()); err != nil {
		log.Printf("server: encoding paper: %v", err)
	}
}

func staticHandler(contentType string, body []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Write(body)
	}
}

// Paper returns the record currently being served.
func (s *Server) Paper() *paper.Paper { return s.paper.Load() }

// SetPaper replaces the served record with a copy of p and tells connected
// pages to reload.
func (s *Server) SetPaper(p *paper.Paper) {
	s.paper.Store(p.Clone())
	if s.hub != nil {
		n := s.hub.Broadcast()
		log.Printf("server: content reloaded, notified %d page(s)", n)
	}
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// Hub returns the live reload hub, or nil when live reload is off.
func (s *Server) Hub() *livereload.Hub { return s.hub }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("paperpage server listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.hub != nil {
		s.hub.Close()
	}
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

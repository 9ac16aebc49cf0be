package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/contentcycle/contentcycle/pkg/domain"
	"github.com/contentcycle/contentcycle/pkg/llm"
	"github.com/contentcycle/contentcycle/pkg/pipeline"
	"github.com/contentcycle/contentcycle/pkg/session"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/processor.go -pkg mocks -skip-ensure -fmt goimports . Processor
//go:generate moq -out mocks/editor.go -pkg mocks -skip-ensure -fmt goimports . Editor
//go:generate moq -out mocks/url_extractor.go -pkg mocks -skip-ensure -fmt goimports . URLExtractor

// maxUploadSize bounds the whole multipart request body; individual files
// are capped separately by the extractor
const maxUploadSize = 64 * 1024 * 1024

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	processor Processor
	editor    Editor
	urls      URLExtractor
	store     session.Store
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Processor runs the content-repurposing pipeline
type Processor interface {
	Configured() bool
	Process(ctx context.Context, req pipeline.Request) (*domain.ProcessedResult, error)
}

// Editor applies chat-based edits to generated content
type Editor interface {
	Edit(ctx context.Context, req llm.EditRequest) (*llm.EditResult, error)
}

// URLExtractor fetches and extracts text from a web page
type URLExtractor interface {
	Extract(ctx context.Context, urlStr string) (string, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, processor Processor, editor Editor, urls URLExtractor, store session.Store, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		processor: processor,
		editor:    editor,
		urls:      urls,
		store:     store,
		version:   version,
		debug:     debug,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("contentcycle", "contentcycle", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(maxUploadSize))
	s.router.Use(corsMiddleware)
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.HandleFunc("POST /process", s.processHandler)
	s.router.HandleFunc("POST /chatbot", s.chatbotHandler)

	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /result", s.resultHandler)
		r.HandleFunc("DELETE /result", s.clearResultHandler)
	})
}

// corsMiddleware applies permissive CORS headers and answers preflight
// requests directly
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// resultHandler returns the last processed run, if any
func (s *Server) resultHandler(w http.ResponseWriter, r *http.Request) {
	result, ok := s.store.Get()
	if !ok {
		renderError(w, r, fmt.Errorf("no processed result available"), http.StatusNotFound)
		return
	}
	renderJSON(w, r, http.StatusOK, result)
}

// clearResultHandler empties the single-slot result store
func (s *Server) clearResultHandler(w http.ResponseWriter, _ *http.Request) {
	s.store.Clear()
	w.WriteHeader(http.StatusNoContent)
}

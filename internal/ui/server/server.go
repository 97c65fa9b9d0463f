// Package server serves the directory site's static pages and wasm bundle.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Its-donkey/ai-directory/logging"
)

// Options configures the site server.
type Options struct {
	Listen      string
	Dir         string
	CORSOrigins []string
	Logger      *logging.Logger
}

// Server wraps the router with the settings it was built from.
type Server struct {
	opts   Options
	logger *logging.Logger
	router chi.Router
}

// New validates the site directory and builds the router.
func New(opts Options) (*Server, error) {
	info, err := os.Stat(opts.Dir)
	if err != nil {
		return nil, fmt.Errorf("site directory %s: %w", opts.Dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("site directory %s is not a directory", opts.Dir)
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	s := &Server{opts: opts, logger: logger}
	s.router = s.buildRouter()
	return s, nil
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	if len(s.opts.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: s.opts.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		if _, err := os.Stat(filepath.Join(s.opts.Dir, "favicon.ico")); err != nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		http.ServeFile(w, r, filepath.Join(s.opts.Dir, "favicon.ico"))
	})
	r.Handle("/*", staticHandler(s.opts.Dir))
	return r
}

// Handler returns the router wrapped in request logging.
func (s *Server) Handler() http.Handler {
	return logging.WithHTTPLogging(s.logger, s.router)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.opts.Listen,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	s.logger.Info("server", "serving site", map[string]any{
		"listen": s.opts.Listen,
		"dir":    s.opts.Dir,
	})

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	}
}

func staticHandler(root string) http.Handler {
	fileServer := http.FileServer(http.Dir(root))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" || r.URL.Path == "" {
			http.ServeFile(w, r, filepath.Join(root, "index.html"))
			return
		}
		if strings.HasSuffix(r.URL.Path, ".wasm") {
			w.Header().Set("Content-Type", "application/wasm")
		}
		fileServer.ServeHTTP(w, r)
	})
}

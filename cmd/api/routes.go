package main

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/trikaaldarshi/Geeta-wisdom/internal/auth"
	"github.com/trikaaldarshi/Geeta-wisdom/internal/httpx"
	"github.com/trikaaldarshi/Geeta-wisdom/internal/metrics"
	"github.com/trikaaldarshi/Geeta-wisdom/internal/override"
	"github.com/trikaaldarshi/Geeta-wisdom/internal/verse"
)

type server struct {
	logger    *zap.Logger
	metrics   *metrics.Collector
	verses    *verse.HTTPHandler
	overrides *override.HTTPHandler
	admin     *auth.HTTPHandler
	verifier  httpx.TokenVerifier
	// ready reports whether dependencies can serve traffic.
	ready func(ctx context.Context) error
}

func (s *server) routes() *http.ServeMux {
	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := s.ready(ctx); err != nil {
			http.Error(w, "not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
	router.Handle("GET /metrics", s.metrics.Handler())

	router.HandleFunc("GET /v1/verses/{chapter}/{verse}", s.verses.Verse)
	router.HandleFunc("GET /v1/search", s.verses.Search)
	router.HandleFunc("POST /v1/chat", s.verses.Chat)
	router.HandleFunc("GET /v1/chapters", s.verses.Chapters)
	router.HandleFunc("GET /v1/chapters/{chapter}", s.verses.Chapter)
	router.HandleFunc("GET /v1/share", s.verses.Share)

	router.HandleFunc("POST /v1/admin/login", s.admin.Login)

	protected := httpx.AuthMiddleware(s.verifier, auth.RoleAdmin)
	router.Handle("GET /v1/admin/me", protected(http.HandlerFunc(s.admin.Me)))
	router.Handle("GET /v1/admin/verses", protected(http.HandlerFunc(s.overrides.List)))
	router.Handle("GET /v1/admin/verses/export", protected(http.HandlerFunc(s.overrides.Export)))
	router.Handle("POST /v1/admin/verses/import", protected(http.HandlerFunc(s.overrides.Import)))
	router.Handle("GET /v1/admin/verses/{chapter}/{verse}", protected(http.HandlerFunc(s.overrides.Get)))
	router.Handle("PUT /v1/admin/verses/{chapter}/{verse}", protected(http.HandlerFunc(s.overrides.Put)))
	router.Handle("DELETE /v1/admin/verses/{chapter}/{verse}", protected(http.HandlerFunc(s.overrides.Delete)))

	return router
}

// observeRoute feeds the access log into the metrics collector, labelled by
// mux pattern. It relies on the mux setting r.Pattern on the request it was
// handed, so no middleware between the access log and the mux may clone the
// request.
func (s *server) observeRoute(r *http.Request, status int, elapsed time.Duration) {
	route := r.Pattern
	if route == "" {
		route = "unmatched"
	}
	s.metrics.ObserveHTTP(r.Method, route, status, elapsed)
}

type middlewareOptions struct {
	corsOrigins  []string
	maxBodyBytes int64
	rateLimit    func(http.Handler) http.Handler
}

func (s *server) handler(opts middlewareOptions) http.Handler {
	mws := []func(http.Handler) http.Handler{
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware(s.logger, s.observeRoute),
		httpx.RecoveryMiddleware(s.logger),
		httpx.CORSMiddleware(opts.corsOrigins),
		httpx.SecurityHeadersMiddleware,
		httpx.RequestSizeLimitMiddleware(opts.maxBodyBytes),
	}
	if opts.rateLimit != nil {
		mws = append(mws, opts.rateLimit)
	}
	return httpx.Chain(s.routes(), mws...)
}

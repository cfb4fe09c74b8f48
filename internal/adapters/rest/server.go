package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	core_port "github.com/pr-poehali-dev/real-estate-venture-1/internal/core/port"
)

type ServerConfig struct {
	Port               string
	CORSAllowedOrigins []string
	RateLimit          RateLimitConfig
}

type Server struct {
	httpServer *http.Server
	limiter    *RateLimiter
	logger     core_port.LoggerPort
}

// NewServer собирает роутер: JSON API под /api/v1, страница сайта - на корне.
func NewServer(cfg ServerConfig,
	getInfoHandlers *GetInfoHandler,
	filtersHandlers *FilterHandler,
	contentHandlers *ContentHandler,
	site http.Handler,
	baseLogger core_port.LoggerPort) *Server {

	limiter := NewRateLimiter(cfg.RateLimit, 10*time.Minute, 30*time.Minute)

	r := chi.NewRouter()
	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", TraceIDHeader},
			ExposedHeaders: []string{TraceIDHeader},
			MaxAge:         300,
		}))
		r.Use(limiter.Limit)

		r.Get("/objects", getInfoHandlers.FindObjects)
		r.Get("/objects/{objectID}", getInfoHandlers.GetObjectDetails)
		r.Get("/new-developments", getInfoHandlers.GetNewDevelopments)

		r.Get("/filters/options", filtersHandlers.GetFilterOptions)
		r.Get("/filters/defaults", filtersHandlers.GetFilterDefaults)
		r.Get("/dictionaries", filtersHandlers.GetDictionaries)

		r.Get("/content", contentHandlers.GetContent)
	})

	if site != nil {
		r.Mount("/", site)
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		},
		limiter: limiter,
		logger:  baseLogger,
	}
}

// Handler отдает роутер целиком (для httptest)
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", core_port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	defer s.limiter.Close()
	return s.httpServer.Shutdown(ctx)
}

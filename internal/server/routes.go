package server

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/svcbase/item-service/internal/commons"
	"github.com/svcbase/item-service/internal/handler"
	"github.com/svcbase/item-service/internal/health"
	api_middleware "github.com/svcbase/item-service/internal/middleware"
	"github.com/svcbase/item-service/internal/service"
)

func (s *Server) registerRoutes(itemService service.ItemServiceInterface, checkers []health.Checker) {
	router := chi.NewRouter()
	router.Use(api_middleware.RequestIDMiddleware)
	if s.config.Debug {
		router.Use(middleware.Logger)
	}
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.config.AllowedHosts,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", api_middleware.RequestIDHeader},
		MaxAge:         commons.CORSMaxAge,
	}))
	router.Use(api_middleware.MetricsMiddleware(s.metrics))

	healthHandler := handler.NewHealthHandler(handler.ApplicationInfo{
		Name:        s.config.AppName,
		Version:     s.config.AppVersion,
		Environment: s.config.Environment,
	}, s.instanceID.String(), checkers...)
	itemHandler := handler.NewItemHandler(itemService)
	apiHandler := handler.NewAPIHandler(s.config.AppVersion, s.config.Environment)

	router.Route("/health", func(r chi.Router) {
		r.Get("/", healthHandler.HandleHealth)
		r.Get("/ready", healthHandler.HandleReadiness)
		r.Get("/live", healthHandler.HandleLiveness)
	})
	router.Handle("/metrics", s.metrics.Handler())
	router.Get("/hello-world", apiHandler.HandleHelloWorld)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/", apiHandler.HandleRoot)
		r.Get("/status", apiHandler.HandleStatus)
		r.Get("/example", apiHandler.HandleExample)
		r.Route("/items", func(r chi.Router) {
			r.Get("/", itemHandler.ListItems)
			r.With(api_middleware.RateLimitMiddleware).Post("/", itemHandler.CreateItem)
			r.Get("/{id}", itemHandler.GetItem)
			r.With(api_middleware.RateLimitMiddleware).Put("/{id}", itemHandler.UpdateItem)
			r.With(api_middleware.RateLimitMiddleware).Delete("/{id}", itemHandler.DeleteItem)
		})
	})

	s.router = router
}

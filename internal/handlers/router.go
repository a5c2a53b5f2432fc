package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Lixing-Zhang/restaurant-backend/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// RouterConfig holds what NewRouter needs to build the HTTP surface
type RouterConfig struct {
	Logger         *slog.Logger
	AllowedOrigins []string
	Menu           *MenuHandler
	Orders         *OrderHandler
	Health         *HealthHandler
}

// NewRouter wires middleware and routes
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", cfg.Health.ServeHTTP)

	r.Route("/menu_items", func(r chi.Router) {
		r.Get("/", cfg.Menu.ListMenuItems)
		r.Post("/", cfg.Menu.AddMenuItem)
		r.Get("/{itemId}", cfg.Menu.GetMenuItem)
		r.Put("/{itemId}", cfg.Menu.UpdateMenuItem)
		r.Delete("/{itemId}", cfg.Menu.DeleteMenuItem)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", cfg.Orders.ListOrders)
		r.Post("/", cfg.Orders.PlaceOrder)
		r.Get("/review", cfg.Orders.ReviewOrders)
		r.Put("/{orderId}", cfg.Orders.UpdateOrder)
	})

	return r
}

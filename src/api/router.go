package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"spendwise-server/src/config"
	"spendwise-server/src/handlers"
	"spendwise-server/src/middleware"
	"spendwise-server/src/store"
)

func NewRouter(st store.Store, cfg config.Config) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", handlers.Register(st))
		r.Post("/login", handlers.Login(st, cfg))

		// Protected routes
		r.With(middleware.JWTAuthMiddleware([]byte(cfg.JWTSecret))).Group(func(r chi.Router) {
			r.Get("/expenses", handlers.GetExpenses(st))
			r.Post("/expenses", handlers.CreateExpense(st))
			r.Put("/expenses/{expense_id}", handlers.UpdateExpense(st))
			r.Delete("/expenses/{expense_id}", handlers.DeleteExpense(st))

			r.Get("/dashboard", handlers.GetDashboard(st))
		})
	})

	return r
}

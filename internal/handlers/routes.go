package handlers

import (
	"net/http"

	"github.com/bkkdevs/seminar-registration-api/internal/auth"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func RegisterRoutes(r *chi.Mux, authHandler *auth.AuthHandler, registrationHandler *RegistrationHandler, adminHandler *AdminHandler) {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Initialize Huma API
	config := huma.DefaultConfig("Seminar Registration API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"cookieAuth": {
			Type: "apiKey",
			In:   "cookie",
			Name: auth.CookieName,
		},
	}
	api := humachi.New(r, config)

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	huma.Post(api, "/register", registrationHandler.HandleRegister)
	huma.Get(api, "/check", registrationHandler.HandleCheck)

	// Admin routes
	huma.Post(api, "/admin/auth", authHandler.HandleLogin)
	huma.Get(api, "/admin/registrations", adminHandler.HandleListRegistrations, func(o *huma.Operation) {
		o.Security = []map[string][]string{{"cookieAuth": {}}}
	})

	r.Group(func(r chi.Router) {
		r.Use(authHandler.AuthMiddleware)
		r.Get("/admin/registrations/export", adminHandler.HandleExportCSV)
	})
}

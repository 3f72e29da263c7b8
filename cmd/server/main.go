package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/bkkdevs/seminar-registration-api/internal/auth"
	"github.com/bkkdevs/seminar-registration-api/internal/config"
	"github.com/bkkdevs/seminar-registration-api/internal/database"
	"github.com/bkkdevs/seminar-registration-api/internal/handlers"
	"github.com/bkkdevs/seminar-registration-api/internal/notifier"
	"github.com/bkkdevs/seminar-registration-api/internal/store"
	"github.com/bwmarrin/discordgo"
	"github.com/go-chi/chi/v5"
)

func main() {
	// Load Configuration
	cfg := config.LoadConfig()

	// Connect to Database
	db := database.Connect(cfg)
	if err := database.Seed(db, cfg); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	st := store.New(db)

	// Initialize Notifiers
	var notifiers []notifier.Notifier
	if cfg.EmailAPIKey != "" {
		notifiers = append(notifiers, notifier.NewEmailNotifier(cfg.EmailAPIURL, cfg.EmailAPIKey, cfg.EmailFrom, cfg.AppURL))
	} else {
		log.Printf("EMAIL_API_KEY not set, confirmation emails disabled")
	}
	if cfg.DiscordBotToken != "" && cfg.DiscordNotificationsChannelID != "" {
		session, err := discordgo.New("Bot " + cfg.DiscordBotToken)
		if err != nil {
			log.Printf("Discord notifier not initialized: %v", err)
		} else {
			notifiers = append(notifiers, notifier.NewDiscordNotifier(session, cfg.DiscordNotificationsChannelID))
		}
	}

	// Initialize Handlers
	authHandler := auth.NewAuthHandler(cfg)
	registrationHandler := handlers.NewRegistrationHandler(st, notifiers...)
	adminHandler := handlers.NewAdminHandler(st, authHandler)

	// Initialize Router
	r := chi.NewRouter()

	// Register Routes
	handlers.RegisterRoutes(r, authHandler, registrationHandler, adminHandler)

	// Start Server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

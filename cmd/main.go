package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"schoolms/config"
	"schoolms/db"
	"schoolms/handlers"
	"schoolms/middleware"
	"schoolms/notifier"
	activitiessvc "schoolms/services/activities"
	announcementssvc "schoolms/services/announcements"
	teacherssvc "schoolms/services/teachers"
	"schoolms/services/txmanager"
)

// Retention window before expired announcements get swept away
const announcementRetention = 30 * 24 * time.Hour

func main() {
	if err := run(); err != nil {
		log.Printf("❌ Fatal error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	// Initialize error alert middleware
	alertMiddleware := middleware.NewErrorAlertMiddleware(middleware.SlackAlertConfig{
		WebhookURL:  cfg.SlackConfig.AlertWebhookURL,
		Environment: cfg.Environment,
		AppName:     "schoolms",
		LogsURL:     cfg.ServerLogsURL,
	})

	// Initialize database connection
	dbConn, err := db.NewConnection(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	if err := db.EnsureSchema(context.Background(), dbConn, cfg.DatabaseSchema); err != nil {
		return err
	}

	// Initialize repositories with shared connection
	teachersRepo := db.NewPostgresTeachersRepository(dbConn, cfg.DatabaseSchema)
	activitiesRepo := db.NewPostgresActivitiesRepository(dbConn, cfg.DatabaseSchema)
	announcementsRepo := db.NewPostgresAnnouncementsRepository(dbConn, cfg.DatabaseSchema)

	// Load example data so a fresh instance is usable immediately
	if err := db.SeedExampleData(context.Background(), teachersRepo, activitiesRepo, announcementsRepo); err != nil {
		return err
	}

	// Initialize transaction manager
	txManager := txmanager.NewTransactionManager(dbConn)

	teachersService := teacherssvc.NewTeachersService(teachersRepo)
	activitiesService := activitiessvc.NewActivitiesService(activitiesRepo, txManager)
	announcementsService := announcementssvc.NewAnnouncementsService(announcementsRepo)

	// Initialize announcement fan-out to Slack/Discord
	notifier.Init(
		cfg.SlackConfig.AnnouncementsWebhookURL,
		cfg.DiscordConfig.BotToken,
		cfg.DiscordConfig.AnnouncementChannelID,
		cfg.Environment,
	)

	authMiddleware := middleware.NewTeacherAuthMiddleware(teachersService)
	authHandler := handlers.NewAuthHandler(teachersService)
	activitiesHandler := handlers.NewActivitiesHandler(activitiesService)
	announcementsHandler := handlers.NewAnnouncementsHandler(announcementsService)

	// Create a new router
	router := mux.NewRouter()

	// Setup endpoints with the new router
	authHandler.SetupEndpoints(router, authMiddleware)
	activitiesHandler.SetupEndpoints(router, authMiddleware)
	announcementsHandler.SetupEndpoints(router, authMiddleware)

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
			log.Printf("❌ Failed to write health check response: %v", err)
		}
	}).Methods("GET")

	// The frontend is plain static assets served from the same process
	router.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.StaticDir)))
	log.Printf("✅ Serving static frontend from %s", cfg.StaticDir)

	// Start periodic sweep of expired announcements
	cleanupTicker := time.NewTicker(1 * time.Hour)
	go func() {
		for range cleanupTicker.C {
			_ = alertMiddleware.WrapBackgroundTask("CleanupExpiredAnnouncements", func() error {
				_, err := announcementsService.CleanupExpiredAnnouncements(
					context.Background(), announcementRetention)
				return err
			})()
		}
	}()
	defer cleanupTicker.Stop()

	// Setup CORS middleware
	allowedOrigins := strings.Split(cfg.CORSAllowedOrigins, ",")
	for i, origin := range allowedOrigins {
		allowedOrigins[i] = strings.TrimSpace(origin)
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	// Setup and handle graceful shutdown
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           alertMiddleware.HTTPMiddleware(c.Handler(router)),
		ReadHeaderTimeout: 30 * time.Second,
	}

	return handleGracefulShutdown(server)
}

func handleGracefulShutdown(server *http.Server) error {
	// Channel to listen for interrupt signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Start server in a goroutine
	go func() {
		log.Printf("✅ Listening on http://localhost%s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("❌ Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	<-stop
	log.Printf("🛑 Shutdown signal received, cleaning up...")

	// Create a deadline for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Shutdown server gracefully
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("❌ Server shutdown error: %v", err)
		return err
	}

	log.Printf("✅ Server stopped gracefully")
	return nil
}

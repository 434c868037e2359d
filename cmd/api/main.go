package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cinehub-rest-api/internal/cache"
	"cinehub-rest-api/internal/config"
	"cinehub-rest-api/internal/handler"
	"cinehub-rest-api/internal/middleware"
	"cinehub-rest-api/internal/repository"
	"cinehub-rest-api/internal/router"
	"cinehub-rest-api/internal/service"

	_ "github.com/go-sql-driver/mysql"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting CineHub API...")

	// Load configuration
	cfg := config.MustLoad()
	log.Printf("Environment: %s", cfg.App.Environment)

	// Initialize SQLite (application data)
	db, err := repository.OpenSQLite(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize SQLite: %v", err)
	}
	defer db.Close()
	log.Println("SQLite database initialized")

	userRepo := repository.NewSQLiteUserRepository(db)
	storeRepo := repository.NewSQLiteStoreRepository(db)
	suggestionRepo := repository.NewSQLiteSuggestionRepository(db)
	movieRepo := repository.NewSQLiteMovieRepository(db)
	notificationRepo := repository.NewSQLiteNotificationRepository(db)
	engagementRepo := repository.NewSQLiteEngagementRepository(db)

	// Initialize MySQL audit log (optional)
	var auditRepo repository.AuditRepository
	if cfg.Database.AuditEnabled {
		mysqlDB, err := sql.Open("mysql", cfg.Database.MySQLDSN())
		if err != nil {
			log.Printf("Warning: MySQL connection failed: %v", err)
		} else {
			mysqlDB.SetMaxOpenConns(10)
			mysqlDB.SetMaxIdleConns(5)
			mysqlDB.SetConnMaxLifetime(5 * time.Minute)

			if err := mysqlDB.Ping(); err != nil {
				log.Printf("Warning: MySQL ping failed: %v", err)
				mysqlDB.Close()
			} else {
				defer mysqlDB.Close()
				repo, err := repository.NewMySQLAuditRepository(mysqlDB)
				if err != nil {
					log.Printf("Warning: audit repository init failed: %v", err)
				} else {
					auditRepo = repo
					log.Println("MySQL audit repository initialized")
				}
			}
		}
	}

	// Initialize cache
	var appCache cache.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := cache.NewRedisCache(cache.RedisCacheConfig{
			Addr:     cfg.Cache.RedisAddress(),
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})
		if err != nil {
			log.Fatalf("Failed to initialize Redis cache: %v", err)
		}
		appCache = redisCache
		log.Println("Redis cache initialized")
	default: // memory
		appCache = cache.NewMemoryCache()
		log.Println("Memory cache initialized")
	}
	defer appCache.Close()

	// Initialize services
	sessionService := service.NewSessionService(appCache)
	notificationService := service.NewNotificationService(notificationRepo)
	economyService := service.NewEconomyService(userRepo, storeRepo, notificationService, auditRepo, cfg.Economy)
	suggestionService := service.NewSuggestionService(suggestionRepo, notificationService, economyService)
	authService := service.NewAuthService(userRepo, sessionService, notificationService, appCache, cfg.Economy)
	engagementService := service.NewEngagementService(engagementRepo, movieRepo, economyService, appCache)

	// Notification retention scheduler
	retention := service.NewRetentionScheduler(notificationRepo, service.DefaultRetentionConfig())
	retention.Start()
	defer retention.Stop()

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(db, cfg.App.Version)
	authHandler := handler.NewAuthHandler(authService, sessionService)
	userHandler := handler.NewUserHandler(authService, economyService)
	movieHandler := handler.NewMovieHandler(engagementService, authService)
	storeHandler := handler.NewStoreHandler(economyService, storeRepo)
	suggestionHandler := handler.NewSuggestionHandler(suggestionService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	communityHandler := handler.NewCommunityHandler(engagementService, authService)
	gameHandler := handler.NewGameHandler(engagementService)
	adminHandler := handler.NewAdminHandler(userRepo, storeRepo, movieRepo, auditRepo, suggestionService, notificationService)

	authMiddleware := middleware.NewAuthMiddleware(sessionService)

	// Create router
	r := router.New(router.Config{
		HealthHandler:       healthHandler,
		AuthHandler:         authHandler,
		UserHandler:         userHandler,
		MovieHandler:        movieHandler,
		StoreHandler:        storeHandler,
		SuggestionHandler:   suggestionHandler,
		NotificationHandler: notificationHandler,
		CommunityHandler:    communityHandler,
		GameHandler:         gameHandler,
		AdminHandler:        adminHandler,
		AuthMiddleware:      authMiddleware,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server listening on %s", cfg.Server.Address())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trekheaven/internal/cache"
	"trekheaven/internal/config"
	"trekheaven/internal/database"
	"trekheaven/internal/handler"
	"trekheaven/internal/mailer"
	"trekheaven/internal/repository"
	"trekheaven/internal/router"
	"trekheaven/internal/service"
	"trekheaven/internal/storage"
	"trekheaven/internal/validator"
	"trekheaven/pkg/auth"

	"github.com/gin-gonic/gin"
)

// @title           TrekHeaven API
// @version         1.0
// @description     A REST API for a trek booking platform: trek catalog, team bookings, blogs and email-verified accounts.

// @contact.name    API Support
// @contact.email   support@trekheaven.example.com

// @host            localhost:8080
// @BasePath        /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format: Bearer {token}

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("Configuration loaded")

	// Register custom validators
	validator.RegisterCustomValidators()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Database
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	// Redis Cache
	redisCache := cache.NewRedis(cfg.RedisURI)
	defer redisCache.Close()

	// S3 storage is optional; without it presigned uploads are disabled.
	var store storage.Storage
	if cfg.S3Endpoint != "" {
		store = storage.NewS3Client(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3UseSSL)
		log.Printf("S3 storage configured (bucket %s)", cfg.S3Bucket)
	} else {
		log.Println("S3 storage not configured, presigned uploads disabled")
	}

	// Outbound mail falls back to logging codes when SMTP is not configured.
	var mail mailer.Mailer
	if cfg.SMTPHost != "" {
		mail = mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)
	} else {
		log.Println("SMTP not configured, verification codes will be logged")
		mail = mailer.NewLogMailer()
	}

	// JWT Manager
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry)

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database)
	trekRepo := repository.NewTrekRepository(mongoDB.Database)
	registrationRepo := repository.NewRegistrationRepository(mongoDB.Database)
	blogRepo := repository.NewBlogRepository(mongoDB.Database)

	// Service layer
	authService := service.NewAuthService(userRepo, redisCache, mail, jwtManager)
	trekService := service.NewTrekService(trekRepo, redisCache)
	registrationService := service.NewRegistrationService(registrationRepo, trekRepo, userRepo)
	blogService := service.NewBlogService(blogRepo, userRepo)

	// Handler layer
	authHandler := handler.NewAuthHandler(authService)
	trekHandler := handler.NewTrekHandler(trekService)
	registrationHandler := handler.NewRegistrationHandler(registrationService)
	blogHandler := handler.NewBlogHandler(blogService)
	uploadHandler := handler.NewUploadHandler(store)

	// Router
	r := router.Setup(&router.Config{
		AuthHandler:         authHandler,
		TrekHandler:         trekHandler,
		RegistrationHandler: registrationHandler,
		BlogHandler:         blogHandler,
		UploadHandler:       uploadHandler,
		JWTManager:          jwtManager,
		AuthService:         authService,
	})

	// Create HTTP server for graceful shutdown support
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}

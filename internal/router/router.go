// Package router sets up HTTP routes for the API.
package router

import (
	"net/http"

	_ "trekheaven/swagger" // Import generated swagger docs

	"trekheaven/internal/handler"
	"trekheaven/internal/middleware"
	"trekheaven/internal/service"
	"trekheaven/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	AuthHandler         *handler.AuthHandler
	TrekHandler         *handler.TrekHandler
	RegistrationHandler *handler.RegistrationHandler
	BlogHandler         *handler.BlogHandler
	UploadHandler       *handler.UploadHandler
	JWTManager          auth.TokenManager
	AuthService         service.AuthServicer
}

// Setup creates and configures the Gin router.
func Setup(cfg *Config) *gin.Engine {
	r := gin.Default()

	// Global middleware
	r.Use(middleware.CORS())

	// Swagger docs at /docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authed := middleware.Auth(cfg.JWTManager, cfg.AuthService)
	adminOnly := middleware.Admin()

	api := r.Group("/api")
	{
		// User routes
		users := api.Group("/users")
		{
			users.POST("/register", cfg.AuthHandler.Register)
			users.POST("/verify", cfg.AuthHandler.Verify)
			users.POST("/login", cfg.AuthHandler.Login)

			users.GET("/me", authed, cfg.AuthHandler.Me)
			users.POST("/request-profile-update", authed, cfg.AuthHandler.RequestProfileUpdate)
			users.PUT("/profile", authed, cfg.AuthHandler.UpdateProfile)

			users.GET("/allregistrations", authed, adminOnly, cfg.RegistrationHandler.ListAll)
		}

		// Trek catalog routes
		treks := api.Group("/treks")
		{
			treks.GET("", cfg.TrekHandler.List)
			treks.GET("/:id", cfg.TrekHandler.Get)

			treks.POST("", authed, adminOnly, cfg.TrekHandler.Create)
			treks.PUT("/:id", authed, adminOnly, cfg.TrekHandler.Replace)
			treks.PATCH("/:id", authed, adminOnly, cfg.TrekHandler.Update)
			treks.DELETE("/:id", authed, adminOnly, cfg.TrekHandler.Delete)

			treks.POST("/:id/reviews", authed, cfg.TrekHandler.AddReview)
		}

		// Booking routes (all protected)
		registrations := api.Group("/trek-registrations")
		registrations.Use(authed)
		{
			registrations.POST("", cfg.RegistrationHandler.Create)
			registrations.GET("/user", cfg.RegistrationHandler.ListMine)
			registrations.GET("/:id", cfg.RegistrationHandler.Get)
			registrations.PUT("/:id/cancel", cfg.RegistrationHandler.Cancel)
		}

		// Blog routes
		blogs := api.Group("/blogs")
		{
			blogs.GET("", cfg.BlogHandler.List)
			blogs.GET("/:slug", cfg.BlogHandler.GetBySlug)

			blogs.GET("/id/:id", authed, adminOnly, cfg.BlogHandler.GetByID)
			blogs.POST("", authed, adminOnly, cfg.BlogHandler.Create)
			blogs.PUT("/:id", authed, adminOnly, cfg.BlogHandler.Update)
			blogs.DELETE("/:id", authed, adminOnly, cfg.BlogHandler.Delete)
		}

		// Upload routes; the URL echo is public, presigning needs a login
		upload := api.Group("/upload")
		{
			upload.POST("", cfg.UploadHandler.Upload)
			upload.POST("/presign", authed, cfg.UploadHandler.Presign)
		}
	}

	return r
}

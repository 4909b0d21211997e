package gin

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggoFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/user/samadhi-tracker/internal/config"
	"github.com/user/samadhi-tracker/internal/handler"
	"github.com/user/samadhi-tracker/internal/middleware"

	// Import docs for swagger
	_ "github.com/user/samadhi-tracker/docs"
)

const RequestIDKey = "requestID"

// NewGinServer creates and configures a new Gin application.
func NewGinServer(cfg *config.AppConfig, h *handler.Handler) *gin.Engine {
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware())

	corsConfig := cors.DefaultConfig()
	if len(cfg.CorsAllowedOrigins) == 1 && cfg.CorsAllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CorsAllowedOrigins
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	router.Use(middleware.MetricsMiddlewareGin())
	router.Use(middleware.RateLimiterGin(cfg.RateLimitPerSecond, cfg.RateLimitBurst))

	// Swagger UI
	url := ginSwagger.URL("/swagger/doc.json")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggoFiles.Handler, url))

	// Operational endpoints
	router.GET("/health", h.HealthHandler.CheckHealthGin)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")

	// Public routes
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.RegisterGin)
		auth.POST("/login", h.LoginGin)
		auth.GET("/verify", h.VerifyGin)
	}

	api.GET("/feelings", h.GetFeelingsGin)
	api.POST("/meditations/recommendations", h.RecommendGin)
	api.GET("/stats/public", h.GetPublicStatsGin)

	// Authenticated routes
	authed := api.Group("", middleware.AuthGin(cfg.JWTSecret))
	{
		authed.GET("/dashboard", h.GetDashboardGin)
		authed.POST("/feelings/record", h.CreateRecordGin)
		authed.GET("/dashboard/records/:id", h.GetRecordGin)
	}

	// Admin routes
	admin := api.Group("/admin", middleware.AuthGin(cfg.JWTSecret), middleware.AdminOnlyGin())
	{
		admin.GET("/analytics", h.GetAdminAnalyticsGin)
		admin.GET("/stats", h.GetAdminStatsGin)
		admin.GET("/activity/export", h.ExportActivityGin)

		admin.GET("/feelings", h.ListFeelingsGin)
		admin.POST("/feelings", h.CreateFeelingGin)
		admin.PUT("/feelings/:id", h.UpdateFeelingGin)
		admin.DELETE("/feelings/:id", h.DeleteFeelingGin)

		admin.GET("/meditations", h.ListMeditationsGin)
		admin.POST("/meditations", h.CreateMeditationGin)
		admin.PUT("/meditations/:id", h.UpdateMeditationGin)
		admin.DELETE("/meditations/:id", h.DeleteMeditationGin)

		admin.GET("/tags", h.ListTagsGin)
		admin.POST("/tags", h.CreateTagGin)
		admin.PUT("/tags/:id", h.UpdateTagGin)
		admin.DELETE("/tags/:id", h.DeleteTagGin)

		admin.GET("/users", h.ListUsersGin)
		admin.POST("/users", h.CreateUserGin)
		admin.PUT("/users/:id", h.UpdateUserGin)
		admin.DELETE("/users/:id", h.DeleteUserGin)
	}

	return router
}

// requestIDMiddleware adds a request ID to each request.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Set(RequestIDKey, requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}

// loggingMiddleware logs requests using a structured format.
func loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		end := time.Now()
		latency := end.Sub(start)
		clientIP := c.ClientIP()
		method := c.Request.Method
		statusCode := c.Writer.Status()
		errorMessage := c.Errors.ByType(gin.ErrorTypePrivate).String()
		requestID, _ := c.Get(RequestIDKey)

		if raw != "" {
			path = path + "?" + raw
		}

		log.Printf("[GIN] %s | %3d | %13v | %15s | %s %s | %s | RequestID: %s",
			end.Format("2006/01/02 - 15:04:05"),
			statusCode,
			latency,
			clientIP,
			method,
			path,
			errorMessage,
			requestID,
		)
	}
}

// StartGinServer starts the Gin server.
func StartGinServer(router *gin.Engine, cfg *config.AppConfig) (*http.Server, error) {
	addr := fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort)

	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  cfg.ServerIdleTimeout,
	}

	log.Printf("Starting GIN server on %s", addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	return srv, nil
}

// ShutdownGinServer gracefully shuts down the Gin server.
func ShutdownGinServer(srv *http.Server, timeout time.Duration) {
	log.Println("Shutting down GIN server...")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("GIN server exiting")
}

package fiber

import (
	"fmt"
	"log"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggoFiber "github.com/swaggo/fiber-swagger"

	"github.com/user/samadhi-tracker/internal/config"
	"github.com/user/samadhi-tracker/internal/handler"
	"github.com/user/samadhi-tracker/internal/middleware"

	// Import docs for swagger
	_ "github.com/user/samadhi-tracker/docs"
)

// NewFiberServer creates and configures a new Fiber application.
func NewFiberServer(cfg *config.AppConfig, h *handler.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  cfg.ServerIdleTimeout,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${status} - ${method} ${path} ${latency}\nREQUEST_ID: ${locals:requestid}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CorsAllowedOrigins[0], // Fiber's CORS AllowOrigins is a string, not a slice. Taking the first one.
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))
	app.Use(middleware.MetricsMiddlewareFiber())
	app.Use(middleware.RateLimiterFiber(cfg.RateLimitPerSecond, cfg.RateLimitBurst))

	// Swagger UI
	app.Get("/swagger/*", swaggoFiber.WrapHandler)

	// Operational endpoints
	app.Get("/health", h.HealthHandler.CheckHealthFiber)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api/v1")

	// Public routes
	auth := api.Group("/auth")
	auth.Post("/register", h.RegisterFiber)
	auth.Post("/login", h.LoginFiber)
	auth.Get("/verify", h.VerifyFiber)

	api.Get("/feelings", h.GetFeelingsFiber)
	api.Post("/meditations/recommendations", h.RecommendFiber)
	api.Get("/stats/public", h.GetPublicStatsFiber)

	// Authenticated routes
	authed := api.Group("", middleware.AuthFiber(cfg.JWTSecret))
	authed.Get("/dashboard", h.GetDashboardFiber)
	authed.Post("/feelings/record", h.CreateRecordFiber)
	authed.Get("/dashboard/records/:id", h.GetRecordFiber)

	// Admin routes
	admin := api.Group("/admin", middleware.AuthFiber(cfg.JWTSecret), middleware.AdminOnlyFiber())
	admin.Get("/analytics", h.GetAdminAnalyticsFiber)
	admin.Get("/stats", h.GetAdminStatsFiber)
	admin.Get("/activity/export", h.ExportActivityFiber)

	admin.Get("/feelings", h.ListFeelingsFiber)
	admin.Post("/feelings", h.CreateFeelingFiber)
	admin.Put("/feelings/:id", h.UpdateFeelingFiber)
	admin.Delete("/feelings/:id", h.DeleteFeelingFiber)

	admin.Get("/meditations", h.ListMeditationsFiber)
	admin.Post("/meditations", h.CreateMeditationFiber)
	admin.Put("/meditations/:id", h.UpdateMeditationFiber)
	admin.Delete("/meditations/:id", h.DeleteMeditationFiber)

	admin.Get("/tags", h.ListTagsFiber)
	admin.Post("/tags", h.CreateTagFiber)
	admin.Put("/tags/:id", h.UpdateTagFiber)
	admin.Delete("/tags/:id", h.DeleteTagFiber)

	admin.Get("/users", h.ListUsersFiber)
	admin.Post("/users", h.CreateUserFiber)
	admin.Put("/users/:id", h.UpdateUserFiber)
	admin.Delete("/users/:id", h.DeleteUserFiber)

	return app
}

// customErrorHandler for Fiber
func customErrorHandler(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Log the error internally
	log.Printf("Fiber Error: %v - Path: %s", err, ctx.Path())

	return ctx.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}

// StartFiberServer starts the Fiber server.
func StartFiberServer(app *fiber.App, cfg *config.AppConfig) error {
	addr := fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort)
	log.Printf("Starting Fiber server on %s", addr)
	return app.Listen(addr)
}

package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/user/samadhi-tracker/internal/repository"
	"github.com/user/samadhi-tracker/internal/service"
)

// Handler encapsulates all handlers for the application: the public catalog
// and stats endpoints, the authenticated dashboard, and the admin surface.
type Handler struct {
	Auth            *service.AuthService
	Catalog         *service.CatalogService
	Records         *service.RecordService
	Dashboard       *service.DashboardService
	Recommendations *service.RecommendationService
	Analytics       *service.AnalyticsService
	Activity        repository.ActivityRepositoryInterface
	HealthHandler   *HealthHandler

	validate *validator.Validate
}

// NewHandler creates a new Handler.
func NewHandler(
	auth *service.AuthService,
	catalog *service.CatalogService,
	records *service.RecordService,
	dashboard *service.DashboardService,
	recommendations *service.RecommendationService,
	analytics *service.AnalyticsService,
	activity repository.ActivityRepositoryInterface,
	healthHandler *HealthHandler,
) *Handler {
	return &Handler{
		Auth:            auth,
		Catalog:         catalog,
		Records:         records,
		Dashboard:       dashboard,
		Recommendations: recommendations,
		Analytics:       analytics,
		Activity:        activity,
		HealthHandler:   healthHandler,
		validate:        validator.New(),
	}
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Message string `json:"message"`
}

// statusForError maps service errors to HTTP status codes. Anything
// unrecognized is a 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrUserIDTaken),
		errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrFeelingExists):
		return fiber.StatusConflict
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// messageForError hides internal detail for 500s and passes service-level
// messages through for everything else.
func messageForError(err error) string {
	if statusForError(err) == fiber.StatusInternalServerError {
		return "Internal server error"
	}
	return err.Error()
}

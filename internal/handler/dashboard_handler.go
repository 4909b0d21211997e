package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gofiber/fiber/v2"

	"github.com/user/samadhi-tracker/internal/middleware"
	"github.com/user/samadhi-tracker/internal/service"
)

// @Summary User dashboard
// @Description Get the caller's summary stats, top feelings and latest records.
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.DashboardStats "Dashboard data"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/v1/dashboard [get]
// GetDashboardFiber handles GET requests for the authenticated dashboard.
func (h *Handler) GetDashboardFiber(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.CtxUserID).(string)
	stats, err := h.Dashboard.Dashboard(userID)
	if err != nil {
		return c.Status(statusForError(err)).JSON(ErrorResponse{Message: messageForError(err)})
	}
	return c.Status(fiber.StatusOK).JSON(stats)
}

// GetDashboardGin handles GET requests for the authenticated dashboard.
func (h *Handler) GetDashboardGin(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserID)
	stats, err := h.Dashboard.Dashboard(userID)
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Message: messageForError(err)})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Create a daily record
// @Description Store one meditation session with its before and after ratings.
// @Tags Records
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param record body service.CreateRecordInput true "Session data"
// @Success 201 {object} model.DailyRecord "Record created"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Router /api/v1/feelings/record [post]
// CreateRecordFiber handles POST requests to create a daily record.
func (h *Handler) CreateRecordFiber(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.CtxUserID).(string)

	var input service.CreateRecordInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Message: "Invalid request body"})
	}
	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Message: err.Error()})
	}

	record, err := h.Records.CreateRecord(userID, input, c.IP(), string(c.Request().Header.UserAgent()))
	if err != nil {
		status := statusForError(err)
		if status == fiber.StatusInternalServerError {
			// A malformed date is a client error, not ours.
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Message: err.Error()})
		}
		return c.Status(status).JSON(ErrorResponse{Message: messageForError(err)})
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

// CreateRecordGin handles POST requests to create a daily record.
func (h *Handler) CreateRecordGin(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserID)

	var input service.CreateRecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	record, err := h.Records.CreateRecord(userID, input, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		status := statusForError(err)
		if status == http.StatusInternalServerError {
			c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
			return
		}
		c.JSON(status, ErrorResponse{Message: messageForError(err)})
		return
	}
	c.JSON(http.StatusCreated, record)
}

// @Summary Get one record
// @Description Get one of the caller's records with its ratings and feelings.
// @Tags Records
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record ID"
// @Success 200 {object} model.DailyRecord "The record"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 404 {object} ErrorResponse "Record not found"
// @Router /api/v1/dashboard/records/{id} [get]
// GetRecordFiber handles GET requests for a single record.
func (h *Handler) GetRecordFiber(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.CtxUserID).(string)
	record, err := h.Records.GetRecord(c.Params("id"), userID)
	if err != nil {
		return c.Status(statusForError(err)).JSON(ErrorResponse{Message: messageForError(err)})
	}
	return c.Status(fiber.StatusOK).JSON(record)
}

// GetRecordGin handles GET requests for a single record.
func (h *Handler) GetRecordGin(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserID)
	record, err := h.Records.GetRecord(c.Param("id"), userID)
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Message: messageForError(err)})
		return
	}
	c.JSON(http.StatusOK, record)
}

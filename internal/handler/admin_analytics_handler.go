package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gofiber/fiber/v2"
)

// @Summary Admin analytics
// @Description Get the full admin dashboard for a time range (7d, 30d or 90d).
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param timeRange query string false "Time range" Enums(7d, 30d, 90d) default(7d)
// @Success 200 {object} service.AdminAnalytics "Analytics payload"
// @Failure 403 {object} ErrorResponse "Admin role required"
// @Router /api/v1/admin/analytics [get]
// GetAdminAnalyticsFiber handles GET requests for the admin analytics.
func (h *Handler) GetAdminAnalyticsFiber(c *fiber.Ctx) error {
	analytics, err := h.Analytics.AdminAnalytics(c.Query("timeRange", "7d"))
	if err != nil {
		return c.Status(statusForError(err)).JSON(ErrorResponse{Message: messageForError(err)})
	}
	return c.Status(fiber.StatusOK).JSON(analytics)
}

// GetAdminAnalyticsGin handles GET requests for the admin analytics.
func (h *Handler) GetAdminAnalyticsGin(c *gin.Context) {
	analytics, err := h.Analytics.AdminAnalytics(c.DefaultQuery("timeRange", "7d"))
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Message: messageForError(err)})
		return
	}
	c.JSON(http.StatusOK, analytics)
}

// @Summary Admin counters
// @Description Get the compact counter set for the admin landing page.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.AdminStats "Counters"
// @Failure 403 {object} ErrorResponse "Admin role required"
// @Router /api/v1/admin/stats [get]
// GetAdminStatsFiber handles GET requests for the admin counters.
func (h *Handler) GetAdminStatsFiber(c *fiber.Ctx) error {
	stats, err := h.Analytics.AdminStats()
	if err != nil {
		return c.Status(statusForError(err)).JSON(ErrorResponse{Message: messageForError(err)})
	}
	return c.Status(fiber.StatusOK).JSON(stats)
}

// GetAdminStatsGin handles GET requests for the admin counters.
func (h *Handler) GetAdminStatsGin(c *gin.Context) {
	stats, err := h.Analytics.AdminStats()
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Message: messageForError(err)})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// exportWindow parses the days query parameter, defaulting to thirty days.
func exportWindow(days string) time.Time {
	n, err := strconv.Atoi(days)
	if err != nil || n <= 0 {
		n = 30
	}
	return time.Now().AddDate(0, 0, -n)
}

// @Summary Export the activity log
// @Description Download the audit trail for the last N days as CSV or JSON.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param format query string false "Export format" Enums(csv, json) default(csv)
// @Param days query int false "Window in days" default(30)
// @Success 200 {string} string "Exported data"
// @Failure 400 {object} ErrorResponse "Unsupported format"
// @Failure 403 {object} ErrorResponse "Admin role required"
// @Router /api/v1/admin/activity/export [get]
// ExportActivityFiber handles GET requests to export the activity log.
func (h *Handler) ExportActivityFiber(c *fiber.Ctx) error {
	format := c.Query("format", "csv")
	data, contentType, err := h.Activity.ExportLogs(exportWindow(c.Query("days")), format)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Message: err.Error()})
	}
	c.Set("Content-Type", contentType)
	c.Set("Content-Disposition", "attachment; filename=activity-export."+format)
	return c.Status(fiber.StatusOK).Send(data)
}

// ExportActivityGin handles GET requests to export the activity log.
func (h *Handler) ExportActivityGin(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")
	data, contentType, err := h.Activity.ExportLogs(exportWindow(c.Query("days")), format)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}
	c.Header("Content-Disposition", "attachment; filename=activity-export."+format)
	c.Data(http.StatusOK, contentType, data)
}

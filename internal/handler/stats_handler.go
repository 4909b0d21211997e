package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gofiber/fiber/v2"
)

// @Summary Public stats
// @Description Get the anonymous seven-day activity series and global feeling changes.
// @Tags Stats
// @Produce json
// @Success 200 {object} service.PublicStats "Public stats"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/v1/stats/public [get]
// GetPublicStatsFiber handles GET requests for the unauthenticated stats.
func (h *Handler) GetPublicStatsFiber(c *fiber.Ctx) error {
	stats, err := h.Analytics.PublicStats()
	if err != nil {
		return c.Status(statusForError(err)).JSON(ErrorResponse{Message: messageForError(err)})
	}
	return c.Status(fiber.StatusOK).JSON(stats)
}

// GetPublicStatsGin handles GET requests for the unauthenticated stats.
func (h *Handler) GetPublicStatsGin(c *gin.Context) {
	stats, err := h.Analytics.PublicStats()
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Message: messageForError(err)})
		return
	}
	c.JSON(http.StatusOK, stats)
}

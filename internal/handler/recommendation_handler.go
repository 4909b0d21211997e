package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gofiber/fiber/v2"

	"github.com/user/samadhi-tracker/internal/service"
)

// @Summary Recommend meditations
// @Description Map a pre-meditation self-report to at most three meditations.
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param report body service.RecommendationRequest true "Self-report"
// @Success 200 {array} service.MeditationSummary "Recommended meditations"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/v1/meditations/recommendations [post]
// RecommendFiber handles POST requests for meditation recommendations.
func (h *Handler) RecommendFiber(c *fiber.Ctx) error {
	var req service.RecommendationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Message: "Invalid request body"})
	}

	summaries, err := h.Recommendations.Recommend(req)
	if err != nil {
		return c.Status(statusForError(err)).JSON(ErrorResponse{Message: messageForError(err)})
	}
	return c.Status(fiber.StatusOK).JSON(summaries)
}

// RecommendGin handles POST requests for meditation recommendations.
func (h *Handler) RecommendGin(c *gin.Context) {
	var req service.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
		return
	}

	summaries, err := h.Recommendations.Recommend(req)
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Message: messageForError(err)})
		return
	}
	c.JSON(http.StatusOK, summaries)
}

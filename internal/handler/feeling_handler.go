package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gofiber/fiber/v2"
)

// @Summary List active feelings
// @Description Get the active feelings in random order, ready for a rating form.
// @Tags Feelings
// @Produce json
// @Success 200 {array} model.Feeling "Active feelings, shuffled"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/v1/feelings [get]
// GetFeelingsFiber handles GET requests for the public feeling catalog.
func (h *Handler) GetFeelingsFiber(c *fiber.Ctx) error {
	feelings, err := h.Catalog.ActiveFeelingsShuffled()
	if err != nil {
		return c.Status(statusForError(err)).JSON(ErrorResponse{Message: messageForError(err)})
	}
	return c.Status(fiber.StatusOK).JSON(feelings)
}

// GetFeelingsGin handles GET requests for the public feeling catalog.
func (h *Handler) GetFeelingsGin(c *gin.Context) {
	feelings, err := h.Catalog.ActiveFeelingsShuffled()
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Message: messageForError(err)})
		return
	}
	c.JSON(http.StatusOK, feelings)
}

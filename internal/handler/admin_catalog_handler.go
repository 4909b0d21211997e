package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gofiber/fiber/v2"

	"github.com/user/samadhi-tracker/internal/middleware"
	"github.com/user/samadhi-tracker/internal/service"
)

// ---------- feelings ----------

// @Summary List all feelings
// @Description Get every feeling, active or not, for the admin catalog view.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Feeling "All feelings"
// @Failure 403 {object} ErrorResponse "Admin role required"
// @Router /api/v1/admin/feelings [get]
// ListFeelingsFiber handles GET requests for the full feeling catalog.
func (h *Handler) ListFeelingsFiber(c *fiber.Ctx) error {
	feelings, err := h.Catalog.ListFeelings()
	if err != nil {
		return c.Status(statusForError(err)).JSON(ErrorResponse{Message: messageForError(err)})
	}
	return c.Status(fiber.StatusOK).JSON(feelings)
}

// ListFeelingsGin handles GET requests for the full feeling catalog.
func (h *Handler) ListFeelingsGin(c *gin.Context) {
	feelings, err := h.Catalog.ListFeelings()
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Message: messageForError(err)})
		return
	}
	c.JSON(http.StatusOK, feelings)
}

// @Summary Create a feeling
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param feeling body service.FeelingInput true "Feeling data"
// @Success 201 {object} model.Feeling "Feeling created"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Feeling already exists"
// @Router /api/v1/admin/feelings [post]
// CreateFeelingFiber handles POST requests to create a feeling.
func (h *Handler) CreateFeelingFiber(c *fiber.Ctx) error {
	adminID, _ := c.Locals(middleware.CtxUserID).(string)

	var input service.FeelingInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Message: "Invalid request body"})
	}
	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Message: err.Error()})
	}

	feeling, err := h.Catalog.CreateFeeling(adminID, input, c.IP(), string(c.Request().Header.UserAgent()))
	if err != nil {
		return c.Status(statusForError(err)).JSON(ErrorResponse{Message: messageForError(err)})
	}
	return c.Status(fiber.StatusCreated).JSON(feeling)
}

// CreateFeelingGin handles POST requests to create a feeling.
func (h *Handler) CreateFeelingGin(c *gin.Context) {
	adminID := c.GetString(middleware.CtxUserID)

	var input service.FeelingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	feeling, err := h.Catalog.CreateFeeling(adminID, input, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Message: messageForError(err)})
		return
	}
	c.JSON(http.StatusCreated, feeling)
}

// @Summary Update a feeling
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Feeling ID"
// @Param feeling body service.FeelingInput true "Feeling data"
// @Success 200 {object} model.Feeling "Feeling updated"
// @Failure 404 {object} ErrorResponse "Feeling not found"
// @Router /api/v1/admin/feelings/{id} [put]
// UpdateFeelingFiber handles PUT requests to update a feeling.
func (h *Handler) UpdateFeelingFiber(c *fiber.Ctx) error {
	adminID, _ := c.Locals(middleware.CtxUserID).(string)

	var input service.FeelingInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Message: "Invalid request body"})
	}
	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Message: err.Error()})
	}

	feeling, err := h.Catalog.UpdateFeeling(adminID, c.Params("id"), input, c.IP(), string(c.Request().Header.UserAgent()))
	if err != nil {
		return c.Status(statusForError(err)).JSON(ErrorResponse{Message: messageForError(err)})
	}
	return c.Status(fiber.StatusOK).JSON(feeling)
}

// UpdateFeelingGin handles PUT requests to update a feeling.
func (h *Handler) UpdateFeelingGin(c *gin.Context) {
	adminID := c.GetString(middleware.CtxUserID)

	var input service.FeelingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	feeling, err := h.Catalog.UpdateFeeling(adminID, c.Param("id"), input, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Message: messageForError(err)})
		return
	}
	c.JSON(http.StatusOK, feeling)
}

// @Summary Delete a feeling
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Feeling ID"
// @Success 204 "Feeling deleted"
// @Failure 404 {object} ErrorResponse "Feeling not found"
// @Router /api/v1/admin/feelings/{id} [delete]
// DeleteFeelingFiber handles DELETE requests to remove a feeling.
func (h *Handler) DeleteFeelingFiber(c *fiber.Ctx) error {
	adminID, _ := c.Locals(middleware.CtxUserID).(string)
	if err := h.Catalog.DeleteFeeling(adminID, c.Params("id"), c.IP(), string(c.Request().Header.UserAgent())); err != nil {
		return c.Status(statusForError(err)).JSON(ErrorResponse{Message: messageForError(err)})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteFeelingGin handles DELETE requests to remove a feeling.
func (h *Handler) DeleteFeelingGin(c *gin.Context) {
	adminID := c.GetString(middleware.CtxUserID)
	if err := h.Catalog.DeleteFeeling(adminID, c.Param("id"), c.ClientIP(), c.Request.UserAgent()); err != nil {
		c.JSON(statusForError(err), ErrorResponse{Message: messageForError(err)})
		return
	}
	c.Status(http.StatusNoContent)
}

// ---------- meditations ----------

// @Summary List all meditations
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Meditation "All meditations with tags"
// @Router /api/v1/admin/meditations [get]
// ListMeditationsFiber handles GET requests for the full meditation catalog.
func (h *Handler) ListMeditationsFiber(c *fiber.Ctx) error {
	meditations, err := h.Catalog.ListMeditations()
	if err != nil {
		return c.Status(statusForError(err)).JSON(ErrorResponse{Message: messageForError(err)})
	}
	return c.Status(fiber.StatusOK).JSON(meditations)
}

// ListMeditationsGin handles GET requests for the full meditation catalog.
func (h *Handler) ListMeditationsGin(c *gin.Context) {
	meditations, err := h.Catalog.ListMeditations()
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Message: messageForError(err)})
		return
	}
	c.JSON(http.StatusOK, meditations)
}

// @Summary Create a meditation
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param meditation body service.MeditationInput true "Meditation data"
// @Success 201 {object} model.Meditation "Meditation created"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Router /api/v1/admin/meditations [post]
// CreateMeditationFiber handles POST requests to create a meditation.
func (h *Handler) CreateMeditationFiber(c *fiber.Ctx) error {
	adminID, _ := c.Locals(middleware.CtxUserID).(string)

	var input service.MeditationInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Message: "Invalid request body"})
	}
	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Message: err.Error()})
	}

	meditation, err := h.Catalog.CreateMeditation(adminID, input, c.IP(), string(c.Request().Header.UserAgent()))
	if err != nil {
		return c.Status(statusForError(err)).JSON(ErrorResponse{Message: messageForError(err)})
	}
	return c.Status(fiber.StatusCreated).JSON(meditation)
}

// CreateMeditationGin handles POST requests to create a meditation.
func (h *Handler) CreateMeditationGin(c *gin.Context) {
	adminID := c.GetString(middleware.CtxUserID)

	var input service.MeditationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	meditation, err := h.Catalog.CreateMeditation(adminID, input, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Message: messageForError(err)})
		return
	}
	c.JSON(http.StatusCreated, meditation)
}

// @Summary Update a meditation
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Meditation ID"
// @Param meditation body service.MeditationInput true "Meditation data"
// @Success 200 {object} model.Meditation "Meditation updated"
// @Failure 404 {object} ErrorResponse "Meditation not found"
// @Router /api/v1/admin/meditations/{id} [put]
// UpdateMeditationFiber handles PUT requests to update a meditation.
func (h *Handler) UpdateMeditationFiber(c *fiber.Ctx) error {
	adminID, _ := c.Locals(middleware.CtxUserID).(string)

	var input service.MeditationInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Message: "Invalid request body"})
	}
	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Message: err.Error()})
	}

	meditation, err := h.Catalog.UpdateMeditation(adminID, c.Params("id"), input, c.IP(), string(c.Request().Header.UserAgent()))
	if err != nil {
		return c.Status(statusForError(err)).JSON(ErrorResponse{Message: messageForError(err)})
	}
	return c.Status(fiber.StatusOK).JSON(meditation)
}

// UpdateMeditationGin handles PUT requests to update a meditation.
func (h *Handler) UpdateMeditationGin(c *gin.Context) {
	adminID := c.GetString(middleware.CtxUserID)

	var input service.MeditationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	meditation, err := h.Catalog.UpdateMeditation(adminID, c.Param("id"), input, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Message: messageForError(err)})
		return
	}
	c.JSON(http.StatusOK, meditation)
}

// @Summary Delete a meditation
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Meditation ID"
// @Success 204 "Meditation deleted"
// @Failure 404 {object} ErrorResponse "Meditation not found"
// @Router /api/v1/admin/meditations/{id} [delete]
// DeleteMeditationFiber handles DELETE requests to remove a meditation.
func (h *Handler) DeleteMeditationFiber(c *fiber.Ctx) error {
	adminID, _ := c.Locals(middleware.CtxUserID).(string)
	if err := h.Catalog.DeleteMeditation(adminID, c.Params("id"), c.IP(), string(c.Request().Header.UserAgent())); err != nil {
		return c.Status(statusForError(err)).JSON(ErrorResponse{Message: messageForError(err)})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteMeditationGin handles DELETE requests to remove a meditation.
func (h *Handler) DeleteMeditationGin(c *gin.Context) {
	adminID := c.GetString(middleware.CtxUserID)
	if err := h.Catalog.DeleteMeditation(adminID, c.Param("id"), c.ClientIP(), c.Request.UserAgent()); err != nil {
		c.JSON(statusForError(err), ErrorResponse{Message: messageForError(err)})
		return
	}
	c.Status(http.StatusNoContent)
}

// ---------- tags ----------

// @Summary List all tags
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.MeditationTag "All tags"
// @Router /api/v1/admin/tags [get]
// ListTagsFiber handles GET requests for the tag catalog.
func (h *Handler) ListTagsFiber(c *fiber.Ctx) error {
	tags, err := h.Catalog.ListTags()
	if err != nil {
		return c.Status(statusForError(err)).JSON(ErrorResponse{Message: messageForError(err)})
	}
	return c.Status(fiber.StatusOK).JSON(tags)
}

// ListTagsGin handles GET requests for the tag catalog.
func (h *Handler) ListTagsGin(c *gin.Context) {
	tags, err := h.Catalog.ListTags()
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Message: messageForError(err)})
		return
	}
	c.JSON(http.StatusOK, tags)
}

// @Summary Create a tag
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tag body service.TagInput true "Tag data"
// @Success 201 {object} model.MeditationTag "Tag created"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Router /api/v1/admin/tags [post]
// CreateTagFiber handles POST requests to create a tag.
func (h *Handler) CreateTagFiber(c *fiber.Ctx) error {
	adminID, _ := c.Locals(middleware.CtxUserID).(string)

	var input service.TagInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Message: "Invalid request body"})
	}
	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Message: err.Error()})
	}

	tag, err := h.Catalog.CreateTag(adminID, input, c.IP(), string(c.Request().Header.UserAgent()))
	if err != nil {
		return c.Status(statusForError(err)).JSON(ErrorResponse{Message: messageForError(err)})
	}
	return c.Status(fiber.StatusCreated).JSON(tag)
}

// CreateTagGin handles POST requests to create a tag.
func (h *Handler) CreateTagGin(c *gin.Context) {
	adminID := c.GetString(middleware.CtxUserID)

	var input service.TagInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	tag, err := h.Catalog.CreateTag(adminID, input, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Message: messageForError(err)})
		return
	}
	c.JSON(http.StatusCreated, tag)
}

// @Summary Update a tag
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tag ID"
// @Param tag body service.TagInput true "Tag data"
// @Success 200 {object} model.MeditationTag "Tag updated"
// @Failure 404 {object} ErrorResponse "Tag not found"
// @Router /api/v1/admin/tags/{id} [put]
// UpdateTagFiber handles PUT requests to update a tag.
func (h *Handler) UpdateTagFiber(c *fiber.Ctx) error {
	adminID, _ := c.Locals(middleware.CtxUserID).(string)

	var input service.TagInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Message: "Invalid request body"})
	}
	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Message: err.Error()})
	}

	tag, err := h.Catalog.UpdateTag(adminID, c.Params("id"), input, c.IP(), string(c.Request().Header.UserAgent()))
	if err != nil {
		return c.Status(statusForError(err)).JSON(ErrorResponse{Message: messageForError(err)})
	}
	return c.Status(fiber.StatusOK).JSON(tag)
}

// UpdateTagGin handles PUT requests to update a tag.
func (h *Handler) UpdateTagGin(c *gin.Context) {
	adminID := c.GetString(middleware.CtxUserID)

	var input service.TagInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	tag, err := h.Catalog.UpdateTag(adminID, c.Param("id"), input, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Message: messageForError(err)})
		return
	}
	c.JSON(http.StatusOK, tag)
}

// @Summary Delete a tag
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tag ID"
// @Success 204 "Tag deleted"
// @Failure 404 {object} ErrorResponse "Tag not found"
// @Router /api/v1/admin/tags/{id} [delete]
// DeleteTagFiber handles DELETE requests to remove a tag.
func (h *Handler) DeleteTagFiber(c *fiber.Ctx) error {
	adminID, _ := c.Locals(middleware.CtxUserID).(string)
	if err := h.Catalog.DeleteTag(adminID, c.Params("id"), c.IP(), string(c.Request().Header.UserAgent())); err != nil {
		return c.Status(statusForError(err)).JSON(ErrorResponse{Message: messageForError(err)})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteTagGin handles DELETE requests to remove a tag.
func (h *Handler) DeleteTagGin(c *gin.Context) {
	adminID := c.GetString(middleware.CtxUserID)
	if err := h.Catalog.DeleteTag(adminID, c.Param("id"), c.ClientIP(), c.Request.UserAgent()); err != nil {
		c.JSON(statusForError(err), ErrorResponse{Message: messageForError(err)})
		return
	}
	c.Status(http.StatusNoContent)
}

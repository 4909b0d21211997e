package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gofiber/fiber/v2"

	"github.com/user/samadhi-tracker/internal/middleware"
	"github.com/user/samadhi-tracker/internal/service"
)

// @Summary List users
// @Description Get every account with its record total, newest first.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.AdminUser "All users"
// @Failure 403 {object} ErrorResponse "Admin role required"
// @Router /api/v1/admin/users [get]
// ListUsersFiber handles GET requests for the account list.
func (h *Handler) ListUsersFiber(c *fiber.Ctx) error {
	users, err := h.Catalog.ListUsers()
	if err != nil {
		return c.Status(statusForError(err)).JSON(ErrorResponse{Message: messageForError(err)})
	}
	return c.Status(fiber.StatusOK).JSON(users)
}

// ListUsersGin handles GET requests for the account list.
func (h *Handler) ListUsersGin(c *gin.Context) {
	users, err := h.Catalog.ListUsers()
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Message: messageForError(err)})
		return
	}
	c.JSON(http.StatusOK, users)
}

// @Summary Create a user
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user body service.AdminUserInput true "Account data"
// @Success 201 {object} model.User "User created"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "User id or email already in use"
// @Router /api/v1/admin/users [post]
// CreateUserFiber handles POST requests to create an account.
func (h *Handler) CreateUserFiber(c *fiber.Ctx) error {
	adminID, _ := c.Locals(middleware.CtxUserID).(string)

	var input service.AdminUserInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Message: "Invalid request body"})
	}
	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Message: err.Error()})
	}

	user, err := h.Catalog.CreateUser(adminID, input, c.IP(), string(c.Request().Header.UserAgent()))
	if err != nil {
		return c.Status(statusForError(err)).JSON(ErrorResponse{Message: messageForError(err)})
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// CreateUserGin handles POST requests to create an account.
func (h *Handler) CreateUserGin(c *gin.Context) {
	adminID := c.GetString(middleware.CtxUserID)

	var input service.AdminUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	user, err := h.Catalog.CreateUser(adminID, input, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Message: messageForError(err)})
		return
	}
	c.JSON(http.StatusCreated, user)
}

// @Summary Update a user
// @Description Edit an account. Password is re-hashed only when provided.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param user body service.AdminUserInput true "Account data"
// @Success 200 {object} model.User "User updated"
// @Failure 404 {object} ErrorResponse "User not found"
// @Router /api/v1/admin/users/{id} [put]
// UpdateUserFiber handles PUT requests to update an account.
func (h *Handler) UpdateUserFiber(c *fiber.Ctx) error {
	adminID, _ := c.Locals(middleware.CtxUserID).(string)

	var input service.AdminUserInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Message: "Invalid request body"})
	}
	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Message: err.Error()})
	}

	user, err := h.Catalog.UpdateUser(adminID, c.Params("id"), input, c.IP(), string(c.Request().Header.UserAgent()))
	if err != nil {
		return c.Status(statusForError(err)).JSON(ErrorResponse{Message: messageForError(err)})
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

// UpdateUserGin handles PUT requests to update an account.
func (h *Handler) UpdateUserGin(c *gin.Context) {
	adminID := c.GetString(middleware.CtxUserID)

	var input service.AdminUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	user, err := h.Catalog.UpdateUser(adminID, c.Param("id"), input, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Message: messageForError(err)})
		return
	}
	c.JSON(http.StatusOK, user)
}

// @Summary Delete a user
// @Description Remove an account together with its records.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 204 "User deleted"
// @Failure 404 {object} ErrorResponse "User not found"
// @Router /api/v1/admin/users/{id} [delete]
// DeleteUserFiber handles DELETE requests to remove an account.
func (h *Handler) DeleteUserFiber(c *fiber.Ctx) error {
	adminID, _ := c.Locals(middleware.CtxUserID).(string)
	if err := h.Catalog.DeleteUser(adminID, c.Params("id"), c.IP(), string(c.Request().Header.UserAgent())); err != nil {
		return c.Status(statusForError(err)).JSON(ErrorResponse{Message: messageForError(err)})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteUserGin handles DELETE requests to remove an account.
func (h *Handler) DeleteUserGin(c *gin.Context) {
	adminID := c.GetString(middleware.CtxUserID)
	if err := h.Catalog.DeleteUser(adminID, c.Param("id"), c.ClientIP(), c.Request.UserAgent()); err != nil {
		c.JSON(statusForError(err), ErrorResponse{Message: messageForError(err)})
		return
	}
	c.Status(http.StatusNoContent)
}

package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gofiber/fiber/v2"

	"github.com/user/samadhi-tracker/internal/service"
)

// LoginInput carries login credentials: the public user id, not the email.
type LoginInput struct {
	UserID   string `json:"userId" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// @Summary Register a new user
// @Description Create an account and receive a signed token for it.
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body service.RegisterInput true "Registration data"
// @Success 201 {object} service.AuthResponse "Account created"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "User id or email already in use"
// @Router /api/v1/auth/register [post]
// RegisterFiber handles POST requests to register a new user.
func (h *Handler) RegisterFiber(c *fiber.Ctx) error {
	var input service.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Message: "Invalid request body"})
	}
	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Message: err.Error()})
	}

	response, err := h.Auth.Register(input, c.IP(), string(c.Request().Header.UserAgent()))
	if err != nil {
		return c.Status(statusForError(err)).JSON(ErrorResponse{Message: messageForError(err)})
	}
	return c.Status(fiber.StatusCreated).JSON(response)
}

// RegisterGin handles POST requests to register a new user.
func (h *Handler) RegisterGin(c *gin.Context) {
	var input service.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	response, err := h.Auth.Register(input, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Message: messageForError(err)})
		return
	}
	c.JSON(http.StatusCreated, response)
}

// @Summary Log in
// @Description Exchange user id and password for a signed token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginInput true "Credentials"
// @Success 200 {object} service.AuthResponse "Logged in"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Invalid user or password"
// @Router /api/v1/auth/login [post]
// LoginFiber handles POST requests to log in.
func (h *Handler) LoginFiber(c *fiber.Ctx) error {
	var input LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Message: "Invalid request body"})
	}
	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Message: err.Error()})
	}

	response, err := h.Auth.Login(input.UserID, input.Password, c.IP(), string(c.Request().Header.UserAgent()))
	if err != nil {
		return c.Status(statusForError(err)).JSON(ErrorResponse{Message: messageForError(err)})
	}
	return c.Status(fiber.StatusOK).JSON(response)
}

// LoginGin handles POST requests to log in.
func (h *Handler) LoginGin(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	response, err := h.Auth.Login(input.UserID, input.Password, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Message: messageForError(err)})
		return
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Verify a token
// @Description Validate the bearer token and return the account it belongs to.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User "Token is valid"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Router /api/v1/auth/verify [get]
// VerifyFiber handles GET requests to verify the caller's token.
func (h *Handler) VerifyFiber(c *fiber.Ctx) error {
	token, ok := bearerFromHeader(c.Get("Authorization"))
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{Message: "Authorization header required"})
	}
	user, err := h.Auth.Verify(token)
	if err != nil {
		return c.Status(statusForError(err)).JSON(ErrorResponse{Message: messageForError(err)})
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

// VerifyGin handles GET requests to verify the caller's token.
func (h *Handler) VerifyGin(c *gin.Context) {
	token, ok := bearerFromHeader(c.GetHeader("Authorization"))
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Authorization header required"})
		return
	}
	user, err := h.Auth.Verify(token)
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Message: messageForError(err)})
		return
	}
	c.JSON(http.StatusOK, user)
}

func bearerFromHeader(header string) (string, bool) {
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(header, "Bearer "), true
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gofiber/fiber/v2"

	"github.com/user/samadhi-tracker/internal/model"
	"github.com/user/samadhi-tracker/internal/service"
)

// Context keys set by the auth middleware for downstream handlers.
const (
	CtxUserID   = "userID"
	CtxUserName = "userName"
	CtxEmail    = "email"
	CtxRole     = "role"
)

func bearerToken(header string) (string, bool) {
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(header, "Bearer "), true
}

// AuthFiber validates the bearer token and stores the caller's identity in
// request locals.
func AuthFiber(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c.Get("Authorization"))
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Authorization header required"})
		}
		claims, err := service.ParseToken(token, secret)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
		}
		id, _ := claims["id"].(string)
		if id == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
		}
		c.Locals(CtxUserID, id)
		if v, ok := claims["userId"].(string); ok {
			c.Locals(CtxUserName, v)
		}
		if v, ok := claims["email"].(string); ok {
			c.Locals(CtxEmail, v)
		}
		if v, ok := claims["role"].(string); ok {
			c.Locals(CtxRole, v)
		}
		return c.Next()
	}
}

// AuthGin validates the bearer token and stores the caller's identity in the
// Gin context.
func AuthGin(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization header required"})
			return
		}
		claims, err := service.ParseToken(token, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}
		id, _ := claims["id"].(string)
		if id == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}
		c.Set(CtxUserID, id)
		if v, ok := claims["userId"].(string); ok {
			c.Set(CtxUserName, v)
		}
		if v, ok := claims["email"].(string); ok {
			c.Set(CtxEmail, v)
		}
		if v, ok := claims["role"].(string); ok {
			c.Set(CtxRole, v)
		}
		c.Next()
	}
}

// AdminOnlyFiber rejects callers without the admin role claim. Must run after
// AuthFiber.
func AdminOnlyFiber() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if role, _ := c.Locals(CtxRole).(string); role != model.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Access denied"})
		}
		return c.Next()
	}
}

// AdminOnlyGin rejects callers without the admin role claim. Must run after
// AuthGin.
func AdminOnlyGin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if role := c.GetString(CtxRole); role != model.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access denied"})
			return
		}
		c.Next()
	}
}

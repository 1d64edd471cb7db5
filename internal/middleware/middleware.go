package middleware

import (
	"strings"

	"emenu/domain"
	"emenu/internal/api/presenters"
	"emenu/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthMiddleware(jwtService jwt.JWTService) fiber.Handler
		OptionalAuthMiddleware(jwtService jwt.JWTService) fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	})
}

// AuthMiddleware guards write endpoints. Requests without a valid bearer
// token are rejected with 401 before any handler logic runs.
func (m *middleware) AuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c)
		if !ok {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrTokenNotFound)
		}

		userID, err := jwtService.GetUserIDByToken(token)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
		}

		c.Locals("user_id", userID)
		c.Locals("is_authenticated", true)
		return c.Next()
	}
}

// OptionalAuthMiddleware resolves the caller identity on read endpoints that
// never require authentication but change shape with it (anonymous menu
// listings hide empty menus). An absent or invalid token means anonymous.
func (m *middleware) OptionalAuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("is_authenticated", false)

		if token, ok := bearerToken(c); ok {
			if userID, err := jwtService.GetUserIDByToken(token); err == nil {
				c.Locals("user_id", userID)
				c.Locals("is_authenticated", true)
			}
		}

		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) (string, bool) {
	header := c.Get("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimPrefix(header, "Bearer ")
	return token, token != ""
}

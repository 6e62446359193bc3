package middleware

import (
	"SkinSense-Backend/domain"
	"SkinSense-Backend/internal/api/presenters"
	"SkinSense-Backend/pkg/jwt"
	"SkinSense-Backend/pkg/user"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthMiddleware(jwtService jwt.JWTService, userService user.UserService) fiber.Handler
		OptionalAuthMiddleware(jwtService jwt.JWTService, userService user.UserService) fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, PUT, DELETE, OPTIONS",
	})
}

// AuthMiddleware resolves the bearer credential to a caller identity and
// guarantees the matching User row exists before any handler runs. Handlers
// read the identity from c.Locals("user_id").
func (m *middleware) AuthMiddleware(jwtService jwt.JWTService, userService user.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c)
		if !ok {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrTokenNotFound)
		}

		claims, err := jwtService.GetClaimsByToken(token)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
		}

		dbUser, err := userService.EnsureUser(c.Context(), claims)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
		}

		c.Locals("user_id", dbUser.ID.String())
		c.Locals("email", dbUser.Email)

		return c.Next()
	}
}

// OptionalAuthMiddleware never rejects: a missing or invalid credential
// leaves user_id empty and the request continues anonymously.
func (m *middleware) OptionalAuthMiddleware(jwtService jwt.JWTService, userService user.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c)
		if !ok {
			c.Locals("user_id", "")
			return c.Next()
		}

		claims, err := jwtService.GetClaimsByToken(token)
		if err != nil {
			c.Locals("user_id", "")
			return c.Next()
		}

		dbUser, err := userService.EnsureUser(c.Context(), claims)
		if err != nil {
			c.Locals("user_id", "")
			return c.Next()
		}

		c.Locals("user_id", dbUser.ID.String())
		c.Locals("email", dbUser.Email)

		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) (string, bool) {
	authHeader := c.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(authHeader, "Bearer "), true
}

package routes

import (
	"SkinSense-Backend/internal/api/handlers"
	"SkinSense-Backend/internal/middleware"
	"SkinSense-Backend/internal/utils"
	"SkinSense-Backend/pkg/jwt"
	"SkinSense-Backend/pkg/user"
	"time"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	ScanHandler     handlers.ScanHandler
	ProgressHandler handlers.ProgressHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
	UserService     user.UserService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Scans()
	c.Progress()
	c.GuestRoute()
}

func (c *Config) User() {
	auth := c.Middleware.AuthMiddleware(c.JWTService, c.UserService)

	users := c.App.Group("/api/v1/users")
	{
		users.Get("/me", auth, c.UserHandler.Me)
		users.Patch("/me", auth, c.UserHandler.UpdateUser)
		users.Get("/:id", auth, c.UserHandler.GetUserByID)
	}
}

func (c *Config) Scans() {
	scans := c.App.Group("/api/v1/scans", c.Middleware.AuthMiddleware(c.JWTService, c.UserService))

	scans.Post("", c.ScanHandler.SubmitScan)
	scans.Get("", c.ScanHandler.GetScans)
	// static route before the id wildcard
	scans.Get("/stats", c.ScanHandler.GetScanStats)
	scans.Get("/:id", c.ScanHandler.GetScanDetails)
	scans.Delete("/:id", c.ScanHandler.DeleteScan)
}

func (c *Config) Progress() {
	progress := c.App.Group("/api/v1/progress", c.Middleware.AuthMiddleware(c.JWTService, c.UserService))

	progress.Get("/summary", c.ProgressHandler.GetProgressSummary)
	progress.Get("/resolved", c.ProgressHandler.GetResolvedProgress)
	progress.Get("", c.ProgressHandler.GetActiveProgress)
	progress.Patch("/:id", c.ProgressHandler.UpdateProgress)
	progress.Post("/:id/photo", c.ProgressHandler.AddProgressPhoto)
	progress.Post("/:id/healing-plan", c.ProgressHandler.GetHealingPlan)
	progress.Delete("/:id", c.ProgressHandler.DeleteProgress)
}

func (c *Config) GuestRoute() {
	optional := c.Middleware.OptionalAuthMiddleware(c.JWTService, c.UserService)

	c.App.Get("/api/health", optional, func(ctx *fiber.Ctx) error {
		userID, _ := ctx.Locals("user_id").(string)
		return ctx.JSON(fiber.Map{
			"status":        "ok",
			"timestamp":     time.Now().Format(time.RFC3339),
			"environment":   utils.GetConfig("APP_ENV"),
			"authenticated": userID != "",
		})
	})
}

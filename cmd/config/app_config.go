package config

import (
	"SkinSense-Backend/internal/api/handlers"
	"SkinSense-Backend/internal/api/routes"
	"SkinSense-Backend/internal/middleware"
	"SkinSense-Backend/internal/utils"
	"SkinSense-Backend/internal/utils/storage"
	"SkinSense-Backend/pkg/analysis"
	"SkinSense-Backend/pkg/jwt"
	"SkinSense-Backend/pkg/progress"
	"SkinSense-Backend/pkg/scan"
	"SkinSense-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
		BodyLimit:         12 * 1024 * 1024, // multipart overhead on top of the 10MB image cap
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	analyzer := newAnalyzer()

	// Repository
	userRepository := user.NewUserRepository(db)
	scanRepository := scan.NewScanRepository(db)
	progressRepository := progress.NewProgressRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository)
	scanService := scan.NewScanService(scanRepository, analyzer, s3)
	progressService := progress.NewProgressService(progressRepository, s3)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	scanHandler := handlers.NewScanHandler(scanService, validator)
	progressHandler := handlers.NewProgressHandler(progressService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     userHandler,
		ScanHandler:     scanHandler,
		ProgressHandler: progressHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
		UserService:     userService,
	}
	routesConfig.Setup()
	return app, nil
}

// newAnalyzer picks the real analyzer endpoint when one is configured and
// falls back to the mock generator otherwise.
func newAnalyzer() analysis.SkinAnalyzer {
	analyzerURL := utils.GetConfig("SKIN_ANALYZER_URL")
	if analyzerURL != "" {
		return analysis.NewHTTPAnalyzer(analyzerURL, utils.GetConfig("SKIN_ANALYZER_API_KEY"))
	}
	log.Info("SKIN_ANALYZER_URL not configured, using mock skin analyzer")
	return analysis.NewMockAnalyzer(time.Now().UnixNano())
}

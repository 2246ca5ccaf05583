package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/photodrop-app/photodrop-backend/internal/config"
	"github.com/photodrop-app/photodrop-backend/internal/handler"
	"github.com/photodrop-app/photodrop-backend/internal/middleware"
	"github.com/photodrop-app/photodrop-backend/internal/repository"
	"github.com/photodrop-app/photodrop-backend/internal/service"
	"github.com/photodrop-app/photodrop-backend/pkg/database"
	"github.com/photodrop-app/photodrop-backend/pkg/storage"
	"github.com/photodrop-app/photodrop-backend/pkg/token"
	"github.com/photodrop-app/photodrop-backend/pkg/utils"
)

func main() {
	// Load .env, ignore if absent (production sets real env vars).
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}
	defer zapLogger.Sync()

	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		zapLogger.Fatal("failed to initialize database", zap.Error(err))
	}

	store, err := newStorage(cfg)
	if err != nil {
		zapLogger.Fatal("failed to initialize storage", zap.Error(err))
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	photoRepo := repository.NewPhotoRepository(db)

	// Services
	tokens := token.NewManager(cfg.JWTSecret, cfg.JWTIssuer)
	authService := service.NewAuthService(userRepo, tokens, zapLogger)
	photoService := service.NewPhotoService(photoRepo, store, zapLogger)

	// Handlers
	validator := utils.NewValidator()
	authHandler := handler.NewAuthHandler(authService, validator)
	photoHandler := handler.NewPhotoHandler(photoService)

	// Router
	// Body limit above the 5 MiB photo cap so oversize uploads get the
	// service's 400 instead of the framework's 413.
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE",
	}))
	app.Use(logger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	// Uploaded files are public read-only when stored locally.
	if cfg.StorageDriver == "local" {
		app.Static(cfg.PublicUploadPath, cfg.UploadDir)
	}

	authGuard := middleware.AuthMiddleware(tokens, userRepo)
	handler.RegisterRoutes(app, authHandler, photoHandler, authGuard)

	zapLogger.Info("server starting", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}

func newStorage(cfg *config.Config) (storage.Storage, error) {
	if cfg.StorageDriver == "s3" {
		return storage.NewS3Storage(cfg)
	}
	return storage.NewLocalStorage(cfg.UploadDir, cfg.PublicUploadPath)
}

package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"educator-site/internal/db"
	"educator-site/internal/event"
	"educator-site/internal/handlers"
	"educator-site/internal/services"
	"educator-site/internal/storage"
	"educator-site/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

var log = event.Log

// Deps are the services the HTTP layer is built from.
type Deps struct {
	Config  utils.Config
	Gallery *services.GalleryService
	Auth    *services.AdminAuth
	Content *services.ContentService
	Hub     *handlers.Hub
}

// New builds the Fiber app with all routes.
func New(d Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit:    d.Config.MaxUploadBytes,
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET, POST, DELETE, PATCH, OPTIONS",
		AllowHeaders: "Content-Type, " + handlers.AdminPasswordHeader + ", Authorization",
		MaxAge:       86400,
	}))

	if d.Config.StorageDriver != "s3" {
		app.Static("/uploads", d.Config.UploadDir)
	}

	api := app.Group("/api")

	// Public Routes
	api.Get("/gallery", handlers.ListPhotosHandler(d.Gallery))
	api.Get("/profile", handlers.ProfileHandler(d.Content))
	api.Get("/recommendations", handlers.RecommendationsHandler(d.Content))
	api.Get("/quizzes", handlers.QuizzesHandler(d.Content))
	api.Post("/quizzes/:id/answer", handlers.QuizAnswerHandler(d.Content))
	api.Get("/poll", handlers.PollHandler(d.Content))
	api.Post("/poll", handlers.PollSubmitHandler(d.Content))
	api.Post("/admin/login", handlers.LoginHandler(d.Auth))

	// Admin Routes
	admin := handlers.AdminMiddleware(d.Auth)
	api.Post("/gallery", admin, handlers.CreatePhotoHandler(d.Gallery))
	api.Delete("/gallery", admin, handlers.DeletePhotoHandler(d.Gallery))
	api.Delete("/gallery/:id", admin, handlers.DeletePhotoHandler(d.Gallery))
	api.Patch("/gallery/:id/order", admin, handlers.ReorderPhotoHandler(d.Gallery))

	// Health Check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// WebSocket Route
	app.Use("/ws", handlers.WSUpgradeMiddleware)
	app.Get("/ws/gallery", handlers.GalleryFeedHandler(d.Hub))

	if d.Config.StaticDir != "" {
		app.Static("/", d.Config.StaticDir, fiber.Static{Index: "index.html"})
	}

	return app
}

func newStorage(cfg utils.Config) (storage.ObjectStorage, error) {
	switch strings.ToLower(cfg.StorageDriver) {
	case "s3":
		return storage.NewS3Storage(storage.S3Config{
			Endpoint:   cfg.S3Endpoint,
			Bucket:     cfg.S3Bucket,
			Region:     cfg.S3Region,
			AccessKey:  cfg.S3AccessKey,
			SecretKey:  cfg.S3SecretKey,
			CDNBaseURL: cfg.CDNBaseURL,
		})
	case "local", "":
		return storage.NewLocalStorage(cfg.UploadDir, cfg.BaseURL)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

func Run() {
	// Load Env
	if err := utils.LoadEnv(); err != nil {
		log.Debugf("config: .env file not found")
	}
	cfg := utils.LoadConfig()
	event.Configure(cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Init DB
	if err := db.InitDB(ctx, cfg.DatabaseURL); err != nil {
		log.Fatalf("db: %v", err)
	}
	defer db.CloseDB()

	if err := db.Migrate(ctx); err != nil {
		log.Fatalf("db: %v", err)
	}

	store, err := newStorage(cfg)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}

	if !cfg.AdminConfigured() {
		log.Warnf("auth: ADMIN_PASSWORD is not set, gallery uploads and deletes are disabled")
	}

	// Services
	hub := handlers.NewHub()
	deps := Deps{
		Config:  cfg,
		Gallery: services.NewGalleryService(db.NewPhotoRepository(db.Pool), store, cfg.GalleryCache, hub),
		Auth:    services.NewAdminAuth(cfg.AdminPassword, cfg.AdminPasswordHash, cfg.JWTSecret, cfg.AdminTokenTTL),
		Content: services.NewContentService(),
		Hub:     hub,
	}

	app := New(deps)

	// Start Server
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	// Graceful Shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c // Block until signal
	log.Info("Gracefully shutting down...")
	_ = app.ShutdownWithTimeout(10 * time.Second)
	log.Info("Server shutdown complete")
}

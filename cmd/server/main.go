package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"

	"github.com/IROMIMPULSE15/SdC-Version-64/internal/adapter/cache"
	"github.com/IROMIMPULSE15/SdC-Version-64/internal/adapter/directory"
	"github.com/IROMIMPULSE15/SdC-Version-64/internal/adapter/http/fiber/handlers"
	"github.com/IROMIMPULSE15/SdC-Version-64/internal/adapter/http/fiber/middleware"
	"github.com/IROMIMPULSE15/SdC-Version-64/internal/observability/telemetry"
	"github.com/IROMIMPULSE15/SdC-Version-64/internal/ports"
	"github.com/IROMIMPULSE15/SdC-Version-64/internal/service/dialogue"
	"github.com/IROMIMPULSE15/SdC-Version-64/internal/service/email"
	"github.com/IROMIMPULSE15/SdC-Version-64/internal/service/lead"
	"github.com/IROMIMPULSE15/SdC-Version-64/pkg/config"
)

const serviceName = "solar-ivr"

func main() {
	// 1. Logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	// 2. Configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	logger.Info("Starting solar campaign IVR service",
		zap.String("service", serviceName),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	if cfg.Notification.OwnerEmail == "" {
		logger.Warn("OWNER_EMAIL is not set, lead notifications will fail until it is configured")
	}

	// 3. Contact directory (read-only after this point)
	contacts := directory.Load(cfg.Contacts.Path, logger)
	telemetry.ContactsLoaded.Set(float64(contacts.Len()))

	// 4. Dedup store: Redis when configured, in-process otherwise
	var dedupStore ports.Cache
	if cfg.Redis.URL != "" {
		redisCache, err := cache.NewRedisCache(cfg.Redis.URL, logger)
		if err != nil {
			logger.Warn("Redis unavailable, falling back to local dedup cache", zap.Error(err))
			dedupStore = cache.NewLocalCache(time.Minute, logger)
		} else {
			defer redisCache.Close()
			dedupStore = redisCache
		}
	} else {
		dedupStore = cache.NewLocalCache(time.Minute, logger)
	}

	// 5. Notification transport
	emailService, err := email.NewService(&email.Config{
		Provider:       cfg.Notification.Email.Provider,
		FromEmail:      cfg.Notification.Email.From,
		FromName:       cfg.Notification.Email.FromName,
		SendGridAPIKey: cfg.Notification.Email.APIKey,
		SMTPHost:       cfg.Notification.Email.SMTPHost,
		SMTPPort:       cfg.Notification.Email.SMTPPort,
		SMTPUsername:   cfg.Notification.Email.SMTPUsername,
		SMTPPassword:   cfg.Notification.Email.SMTPPassword,
		SMTPUseTLS:     cfg.Notification.Email.SMTPUseTLS,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to initialize email service", zap.Error(err))
	}

	// 6. Dialogue services and the lead gate
	classifier := dialogue.NewClassifier(cfg.Dialogue.TimeKeywords)
	engine := dialogue.NewEngine(logger)
	gate := lead.NewGate(lead.Config{
		OwnerEmail:    cfg.Notification.OwnerEmail,
		DedupWindow:   cfg.Notification.DedupWindow,
		NotifyTimeout: cfg.Notification.Timeout,
	}, emailService, contacts, dedupStore, logger)

	// 7. HTTP server
	app := fiber.New(fiber.Config{
		AppName:               serviceName,
		ServerHeader:          serviceName,
		DisableStartupMessage: true,
		ReadTimeout:           cfg.HTTP.ReadTimeout,
		WriteTimeout:          cfg.HTTP.WriteTimeout,
		IdleTimeout:           cfg.HTTP.IdleTimeout,
		ErrorHandler:          middleware.ErrorHandler(logger),
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	if cfg.CircuitBreaker.Enabled {
		app.Use(middleware.CircuitBreaker(logger))
	}

	app.Get("/health/live", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})
	app.Get("/health/ready", func(c *fiber.Ctx) error {
		if err := dedupStore.Ping(); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).SendString("Dedup store not ready")
		}
		return c.SendString("Ready")
	})

	if cfg.Prometheus.Enabled {
		app.Get(cfg.Prometheus.Path, func(c *fiber.Ctx) error {
			handler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
			handler(c.Context())
			return nil
		})
	}

	webhookHandler := handlers.NewWebhookHandler(classifier, engine, gate, logger)
	app.Post("/exotel-webhook", webhookHandler.HandleTurn)

	go func() {
		logger.Info("Starting HTTP Server", zap.Int("port", cfg.HTTP.Port))
		if err := app.Listen(fmt.Sprintf(":%d", cfg.HTTP.Port)); err != nil {
			logger.Fatal("HTTP Server failed", zap.Error(err))
		}
	}()

	// 8. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}

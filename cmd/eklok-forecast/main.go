package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"golang.org/x/time/rate"

	httpapi "github.com/nlgrid/eklok-forecast/internal/api/http"
	"github.com/nlgrid/eklok-forecast/internal/config"
	"github.com/nlgrid/eklok-forecast/internal/forecast"
	"github.com/nlgrid/eklok-forecast/internal/forecast/providers"
	"github.com/nlgrid/eklok-forecast/internal/scheduler"
	"github.com/nlgrid/eklok-forecast/internal/store"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.FetchTimeout,
	}

	// Latest-result cell.
	memStore := store.NewMemoryStore()

	// Provider with an outbound rate limit and circuit breaker.
	limiter := rate.NewLimiter(rate.Limit(cfg.ProviderRPS), cfg.ProviderBurst)
	provider := providers.NewEklokProvider(httpClient, cfg.EklokBaseURL, limiter)

	// Core service orchestrating fetch, analysis and store.
	service := forecast.NewService(provider, memStore)

	// First refresh up front so the API has data before the first tick.
	initCtx, initCancel := context.WithTimeout(context.Background(), 30*time.Second)
	service.RefreshAndStore(initCtx)
	initCancel()

	// Scheduler that periodically refreshes the forecast.
	sched := scheduler.New(cfg.RefreshInterval, service)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "eklok-forecast",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "eklok-forecast",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, service)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}

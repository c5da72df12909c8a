package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Makanak1/Job-Board-Platform/internal/config"
	"github.com/Makanak1/Job-Board-Platform/jobboard/account/accountapi"
	"github.com/Makanak1/Job-Board-Platform/jobboard/application/applicationapi"
	"github.com/Makanak1/Job-Board-Platform/jobboard/candidate/candidateapi"
	"github.com/Makanak1/Job-Board-Platform/jobboard/employer/employerapi"
	"github.com/Makanak1/Job-Board-Platform/jobboard/job/jobapi"
	"github.com/Makanak1/Job-Board-Platform/jobboard/notification/notificationapi"
	"github.com/Makanak1/Job-Board-Platform/jobboard/report/reportapi"
	"github.com/Makanak1/Job-Board-Platform/pkg/errx"
	"github.com/Makanak1/Job-Board-Platform/pkg/iam/auth"
	"github.com/Makanak1/Job-Board-Platform/pkg/logx"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
)

const notificationRetention = 30 * 24 * time.Hour

func main() {
	// 1. Initialize Logger
	logx.SetLevel(logx.LevelInfo)
	logx.Info("Starting Job Board API Server...")

	// 2. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		logx.Fatalf("Failed to load configuration: %v", err)
	}

	// 3. Initialize Dependency Container
	container := NewContainer(cfg)
	defer container.DB.Close()
	defer container.Redis.Close()

	// 4. Start Background Workers
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	container.EmailWorker.Start(workerCtx)

	// Nightly purge of read notifications past the retention window
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("0 2 * * *", func() {
		container.NotificationService.CleanupOld(context.Background(), notificationRetention)
	}); err != nil {
		logx.Fatalf("Failed to schedule notification cleanup: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// 5. Create Fiber App with Config
	app := fiber.New(fiber.Config{
		AppName:               "Job Board API",
		DisableStartupMessage: true,
		ErrorHandler:          globalErrorHandler,
	})

	// 6. Global Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*", // Configure for production
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, PATCH, HEAD",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// 7. Health Check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"db":     container.DB.Ping() == nil,
			"redis":  container.Redis.Ping(c.Context()).Err() == nil,
		})
	})

	// 8. Register Routes
	authMiddleware := auth.Middleware(container.TokenService)

	// Accounts: /api/auth
	accountapi.RegisterRoutes(app, container.AccountHandlers, authMiddleware)

	// Employers: /api/employers
	employerapi.RegisterRoutes(app, container.EmployerHandlers, authMiddleware)

	// Candidates: /api/candidates
	candidateapi.RegisterRoutes(app, container.CandidateHandlers, authMiddleware)

	// Jobs: /api/jobs
	jobapi.RegisterRoutes(app, container.JobHandlers, authMiddleware)

	// Applications: /api/applications
	applicationapi.RegisterRoutes(app, container.ApplicationHandlers, authMiddleware)

	// Notifications: /api/notifications
	notificationapi.RegisterRoutes(app, container.NotificationHandlers, authMiddleware)

	// Admin reports: /api/reports
	reportapi.RegisterRoutes(app, container.ReportHandlers, authMiddleware)

	// 9. Start Server with Graceful Shutdown
	go func() {
		logx.Infof("Server listening on port %s", cfg.Server.Port)
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			logx.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c // Wait for signal
	logx.Info("Shutting down server...")

	stopWorkers()
	if err := app.Shutdown(); err != nil {
		logx.Errorf("Server forced to shutdown: %v", err)
	}

	logx.Info("Server exited")
}

// globalErrorHandler converts internal errors to standard HTTP responses
func globalErrorHandler(c *fiber.Ctx, err error) error {
	// If it's a Fiber error (e.g., 404 handler not found)
	if e, ok := err.(*fiber.Error); ok {
		return c.Status(e.Code).JSON(fiber.Map{
			"error": e.Message,
			"code":  e.Code,
		})
	}

	// If it's our custom errx.Error
	if e, ok := err.(*errx.Error); ok {
		return c.Status(e.HTTPStatus).JSON(e.ToHTTPResponse())
	}

	// Default unknown error
	logx.Errorf("Internal Server Error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "Internal Server Error",
		"type":    "INTERNAL",
		"code":    "INTERNAL_ERROR",
		"message": "An unexpected error occurred",
	})
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rodolog/brokerage-api/docs"
	"github.com/rodolog/brokerage-api/internal/auth"
	"github.com/rodolog/brokerage-api/internal/config"
	"github.com/rodolog/brokerage-api/internal/database"
	"github.com/rodolog/brokerage-api/internal/http/handler"
	"github.com/rodolog/brokerage-api/internal/http/middleware"
	"github.com/rodolog/brokerage-api/internal/http/router"
	"github.com/rodolog/brokerage-api/internal/jobs"
	"github.com/rodolog/brokerage-api/internal/logger"
	"github.com/rodolog/brokerage-api/internal/repository"
	"github.com/rodolog/brokerage-api/internal/service"
	"go.uber.org/zap"
)

// @title Brokerage API
// @version 1.0
// @description CRM and commission backend for an international freight brokerage

// @contact.name API Support
// @contact.email suporte@rodolog.com.br

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&cfg.Logging, &cfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Environment),
		zap.Int("port", cfg.App.Port),
	)

	if cfg.App.Environment == "development" {
		docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", cfg.App.Port)
	}

	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	proposalRepo := repository.NewProposalRepository(db)
	costRepo := repository.NewOperationalCostRepository(db)
	termRepo := repository.NewPaymentTermRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	templateRepo := repository.NewWorkflowTemplateRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	occurrenceRepo := repository.NewOccurrenceRepository(db)

	// Auth
	tokens := auth.NewTokenManager(&cfg.Auth, cfg.App.Name)
	authMiddleware := auth.NewMiddleware(tokens, log)

	// Services
	userService := service.NewUserService(userRepo, tokens, log)
	leadService := service.NewLeadService(leadRepo, templateRepo, taskRepo, log)
	proposalService := service.NewProposalService(proposalRepo, leadRepo, userRepo, costRepo, log)
	commissionService := service.NewCommissionService(proposalRepo, userRepo, leadRepo, log)
	reportService := service.NewReportService(proposalRepo, leadRepo, log)
	taskService := service.NewTaskService(taskRepo, log)
	workflowService := service.NewWorkflowService(templateRepo, taskRepo, log)
	catalogService := service.NewCatalogService(costRepo, termRepo, locationRepo)
	occurrenceService := service.NewOccurrenceService(occurrenceRepo, leadRepo)

	// Middleware
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	// Handlers
	authHandler := handler.NewAuthHandler(userService, log)
	userHandler := handler.NewUserHandler(userService, log)
	leadHandler := handler.NewLeadHandler(leadService, log)
	proposalHandler := handler.NewProposalHandler(proposalService, log)
	commissionHandler := handler.NewCommissionHandler(commissionService, log)
	reportHandler := handler.NewReportHandler(reportService, log)
	taskHandler := handler.NewTaskHandler(taskService, log)
	workflowHandler := handler.NewWorkflowHandler(workflowService, log)
	catalogHandler := handler.NewCatalogHandler(catalogService, log)
	occurrenceHandler := handler.NewOccurrenceHandler(occurrenceService, log)

	rt := router.NewRouter(
		cfg,
		log,
		db,
		authMiddleware,
		rateLimiter,
		authHandler,
		userHandler,
		leadHandler,
		proposalHandler,
		commissionHandler,
		reportHandler,
		taskHandler,
		workflowHandler,
		catalogHandler,
		occurrenceHandler,
	)

	// Background jobs
	scheduler := jobs.NewScheduler(log)
	overdueJob := jobs.NewOverdueTasksJob(taskService, log)
	if err := scheduler.AddJob("overdue-tasks", cfg.Jobs.OverdueTasksCron, overdueJob.Run); err != nil {
		return fmt.Errorf("failed to register overdue tasks job: %w", err)
	}
	scheduler.Start()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		stopCtx := scheduler.Stop()
		<-stopCtx.Done()
		log.Info("Scheduler stopped")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}

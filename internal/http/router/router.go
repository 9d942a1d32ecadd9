package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rodolog/brokerage-api/internal/auth"
	"github.com/rodolog/brokerage-api/internal/config"
	"github.com/rodolog/brokerage-api/internal/database"
	"github.com/rodolog/brokerage-api/internal/domain"
	"github.com/rodolog/brokerage-api/internal/http/handler"
	"github.com/rodolog/brokerage-api/internal/http/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/rodolog/brokerage-api/docs" // Import generated swagger docs
)

type Router struct {
	cfg               *config.Config
	logger            *zap.Logger
	db                *gorm.DB
	authMiddleware    *auth.Middleware
	rateLimiter       *middleware.RateLimiter
	authHandler       *handler.AuthHandler
	userHandler       *handler.UserHandler
	leadHandler       *handler.LeadHandler
	proposalHandler   *handler.ProposalHandler
	commissionHandler *handler.CommissionHandler
	reportHandler     *handler.ReportHandler
	taskHandler       *handler.TaskHandler
	workflowHandler   *handler.WorkflowHandler
	catalogHandler    *handler.CatalogHandler
	occurrenceHandler *handler.OccurrenceHandler
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	authMiddleware *auth.Middleware,
	rateLimiter *middleware.RateLimiter,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	leadHandler *handler.LeadHandler,
	proposalHandler *handler.ProposalHandler,
	commissionHandler *handler.CommissionHandler,
	reportHandler *handler.ReportHandler,
	taskHandler *handler.TaskHandler,
	workflowHandler *handler.WorkflowHandler,
	catalogHandler *handler.CatalogHandler,
	occurrenceHandler *handler.OccurrenceHandler,
) *Router {
	return &Router{
		cfg:               cfg,
		logger:            logger,
		db:                db,
		authMiddleware:    authMiddleware,
		rateLimiter:       rateLimiter,
		authHandler:       authHandler,
		userHandler:       userHandler,
		leadHandler:       leadHandler,
		proposalHandler:   proposalHandler,
		commissionHandler: commissionHandler,
		reportHandler:     reportHandler,
		taskHandler:       taskHandler,
		workflowHandler:   workflowHandler,
		catalogHandler:    catalogHandler,
		occurrenceHandler: occurrenceHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.Limit)

	// Health check (basic liveness probe)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Readiness probe checking database connectivity
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := database.HealthCheck(rt.db); err != nil {
			rt.logger.Error("database health check failed", zap.Error(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status": "unhealthy",
				"error":  err.Error(),
			})
			return
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "healthy",
		})
	})

	// Swagger documentation
	if rt.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public routes (no auth required)
		r.Post("/auth/login", rt.authHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(rt.authMiddleware.Authenticate)

			r.Get("/auth/me", rt.authHandler.Me)

			// User management is restricted to managers
			r.Route("/users", func(r chi.Router) {
				r.Get("/", rt.userHandler.List)
				r.Get("/{id}", rt.userHandler.Get)
				r.Group(func(r chi.Router) {
					r.Use(rt.authMiddleware.RequireRole(domain.RoleAdmin))
					r.Post("/", rt.userHandler.Create)
					r.Put("/{id}", rt.userHandler.Update)
					r.Delete("/{id}", rt.userHandler.Delete)
				})
			})

			r.Route("/leads", func(r chi.Router) {
				r.Get("/", rt.leadHandler.List)
				r.Post("/", rt.leadHandler.Create)
				r.Get("/{id}", rt.leadHandler.Get)
				r.Put("/{id}", rt.leadHandler.Update)
				r.Delete("/{id}", rt.leadHandler.Delete)
			})

			r.Route("/proposals", func(r chi.Router) {
				r.Get("/", rt.proposalHandler.List)
				r.Post("/", rt.proposalHandler.Create)
				r.Get("/{id}", rt.proposalHandler.Get)
				r.Delete("/{id}", rt.proposalHandler.Delete)
				r.Post("/{id}/accept", rt.proposalHandler.Accept)
				r.Post("/{id}/finalize", rt.proposalHandler.Finalize)
				r.Post("/{id}/reject", rt.proposalHandler.Reject)
				r.Patch("/{id}/faturado", rt.proposalHandler.SetFaturado)
			})

			r.Route("/commissions", func(r chi.Router) {
				r.Get("/", rt.commissionHandler.List)
				r.Get("/{vendedorId}", rt.commissionHandler.Get)
				r.Get("/{vendedorId}/export", rt.commissionHandler.Export)
			})

			// Reports are manager-only
			r.Route("/reports", func(r chi.Router) {
				r.Use(rt.authMiddleware.RequireManager)
				r.Get("/monthly", rt.reportHandler.MonthlySummary)
				r.Get("/abc", rt.reportHandler.ABCClassification)
				r.Get("/losses", rt.reportHandler.LossProcesses)
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", rt.taskHandler.List)
				r.Delete("/{id}", rt.taskHandler.Delete)
				r.Post("/{id}/complete", rt.taskHandler.Complete)
				r.Post("/{id}/reschedule", rt.taskHandler.Reschedule)
			})

			r.Route("/workflow-templates", func(r chi.Router) {
				r.Get("/", rt.workflowHandler.List)
				r.Group(func(r chi.Router) {
					r.Use(rt.authMiddleware.RequireManager)
					r.Post("/", rt.workflowHandler.Create)
					r.Put("/{id}", rt.workflowHandler.Update)
					r.Delete("/{id}", rt.workflowHandler.Delete)
				})
			})

			r.Route("/operational-costs", func(r chi.Router) {
				r.Get("/", rt.catalogHandler.ListCosts)
				r.Post("/", rt.catalogHandler.CreateCost)
				r.Put("/{id}", rt.catalogHandler.UpdateCost)
				r.Delete("/{id}", rt.catalogHandler.DeleteCost)
			})

			r.Route("/payment-terms", func(r chi.Router) {
				r.Get("/", rt.catalogHandler.ListPaymentTerms)
				r.Post("/", rt.catalogHandler.CreatePaymentTerm)
				r.Put("/{id}", rt.catalogHandler.UpdatePaymentTerm)
				r.Delete("/{id}", rt.catalogHandler.DeletePaymentTerm)
			})

			r.Route("/locations", func(r chi.Router) {
				r.Get("/", rt.catalogHandler.ListLocations)
				r.Post("/", rt.catalogHandler.CreateLocation)
				r.Put("/{id}", rt.catalogHandler.UpdateLocation)
				r.Delete("/{id}", rt.catalogHandler.DeleteLocation)
			})

			r.Route("/occurrences", func(r chi.Router) {
				r.Get("/", rt.occurrenceHandler.List)
				r.Post("/", rt.occurrenceHandler.Create)
				r.Delete("/{id}", rt.occurrenceHandler.Delete)
			})
		})
	})

	return r
}

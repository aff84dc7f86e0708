// Package http wires the gin router: public auth and assistant routes, and
// authenticated CRUD routes for incidents, tickets, and datasets. User
// administration is admin-only.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	appauth "secdesk/internal/application/auth"
	"secdesk/internal/application/assistant"
	infraauth "secdesk/internal/infrastructure/auth"
	"secdesk/internal/infrastructure/config"
	"secdesk/internal/infrastructure/repository"
	"secdesk/internal/interfaces/http/handlers"
	"secdesk/internal/interfaces/http/middleware"
	"secdesk/internal/shared/logger"
)

type Router struct {
	engine *gin.Engine
	cfg    *config.Config
	db     *gorm.DB
	asst   *assistant.Assistant
	logger logger.Interface
}

func NewRouter(cfg *config.Config, db *gorm.DB, asst *assistant.Assistant, logger logger.Interface) *Router {
	return &Router{
		engine: gin.New(),
		cfg:    cfg,
		db:     db,
		asst:   asst,
		logger: logger,
	}
}

func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

func (r *Router) SetupRoutes() {
	handlers.RegisterValidators()

	r.engine.Use(gin.Recovery())

	userRepo := repository.NewUserRepository(r.db, r.logger)
	incidentRepo := repository.NewIncidentRepository(r.db, r.logger)
	ticketRepo := repository.NewTicketRepository(r.db, r.logger)
	datasetRepo := repository.NewDatasetRepository(r.db, r.logger)

	hasher := infraauth.NewBcryptPasswordHasher(r.cfg.Auth.BcryptCost)
	jwtService := infraauth.NewJWTService(r.cfg.Auth.JWTSecret, r.cfg.Auth.TokenExpMinutes)

	registerUC := appauth.NewRegisterUseCase(userRepo, hasher, r.logger)
	loginUC := appauth.NewLoginUseCase(userRepo, hasher, r.logger)

	authHandler := handlers.NewAuthHandler(registerUC, loginUC, jwtService, r.logger)
	userHandler := handlers.NewUserHandler(userRepo, r.logger)
	incidentHandler := handlers.NewIncidentHandler(incidentRepo, r.logger)
	ticketHandler := handlers.NewTicketHandler(ticketRepo, r.logger)
	datasetHandler := handlers.NewDatasetHandler(datasetRepo, r.logger)
	assistantHandler := handlers.NewAssistantHandler(r.asst, r.logger)

	authMW := middleware.NewAuthMiddleware(jwtService, r.logger)

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	protected := api.Group("")
	protected.Use(authMW.RequireAuth())
	{
		protected.POST("/assistant", assistantHandler.Ask)

		incidents := protected.Group("/incidents")
		{
			incidents.POST("", incidentHandler.Create)
			incidents.GET("", incidentHandler.List)
			incidents.PUT("/:id/status", incidentHandler.UpdateStatus)
			incidents.DELETE("/:id", incidentHandler.Delete)
		}

		tickets := protected.Group("/tickets")
		{
			tickets.POST("", ticketHandler.Create)
			tickets.GET("", ticketHandler.List)
			tickets.PUT("/:id", ticketHandler.Update)
			tickets.DELETE("/:id", ticketHandler.Delete)
		}

		datasets := protected.Group("/datasets")
		{
			datasets.POST("", datasetHandler.Create)
			datasets.GET("", datasetHandler.List)
			datasets.PUT("/:id", datasetHandler.Update)
			datasets.DELETE("/:id", datasetHandler.Delete)
		}

		admin := protected.Group("/admin")
		admin.Use(authMW.RequireAdmin())
		{
			admin.GET("/users", userHandler.ListUsers)
			admin.PUT("/users/:username/role", userHandler.UpdateRole)
		}
	}
}

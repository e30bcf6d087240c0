// Package http wires the HTTP surface: repositories, use cases, handlers,
// middleware, and routes.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	profileusecases "caseline/internal/application/profile/usecases"
	ticketusecases "caseline/internal/application/ticket/usecases"
	"caseline/internal/domain/notification"
	"caseline/internal/infrastructure/auth"
	"caseline/internal/infrastructure/config"
	"caseline/internal/infrastructure/repository"
	profilehandlers "caseline/internal/interfaces/http/handlers/profile"
	tickethandlers "caseline/internal/interfaces/http/handlers/ticket"
	"caseline/internal/interfaces/http/middleware"
	"caseline/internal/interfaces/http/routes"
	"caseline/internal/shared/logger"
	"caseline/internal/shared/utils"
)

type Router struct {
	engine         *gin.Engine
	profileHandler *profilehandlers.ProfileHandler
	ticketHandler  *tickethandlers.TicketHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter builds the fully wired HTTP router.
func NewRouter(cfg *config.Config, db *gorm.DB, mailer notification.Mailer, log logger.Interface) *Router {
	gin.SetMode(cfg.Server.Mode)
	engine := gin.New()

	ipProfiles := repository.NewIPProfileRepository(db)
	spProfiles := repository.NewSPProfileRepository(db)
	profileDeleter := repository.NewProfileDeleteService(db)
	tickets := repository.NewTicketRepository(db)

	jwtService := auth.NewJWTService(&cfg.Auth.JWT)

	profileHandler := profilehandlers.NewProfileHandler(
		profileusecases.NewCreateProfileUseCase(ipProfiles, spProfiles, log),
		profileusecases.NewGetOwnProfileUseCase(log),
		profileusecases.NewGetProfileUseCase(ipProfiles, spProfiles, log),
		profileusecases.NewListProfilesUseCase(ipProfiles, spProfiles, log),
		profileusecases.NewUpdateProfileUseCase(ipProfiles, spProfiles, mailer, log),
		profileusecases.NewDeleteProfileUseCase(profileDeleter, log),
		log,
	)

	ticketHandler := tickethandlers.NewTicketHandler(
		ticketusecases.NewCreateTicketUseCase(tickets, mailer, log),
		log,
	)

	return &Router{
		engine:         engine,
		profileHandler: profileHandler,
		ticketHandler:  ticketHandler,
		authMiddleware: middleware.NewAuthMiddleware(jwtService, ipProfiles, spProfiles, log),
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes(cfg *config.Config, log logger.Interface) {
	r.engine.Use(middleware.Logger(log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, http.StatusOK, "ok", nil)
	})

	routes.SetupProfileRoutes(r.engine, &routes.ProfileRouteConfig{
		ProfileHandler: r.profileHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:  r.ticketHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// Engine exposes the underlying gin engine for the HTTP server.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

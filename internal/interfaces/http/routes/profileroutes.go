package routes

import (
	"github.com/gin-gonic/gin"

	profilehandlers "caseline/internal/interfaces/http/handlers/profile"
	"caseline/internal/interfaces/http/middleware"
	"caseline/internal/shared/authorization"
)

type ProfileRouteConfig struct {
	ProfileHandler *profilehandlers.ProfileHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupProfileRoutes(engine *gin.Engine, config *ProfileRouteConfig) {
	profiles := engine.Group("/profiles")
	profiles.Use(config.AuthMiddleware.RequireAuth())
	{
		profiles.POST("", config.ProfileHandler.CreateProfile)
		profiles.GET("/me", config.ProfileHandler.GetOwnProfile)

		ip := profiles.Group("/ip")
		{
			ip.GET("", config.ProfileHandler.ListProfiles(authorization.RoleIP))
			ip.GET("/:id", config.ProfileHandler.GetProfile(authorization.RoleIP))
			ip.PUT("/:id", config.ProfileHandler.UpdateProfile(authorization.RoleIP))
			ip.DELETE("/:id", config.ProfileHandler.DeleteProfile(authorization.RoleIP))
		}

		sp := profiles.Group("/sp")
		{
			sp.GET("", config.ProfileHandler.ListProfiles(authorization.RoleSP))
			sp.GET("/:id", config.ProfileHandler.GetProfile(authorization.RoleSP))
			sp.PUT("/:id", config.ProfileHandler.UpdateProfile(authorization.RoleSP))
			sp.DELETE("/:id", config.ProfileHandler.DeleteProfile(authorization.RoleSP))
		}
	}
}

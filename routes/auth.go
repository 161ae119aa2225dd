package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/skyyuga/tyremart-api/auth"
	"github.com/skyyuga/tyremart-api/config"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	authGroup := r.Group("/auth")
	{
		// Regular user Google login
		authGroup.POST("/google-user", auth.GoogleUserLoginHandler(db, cfg))

		// Admin Google login, allow-list gated
		authGroup.POST("/google-admin", auth.GoogleAdminLoginHandler(db, cfg))
	}
}

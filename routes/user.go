package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/skyyuga/tyremart-api/config"
	usercontroller "github.com/skyyuga/tyremart-api/controllers/user"
	"github.com/skyyuga/tyremart-api/middleware"
	"gorm.io/gorm"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT
// middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken(cfg))
	{
		userGroup.GET("/", usercontroller.GetUser(db))

		// Profile completion gate: checkout stays blocked until phone
		// and vehicle number are filled in.
		userGroup.GET("/profile-status", usercontroller.ProfileStatus(db))
		userGroup.PUT("/phone", usercontroller.UpdatePhone(db))
		userGroup.PUT("/vehicle", usercontroller.UpdateVehicleNumber(db))
	}
}

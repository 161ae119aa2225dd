package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/skyyuga/tyremart-api/config"
	ordercontroller "github.com/skyyuga/tyremart-api/controllers/order"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the public,
// user, admin and order route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	feed := ordercontroller.NewFeed()

	// Public storefront + auth (no middleware)
	SetupAuthRoutes(r, db, cfg)
	SetupPublicRoutes(r, db)

	// User routes (JWT-protected)
	SetupUserRoutes(r, db, cfg)

	// Admin routes (API-key-protected; reads additionally allow-list
	// gated inside the handlers)
	SetupAdminRoutes(r, db, cfg)

	// Order placement, history, status flow and the admin feed
	SetupOrderRoutes(r, db, cfg, feed)
}

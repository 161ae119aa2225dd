package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/skyyuga/tyremart-api/config"
	productcontroller "github.com/skyyuga/tyremart-api/controllers/product"
	qrcontroller "github.com/skyyuga/tyremart-api/controllers/qr"
	usercontroller "github.com/skyyuga/tyremart-api/controllers/user"
	"github.com/skyyuga/tyremart-api/middleware"
	"github.com/skyyuga/tyremart-api/storage"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires the
// API-key middleware; reads are additionally allow-list gated inside
// the handlers.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	store := storage.NewDiskStore(cfg.UploadDir)

	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey(cfg))
	{
		// ─────────── User Management ───────────
		adminGroup.GET("/users", usercontroller.GetAllUsers(db, cfg))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db, store))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		// ─────────── Payment QR Management ───────────
		qrAdmin := adminGroup.Group("/qr")
		{
			qrAdmin.POST("/upload", qrcontroller.UploadQRFile(db, cfg))
			qrAdmin.DELETE("/:id", qrcontroller.DeleteQRFile(db, cfg))
		}
	}
}

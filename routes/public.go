package routes

import (
	"github.com/gin-gonic/gin"
	productcontroller "github.com/skyyuga/tyremart-api/controllers/product"
	qrcontroller "github.com/skyyuga/tyremart-api/controllers/qr"
	"gorm.io/gorm"
)

// SetupPublicRoutes registers the unauthenticated storefront reads.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(db))           // grid + category tabs
		products.GET("/filter", productcontroller.FilterProducts(db)) // faceted size/model filter
		products.GET("/:id", productcontroller.GetProductByID(db))
	}

	// Checkout reads the newest QR for the UPIQR payment method.
	r.GET("/qr", qrcontroller.GetQRFiles(db))
}

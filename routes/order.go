package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/skyyuga/tyremart-api/config"
	ordercontroller "github.com/skyyuga/tyremart-api/controllers/order"
	"gorm.io/gorm"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, feed *ordercontroller.Feed) {
	orders := r.Group("/orders")
	{
		// Checkout: cart snapshot + delivery form → PENDING order
		orders.POST("", ordercontroller.CreateOrder(db, feed))

		// Customer order history
		orders.GET("/user", ordercontroller.GetOrdersByEmail(db))

		// Admin reads and mutations, allow-list gated in the handlers
		orders.GET("", ordercontroller.GetAllOrders(db, cfg))
		orders.PUT("/:orderID/status", ordercontroller.UpdateOrderStatus(db, cfg, feed))
		orders.DELETE("", ordercontroller.DeleteAllOrders(db, cfg))

		// Live feed for admin dashboards
		orders.GET("/ws", feed.Handler())
	}
}

package ordercontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skyyuga/tyremart-api/config"
	"github.com/skyyuga/tyremart-api/models"
	"gorm.io/gorm"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// GetAllOrders is the admin dashboard read. Authorization failures
// come back as a structured {"error": ...} payload, not a transport
// error, and the message tells a misconfigured deployment apart from a
// denied caller.
func GetAllOrders(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := cfg.AdminEmails.Authorize(callerEmail(c)); err != nil {
			c.JSON(http.StatusOK, gin.H{"error": err.Error()})
			return
		}

		var orders []models.Order
		if err := db.
			Preload("Lines").
			Preload("User").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}

// UpdateOrderStatus moves an order through the fulfilment flow. Only
// allow-listed admins may call it. Setting the current status again is
// a no-op that succeeds; in strict mode other transitions must follow
// the table, otherwise any known status is accepted.
func UpdateOrderStatus(db *gorm.DB, cfg *config.Config, feed *Feed) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := cfg.AdminEmails.Authorize(callerEmail(c)); err != nil {
			c.JSON(http.StatusOK, gin.H{"error": err.Error()})
			return
		}

		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		newStatus, err := models.ParseOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.First(&order, "id = ?", orderID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			}
			return
		}

		if !order.Status.CanTransition(newStatus, cfg.StrictStatusFlow) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "illegal status transition"})
			return
		}

		if err := db.Model(&order).Update("status", newStatus).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
			return
		}

		order.Status = newStatus
		feed.BroadcastStatusChange(order)

		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}

// DeleteAllOrders purges the order collection, admin-only.
func DeleteAllOrders(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := cfg.AdminEmails.Authorize(callerEmail(c)); err != nil {
			c.JSON(http.StatusOK, gin.H{"error": err.Error()})
			return
		}

		var count int64
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.Order{}).Count(&count).Error; err != nil {
				return err
			}
			if err := tx.Where("1 = 1").Delete(&models.OrderLine{}).Error; err != nil {
				return err
			}
			return tx.Where("1 = 1").Delete(&models.Order{}).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete orders"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"deletedCount": count})
	}
}

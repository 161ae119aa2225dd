package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skyyuga/tyremart-api/catalog"
	"github.com/skyyuga/tyremart-api/models"
	"gorm.io/gorm"
)

// GetProducts returns the whole catalog plus the distinct categories
// the storefront builds its tabs from.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Order("created_at DESC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"products":      products,
			"allCategories": catalog.Categories(products),
		})
	}
}

// FilterProducts resolves the faceted filter for the storefront grid.
// Query params: category (or "All"), size, model — all optional.
func FilterProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Order("created_at DESC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		result := catalog.Resolve(products, catalog.Filter{
			Category: c.Query("category"),
			Size:     c.Query("size"),
			Model:    c.Query("model"),
		})

		c.JSON(http.StatusOK, result)
	}
}

package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skyyuga/tyremart-api/models"
	"github.com/skyyuga/tyremart-api/storage"
	"gorm.io/gorm"
)

// DeleteProduct removes a product and then asks the object store to
// drop its backing images. The image deletion is advisory: a storage
// failure is logged and the delete still succeeds.
func DeleteProduct(db *gorm.DB, store storage.ObjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		if err := db.Delete(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}

		storage.CleanupImages(store, product.ImageURLs)

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}

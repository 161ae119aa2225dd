package productcontroller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skyyuga/tyremart-api/models"
	"gorm.io/gorm"
)

type UpdateProductRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	ImageURL    *[]string `json:"imageUrl"`
	Cost        *float64  `json:"cost"`
	Category    *string   `json:"category"`
	Discount    *float64  `json:"discount"`
	GSTRate     *int      `json:"gstRate"`
	Size        *string   `json:"size"`
	Model       *[]string `json:"model"`
}

// UpdateProduct patches a product. Omitted fields keep their stored
// value; the result must still satisfy the creation invariants.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
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

		var req UpdateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if req.Title != nil {
			product.Title = *req.Title
		}
		if req.Description != nil {
			product.Description = *req.Description
		}
		if req.ImageURL != nil {
			product.ImageURLs = *req.ImageURL
		}
		if req.Cost != nil {
			product.Cost = *req.Cost
		}
		if req.Category != nil {
			product.Category = *req.Category
		}
		if req.Discount != nil {
			product.Discount = *req.Discount
		}
		if req.GSTRate != nil {
			product.GSTRate = *req.GSTRate
		}
		if req.Size != nil {
			product.Size = *req.Size
		}
		if req.Model != nil {
			product.Models = *req.Model
		}

		patched := CreateProductRequest{
			Title:       product.Title,
			Description: product.Description,
			ImageURL:    product.ImageURLs,
			Cost:        product.Cost,
			Category:    product.Category,
			Discount:    product.Discount,
			GSTRate:     product.GSTRate,
			Size:        product.Size,
			Model:       product.Models,
		}
		if err := patched.validate(); err != nil {
			log.Printf("❌ Product update rejected: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

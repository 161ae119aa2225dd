package productcontroller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skyyuga/tyremart-api/models"
	"gorm.io/gorm"
)

type CreateProductRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	ImageURL    []string `json:"imageUrl"`
	Cost        float64  `json:"cost"`
	Category    string   `json:"category" binding:"required"`
	Discount    float64  `json:"discount"`
	GSTRate     int      `json:"gstRate"`
	Size        string   `json:"size"`
	Model       []string `json:"model"`
}

// validate enforces the product creation contract. These checks run
// before any store call; a rejected product is never partially saved.
func (r CreateProductRequest) validate() error {
	if len(r.ImageURL) == 0 {
		return errors.New("at least one image is required")
	}
	if r.Cost < 1 {
		return errors.New("cost must be at least 1")
	}
	if r.Discount < 0 || r.Discount > r.Cost {
		return errors.New("discount must be between 0 and cost")
	}
	if !models.ValidGSTRates[r.GSTRate] {
		return errors.New("gstRate must be one of 5, 18 or 40")
	}
	if r.Category == models.CategoryTyres && len(r.Model) == 0 {
		return errors.New("a tyre needs at least one compatible vehicle model")
	}
	return nil
}

// CreateProduct creates a catalog product. The response mirrors the
// storefront contract: 201 {success:true} or 400 {success:false} with
// the specific cause logged rather than exposed.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Printf("❌ Product create rejected: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error Creating Product"})
			return
		}

		if err := req.validate(); err != nil {
			log.Printf("❌ Product create rejected: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error Creating Product"})
			return
		}

		product := models.Product{
			Title:       req.Title,
			Description: req.Description,
			ImageURLs:   req.ImageURL,
			Cost:        req.Cost,
			Category:    req.Category,
			Discount:    req.Discount,
			GSTRate:     req.GSTRate,
			Size:        req.Size,
			Models:      req.Model,
		}

		if err := db.Create(&product).Error; err != nil {
			log.Printf("❌ Failed to create product: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error Creating Product"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Product Created Successfully",
			"id":      product.ID,
		})
	}
}

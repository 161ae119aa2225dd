package ordercontroller

import (
	"errors"
	"log"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/skyyuga/tyremart-api/models"
	"github.com/skyyuga/tyremart-api/pricing"
	"gorm.io/gorm"
)

type OrderLineInput struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type CreateOrderRequest struct {
	Products        []OrderLineInput `json:"products"`
	TotalCost       float64          `json:"totalCost"` // client display value; the server reprices
	PaymentMethod   string           `json:"paymentMethod"`
	ReferenceNumber int64            `json:"referenceNumber"`
	Name            string           `json:"name"`
	Email           string           `json:"email"`
	ContactNumber   string           `json:"contactNumber"`
	Address         string           `json:"address"`
	State           string           `json:"state"`
	Pincode         string           `json:"pincode"`
	VehicleNumber   string           `json:"vehicleNumber"`
	// ClientToken makes resubmission of the same checkout idempotent.
	ClientToken string `json:"clientToken"`
}

var pincodeRe = regexp.MustCompile(`^[0-9]{6}$`)

// validate runs the creation preconditions. Nothing is persisted until
// every check passes. The state list shown in the checkout form is a
// client-side aid; the server tolerates any non-empty state.
func (r CreateOrderRequest) validate() error {
	if len(r.Products) == 0 {
		return errors.New("cart is empty")
	}
	if len(r.Address) < 10 {
		return errors.New("address must be at least 10 characters")
	}
	if !pincodeRe.MatchString(r.Pincode) {
		return errors.New("pincode must be exactly 6 digits")
	}
	if strings.TrimSpace(r.State) == "" {
		return errors.New("state is required")
	}
	if r.ReferenceNumber == 0 {
		return errors.New("payment reference number is required")
	}
	if _, err := models.ParsePaymentMethod(r.PaymentMethod); err != nil {
		return err
	}
	return nil
}

// CreateOrder turns a submitted cart into a persisted PENDING order.
// The order is priced server-side from catalog state at this instant
// and each line freezes that price. Every failure class collapses to
// the same 400 shape; the cause is logged, not exposed.
func CreateOrder(db *gorm.DB, feed *Feed) gin.HandlerFunc {
	fail := func(c *gin.Context, err error) {
		log.Printf("❌ Order creation failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error Creating Order"})
	}

	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, err)
			return
		}
		if err := req.validate(); err != nil {
			fail(c, err)
			return
		}
		method, _ := models.ParsePaymentMethod(req.PaymentMethod)

		// The caller must already exist as a user; checkout does not
		// create accounts.
		var user models.User
		if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
			fail(c, err)
			return
		}

		// Resubmission with a known token returns the original order
		// instead of creating a duplicate.
		if req.ClientToken != "" {
			var existing models.Order
			err := db.Where("client_token = ?", req.ClientToken).First(&existing).Error
			if err == nil {
				c.JSON(http.StatusCreated, gin.H{"success": true, "message": existing.ID})
				return
			}
			if err != gorm.ErrRecordNotFound {
				fail(c, err)
				return
			}
		}

		var order models.Order
		err := db.Transaction(func(tx *gorm.DB) error {
			var lines []models.OrderLine
			var priced []pricing.Line

			for _, item := range req.Products {
				var product models.Product
				if err := tx.First(&product, "id = ?", item.ProductID).Error; err != nil {
					return err
				}

				lines = append(lines, models.OrderLine{
					ProductID: product.ID,
					Quantity:  item.Quantity,
					Title:     product.Title,
					UnitCost:  product.Cost,
					Discount:  product.Discount,
					GSTRate:   product.GSTRate,
				})
				priced = append(priced, pricing.Line{
					Cost:     product.Cost,
					Discount: product.Discount,
					GSTRate:  product.GSTRate,
					Quantity: item.Quantity,
				})
			}

			order = models.Order{
				UserID:          user.ID,
				Lines:           lines,
				TotalCost:       pricing.FinalTotal(priced),
				Status:          models.OrderStatusPending,
				PaymentMethod:   method,
				ReferenceNumber: req.ReferenceNumber,
				Name:            req.Name,
				Email:           req.Email,
				ContactNumber:   req.ContactNumber,
				Address:         req.Address,
				State:           req.State,
				Pincode:         req.Pincode,
				VehicleNumber:   req.VehicleNumber,
			}
			if req.ClientToken != "" {
				token := req.ClientToken
				order.ClientToken = &token
			}

			return tx.Create(&order).Error
		})
		if err != nil {
			// A concurrent resubmission can land the token first; the
			// original order is the answer either way.
			if req.ClientToken != "" {
				var existing models.Order
				if lookupErr := db.Where("client_token = ?", req.ClientToken).First(&existing).Error; lookupErr == nil {
					c.JSON(http.StatusCreated, gin.H{"success": true, "message": existing.ID})
					return
				}
			}
			fail(c, err)
			return
		}

		feed.BroadcastNewOrder(order)

		c.JSON(http.StatusCreated, gin.H{"success": true, "message": order.ID})
	}
}

// GetOrdersByEmail returns the caller's order history, newest first.
// An unknown email yields an empty list, not an error.
func GetOrdersByEmail(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := callerEmail(c)
		if email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
			return
		}

		orders := []models.Order{}
		if err := db.
			Where("email = ?", email).
			Preload("Lines").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}

// callerEmail prefers the identity the JWT middleware stored on the
// context and falls back to an explicit query parameter.
func callerEmail(c *gin.Context) string {
	if v, ok := c.Get("email"); ok {
		if email, ok := v.(string); ok && email != "" {
			return email
		}
	}
	return c.Query("email")
}

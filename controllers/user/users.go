package usercontroller

import (
	"errors"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/skyyuga/tyremart-api/config"
	"github.com/skyyuga/tyremart-api/models"
	"gorm.io/gorm"
)

var phoneRe = regexp.MustCompile(`^[0-9]{10}$`)

// GET /user
func GetUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// GET /user/profile-status
// Checkout blocks while profileIncomplete is true.
func ProfileStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"profileIncomplete": user.ProfileIncomplete()})
	}
}

// PUT /user/phone
func UpdatePhone(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		var input struct {
			Phone string `json:"phone" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !phoneRe.MatchString(input.Phone) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "phone must be 10 digits"})
			return
		}

		if err := patchUser(db, userID, "phone", input.Phone); err != nil {
			respondPatchError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Phone number updated"})
	}
}

// PUT /user/vehicle
func UpdateVehicleNumber(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		var input struct {
			VehicleNumber string `json:"vehicleNumber" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if len(input.VehicleNumber) < 8 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "vehicle number must be at least 8 characters"})
			return
		}

		if err := patchUser(db, userID, "vehicle_number", input.VehicleNumber); err != nil {
			respondPatchError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Vehicle number updated"})
	}
}

// GET /admin/users — allow-list gated, same structured error contract
// as the order reads.
func GetAllUsers(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := cfg.AdminEmails.Authorize(callerEmail(c)); err != nil {
			c.JSON(http.StatusOK, gin.H{"error": err.Error()})
			return
		}

		var users []models.User
		if err := db.
			Select("id", "email", "name", "phone", "vehicle_number", "picture", "provider", "created_at").
			Order("created_at desc").
			Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}

		c.JSON(http.StatusOK, users)
	}
}

var errUserNotFound = errors.New("user not found")

func patchUser(db *gorm.DB, userID interface{}, column, value string) error {
	result := db.Model(&models.User{}).Where("id = ?", userID).Update(column, value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errUserNotFound
	}
	return nil
}

func respondPatchError(c *gin.Context, err error) {
	if errors.Is(err, errUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
}

// callerEmail prefers the JWT identity and falls back to an explicit
// query parameter.
func callerEmail(c *gin.Context) string {
	if v, ok := c.Get("email"); ok {
		if email, ok := v.(string); ok && email != "" {
			return email
		}
	}
	return c.Query("email")
}

package auth

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	firebase "firebase.google.com/go"
	fbauth "firebase.google.com/go/auth"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/api/option"
	"gorm.io/gorm"

	"github.com/skyyuga/tyremart-api/config"
	"github.com/skyyuga/tyremart-api/models"
)

var (
	firebaseApp  *firebase.App
	firebaseAuth *fbauth.Client
	projectID    string
)

// Init sets up the Firebase identity client. Called once from main;
// a failure is fatal because every login path verifies through it.
func Init() {
	ctx := context.Background()

	credsJSON := os.Getenv("FIREBASE_CREDENTIALS_JSON")
	if credsJSON == "" {
		log.Fatal("❌ FIREBASE_CREDENTIALS_JSON must be set")
	}

	projectID = os.Getenv("FIREBASE_PROJECT_ID")
	if projectID == "" {
		log.Fatal("❌ FIREBASE_PROJECT_ID must be set")
	}

	opt := option.WithCredentialsJSON([]byte(credsJSON))
	fbConfig := &firebase.Config{ProjectID: projectID}

	var err error
	firebaseApp, err = firebase.NewApp(ctx, fbConfig, opt)
	if err != nil {
		log.Fatalf("❌ Error initializing Firebase app: %v", err)
	}

	firebaseAuth, err = firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("❌ Error getting Firebase Auth client: %v", err)
	}
}

type loginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// verifyIDToken checks the Firebase token and returns the identity the
// rest of the system trusts as-is: uid, email, display name, picture.
func verifyIDToken(ctx context.Context, idToken string) (uid, email, name, picture string, err error) {
	token, err := firebaseAuth.VerifyIDTokenAndCheckRevoked(ctx, idToken)
	if err != nil {
		return "", "", "", "", err
	}

	email, _ = token.Claims["email"].(string)
	name, _ = token.Claims["name"].(string)
	picture, _ = token.Claims["picture"].(string)
	return token.UID, email, name, picture, nil
}

// GoogleUserLoginHandler verifies a Google sign-in and creates the
// user record on first sight. Phone and vehicle number stay empty here;
// they are only required once the user reaches checkout.
func GoogleUserLoginHandler(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		uid, email, name, picture, err := verifyIDToken(c.Request.Context(), req.IDToken)
		if err != nil {
			log.Printf("❌ ID token verification failed: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or revoked ID token"})
			return
		}

		var user models.User
		err = db.Where("id = ?", uid).First(&user).Error

		switch {
		case err == gorm.ErrRecordNotFound:
			user = models.User{
				ID:       uid,
				Email:    email,
				Name:     name,
				Picture:  picture,
				Provider: "google",
			}
			if err := db.Create(&user).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
				return
			}
		case err == nil:
			db.Model(&user).Updates(models.User{Name: name, Picture: picture})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token":             issueJWT(cfg.JWTSecret, email, "user", user.ID, name, picture),
			"user":              user,
			"profileIncomplete": user.ProfileIncomplete(),
		})
	}
}

// GoogleAdminLoginHandler verifies a Google sign-in and admits only
// identities on the configured allow-list.
func GoogleAdminLoginHandler(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		uid, email, name, picture, err := verifyIDToken(c.Request.Context(), req.IDToken)
		if err != nil {
			log.Printf("❌ ID token verification failed: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or revoked ID token"})
			return
		}

		if err := cfg.AdminEmails.Authorize(email); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token": issueJWT(cfg.JWTSecret, email, "admin", uid, name, picture),
			"email": email,
			"name":  name,
		})
	}
}

// issueJWT generates the session token carried on subsequent requests.
func issueJWT(secret, email, role, userID, name, picture string) string {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"role":    role,
		"name":    name,
		"picture": picture,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(secret))
	if err != nil {
		return ""
	}

	return signedToken
}

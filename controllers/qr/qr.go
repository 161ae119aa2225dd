package qrcontroller

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skyyuga/tyremart-api/config"
	"github.com/skyyuga/tyremart-api/models"
	"gorm.io/gorm"
)

var unsafeChars = regexp.MustCompile(`[^\w\d\-_\.]`)

// UploadQRFile stores the payment QR image shown for the UPIQR method
// and records its public URL.
func UploadQRFile(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
			return
		}

		cleanName := unsafeChars.ReplaceAllString(file.Filename, "_")
		filename := fmt.Sprintf("%d_%s", time.Now().Unix(), cleanName)

		saveDir := filepath.Join(cfg.UploadDir, "qrfiles")
		if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": fmt.Sprintf("Failed to create upload folder: %v", err),
			})
			return
		}

		savePath := filepath.Join(saveDir, filename)
		if err := c.SaveUploadedFile(file, savePath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": fmt.Sprintf("Failed to save file: %v", err),
			})
			return
		}

		fileURL := fmt.Sprintf("%s/uploads/qrfiles/%s", cfg.PublicBaseURL, filename)

		qrFile, err := models.SaveQRFile(db, filename, fileURL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record QR file"})
			return
		}

		log.Printf("QR file uploaded: %s -> %s", file.Filename, fileURL)
		c.JSON(http.StatusOK, qrFile)
	}
}

// GetQRFiles returns the uploaded QR images, newest first. The first
// entry is what checkout displays.
func GetQRFiles(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		files, err := models.GetAllQRFiles(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch QR files"})
			return
		}
		c.JSON(http.StatusOK, files)
	}
}

// DeleteQRFile removes the DB record and then the backing file on a
// best-effort basis.
func DeleteQRFile(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var qrFile models.QRFile
		if err := db.First(&qrFile, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "QR file not found"})
			return
		}

		if err := db.Delete(&qrFile).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete QR file"})
			return
		}

		diskPath := filepath.Join(cfg.UploadDir, "qrfiles", qrFile.FileName)
		if err := os.Remove(diskPath); err != nil {
			log.Printf("⚠️ Failed to delete QR file %s: %v", diskPath, err)
		}

		c.JSON(http.StatusOK, gin.H{"message": "QR file deleted"})
	}
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ValidGSTRates are the categorical tax rates (percent) a product may
// carry. Listed costs are GST-inclusive.
var ValidGSTRates = map[int]bool{5: true, 18: true, 40: true}

// CategoryTyres is the one category with extra creation rules: a tyre
// must name at least one compatible vehicle model.
const CategoryTyres = "Tyres"

type Product struct {
	ID          string         `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	Description string         `json:"description"`
	ImageURLs   []string       `gorm:"serializer:json" json:"imageUrl"` // first entry is the display image
	Cost        float64        `gorm:"not null" json:"cost"`
	Category    string         `gorm:"index" json:"category"`
	Discount    float64        `json:"discount"`
	GSTRate     int            `json:"gstRate"`
	Size        string         `json:"size"` // tyre size code, blank for non-tyre categories
	Models      []string       `gorm:"serializer:json" json:"model"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

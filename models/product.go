package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product categories sold in the store
const (
	ProductShampoo     = "SHAMPOO"
	ProductConditioner = "CONDITIONER"
	ProductTreatment   = "TREATMENT"
	ProductStyling     = "STYLING"
	ProductTools       = "TOOLS"
	ProductAccessories = "ACCESSORIES"
	ProductColoring    = "COLORING"
)

type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`

	PriceCents          int64 `gorm:"not null" json:"priceCents"`
	CompareAtPriceCents int64 `gorm:"default:0" json:"compareAtPriceCents,omitempty"`

	Images   StringList `gorm:"type:jsonb;default:'[]'" json:"images"`
	Category string     `gorm:"type:varchar(20);index;not null" json:"category"`
	Brand    string     `json:"brand"`
	Stock    int        `gorm:"default:0" json:"stock"`

	IsFeatured bool       `gorm:"default:false" json:"isFeatured"`
	Tags       StringList `gorm:"type:jsonb;default:'[]'" json:"tags"`

	gorm.Model `json:"-"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}

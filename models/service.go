package models

// Service categories offered by the salon
const (
	CategoryHaircut    = "HAIRCUT"
	CategoryColoring   = "COLORING"
	CategoryTreatment  = "TREATMENT"
	CategoryStyling    = "STYLING"
	CategoryExtensions = "EXTENSIONS"
	CategoryBraiding   = "BRAIDING"
)

// Service is seeded reference data; the slug ID is derived from the name
type Service struct {
	ID          string `gorm:"primary_key" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `gorm:"not null" json:"priceCents"`
	Duration    int    `gorm:"not null" json:"duration"` // in minutes
	Category    string `gorm:"type:varchar(20);not null" json:"category"`
	Image       string `json:"image"`
	IsActive    bool   `gorm:"default:true" json:"isActive"`

	Appointments []Appointment `gorm:"foreignKey:ServiceID" json:"-"`
}

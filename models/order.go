package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order payment statuses
const (
	OrderPaid      = "paid"
	OrderRefunded  = "refunded"
	OrderCancelled = "cancelled"
)

type Order struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`

	OrderNumber string    `gorm:"uniqueIndex;not null" json:"orderNumber"`
	OrderDate   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"orderDate"`

	SubtotalCents int64 `gorm:"not null" json:"subtotalCents"`
	TaxCents      int64 `gorm:"not null" json:"taxCents"`
	TotalCents    int64 `gorm:"not null" json:"totalCents"`

	Status     string `gorm:"type:varchar(20);default:'paid'" json:"status"`
	PaymentRef string `json:"paymentRef"`

	ShippingName    string `json:"shippingName"`
	ShippingAddress string `json:"shippingAddress"`
	ShippingCity    string `json:"shippingCity"`
	ShippingZip     string `json:"shippingZip"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`

	gorm.Model `json:"-"`
}

// OrderItem snapshots the product name and price at purchase time
type OrderItem struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OrderID        uuid.UUID `gorm:"type:uuid;index;not null" json:"orderId"`
	ProductID      uuid.UUID `gorm:"type:uuid;index;not null" json:"productId"`
	ProductName    string    `gorm:"not null" json:"productName"`
	Quantity       int       `gorm:"default:1" json:"quantity"`
	UnitPriceCents int64     `gorm:"not null" json:"unitPriceCents"`
	TotalCents     int64     `gorm:"not null" json:"totalCents"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return
}

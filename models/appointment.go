package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment statuses
const (
	StatusPending   = "PENDING"
	StatusConfirmed = "CONFIRMED"
	StatusCompleted = "COMPLETED"
	StatusCancelled = "CANCELLED"
	StatusNoShow    = "NO_SHOW"
)

type Appointment struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`
	ServiceID string    `gorm:"index;not null" json:"serviceId"`

	Date      time.Time `gorm:"type:date;not null" json:"date"`
	StartTime string    `gorm:"type:varchar(5);not null" json:"startTime"`
	// EndTime is computed from the service duration at booking time and
	// never recomputed, so later duration changes do not move existing
	// appointments.
	EndTime string `gorm:"type:varchar(5);not null" json:"endTime"`

	Status string `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	Notes  string `gorm:"type:text" json:"notes,omitempty"`

	Service Service `gorm:"foreignKey:ServiceID" json:"service"`

	gorm.Model `json:"-"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}

// Administrative actions and the statuses they may be applied from
var statusTransitions = map[string][]string{
	"confirm":  {StatusPending},
	"complete": {StatusConfirmed},
	"cancel":   {StatusPending, StatusConfirmed},
	"no_show":  {StatusPending, StatusConfirmed},
}

// ActionStatus maps an administrative action to the status it results in
var ActionStatus = map[string]string{
	"confirm":  StatusConfirmed,
	"complete": StatusCompleted,
	"cancel":   StatusCancelled,
	"no_show":  StatusNoShow,
}

func ValidStatusTransition(action, fromStatus string) bool {
	allowed, ok := statusTransitions[action]
	if !ok {
		return false
	}
	for _, status := range allowed {
		if status == fromStatus {
			return true
		}
	}
	return false
}

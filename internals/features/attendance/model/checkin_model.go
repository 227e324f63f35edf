package model

import (
	"time"

	"github.com/google/uuid"
)

// Status sesi check-in. Transisi hanya checked_in → checked_out.
const (
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
)

// CheckinModel adalah satu sesi kehadiran di lokasi klien.
// Index unik parsial uq_checkins_active menjamin maksimal satu baris
// checked_in per employee di level storage (serialization point untuk
// check-then-act di service).
type CheckinModel struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	EmployeeID         uuid.UUID  `gorm:"type:uuid;not null;index;column:employee_id;uniqueIndex:uq_checkins_active,where:status = 'checked_in'" json:"employee_id"`
	ClientID           uuid.UUID  `gorm:"type:uuid;not null;index;column:client_id" json:"client_id"`
	Latitude           float64    `gorm:"not null;column:latitude" json:"latitude"`
	Longitude          float64    `gorm:"not null;column:longitude" json:"longitude"`
	DistanceFromClient float64    `gorm:"not null;column:distance_from_client" json:"distance_from_client"`
	Notes              *string    `gorm:"column:notes" json:"notes,omitempty"`
	CheckinTime        time.Time  `gorm:"not null;index;column:checkin_time" json:"checkin_time"`
	CheckoutTime       *time.Time `gorm:"column:checkout_time" json:"checkout_time,omitempty"`
	Status             string     `gorm:"type:varchar(20);not null;default:checked_in;column:status" json:"status"`
}

func (CheckinModel) TableName() string { return "checkins" }

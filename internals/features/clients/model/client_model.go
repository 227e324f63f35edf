package model

import (
	"time"

	"github.com/google/uuid"
)

// ClientModel: lokasi klien dengan koordinat tetap (read-only input).
type ClientModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	Name      string    `gorm:"not null;column:name" json:"name"`
	Address   string    `gorm:"not null;column:address" json:"address"`
	Latitude  float64   `gorm:"not null;column:latitude" json:"latitude"`
	Longitude float64   `gorm:"not null;column:longitude" json:"longitude"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ClientModel) TableName() string { return "clients" }

// EmployeeClientModel: penugasan many-to-many employee ↔ client.
// Adanya baris = employee boleh check-in di client tsb.
type EmployeeClientModel struct {
	EmployeeID uuid.UUID `gorm:"type:uuid;primaryKey;column:employee_id" json:"employee_id"`
	ClientID   uuid.UUID `gorm:"type:uuid;primaryKey;column:client_id" json:"client_id"`
}

func (EmployeeClientModel) TableName() string { return "employee_clients" }

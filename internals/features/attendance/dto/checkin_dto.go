package dto

import (
	"time"

	"github.com/google/uuid"
)

/* ===================== REQUEST ===================== */

// CheckInRequest: lat/lon pakai pointer supaya "tidak dikirim"
// bisa dibedakan dari 0 (0,0 adalah koordinat sah).
type CheckInRequest struct {
	ClientID  string   `json:"client_id" validate:"required,uuid"`
	Latitude  *float64 `json:"latitude" validate:"required"`
	Longitude *float64 `json:"longitude" validate:"required"`
	Notes     *string  `json:"notes"`
}

// HistoryQuery: batas tanggal opsional, inklusif dua arah,
// granularitas hari kalender.
type HistoryQuery struct {
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
}

/* ===================== RESPONSE ===================== */

type CheckInResponse struct {
	ID                 uuid.UUID `json:"id"`
	DistanceFromClient float64   `json:"distance_from_client"`
	Warning            *string   `json:"warning"`
	Message            string    `json:"message"`
}

type ClientSiteResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
}

// HistoryItem: baris checkins diperkaya nama & alamat klien.
type HistoryItem struct {
	ID                 uuid.UUID  `json:"id" gorm:"column:id"`
	EmployeeID         uuid.UUID  `json:"employee_id" gorm:"column:employee_id"`
	ClientID           uuid.UUID  `json:"client_id" gorm:"column:client_id"`
	Latitude           float64    `json:"latitude" gorm:"column:latitude"`
	Longitude          float64    `json:"longitude" gorm:"column:longitude"`
	DistanceFromClient float64    `json:"distance_from_client" gorm:"column:distance_from_client"`
	Notes              *string    `json:"notes,omitempty" gorm:"column:notes"`
	CheckinTime        time.Time  `json:"checkin_time" gorm:"column:checkin_time"`
	CheckoutTime       *time.Time `json:"checkout_time,omitempty" gorm:"column:checkout_time"`
	Status             string     `json:"status" gorm:"column:status"`
	ClientName         string     `json:"client_name" gorm:"column:client_name"`
	ClientAddress      string     `json:"client_address" gorm:"column:client_address"`
}

// ActiveSession: sesi yang sedang berjalan + nama klien.
type ActiveSession struct {
	ID                 uuid.UUID `json:"id" gorm:"column:id"`
	EmployeeID         uuid.UUID `json:"employee_id" gorm:"column:employee_id"`
	ClientID           uuid.UUID `json:"client_id" gorm:"column:client_id"`
	Latitude           float64   `json:"latitude" gorm:"column:latitude"`
	Longitude          float64   `json:"longitude" gorm:"column:longitude"`
	DistanceFromClient float64   `json:"distance_from_client" gorm:"column:distance_from_client"`
	Notes              *string   `json:"notes,omitempty" gorm:"column:notes"`
	CheckinTime        time.Time `json:"checkin_time" gorm:"column:checkin_time"`
	Status             string    `json:"status" gorm:"column:status"`
	ClientName         string    `json:"client_name" gorm:"column:client_name"`
}

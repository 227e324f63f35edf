package dto

import "github.com/google/uuid"

// DailySummaryDetail: satu entry per BARIS sesi, bukan per employee —
// employee dengan dua sesi di hari yang sama muncul dua kali.
type DailySummaryDetail struct {
	EmployeeID   uuid.UUID `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	HoursWorked  float64   `json:"hours_worked"`
	DistanceKm   float64   `json:"distance_km"`
}

type DailySummaryResponse struct {
	Date             string               `json:"date"`
	TotalCheckins    int                  `json:"total_checkins"`
	TotalEmployees   int                  `json:"total_employees"`
	TotalHoursWorked float64              `json:"total_hours_worked"`
	Details          []DailySummaryDetail `json:"details"`
}

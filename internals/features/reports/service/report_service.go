package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"absenku_backend/internals/constants"
	"absenku_backend/internals/features/reports/dto"
	"absenku_backend/internals/helpers/datestr"
	"absenku_backend/internals/helpers/geo"
)

var (
	ErrInvalidDate = errors.New("invalid date format, use YYYY-MM-DD")
	ErrForbidden   = errors.New("access denied, managers only")
)

// ReportService membaca tabel checkins (read-only) dan merekap per hari.
type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

type summaryRow struct {
	EmployeeID         uuid.UUID  `gorm:"column:employee_id"`
	EmployeeName       string     `gorm:"column:employee_name"`
	CheckinTime        time.Time  `gorm:"column:checkin_time"`
	CheckoutTime       *time.Time `gorm:"column:checkout_time"`
	DistanceFromClient float64    `gorm:"column:distance_from_client"`
}

// DailySummary merekap satu tanggal kalender untuk manager.
// Urutan cek mengikuti kontrak API: tanggal dulu, baru role.
func (s *ReportService) DailySummary(date, requesterRole string) (*dto.DailySummaryResponse, error) {
	if err := datestr.Validate(date); err != nil {
		return nil, ErrInvalidDate
	}
	if requesterRole != constants.RoleManager {
		return nil, ErrForbidden
	}

	rows := make([]summaryRow, 0)
	err := s.db.Table("checkins").
		Select("checkins.employee_id, users.name AS employee_name, checkins.checkin_time, checkins.checkout_time, checkins.distance_from_client").
		Joins("INNER JOIN users ON checkins.employee_id = users.id").
		Where("DATE(checkins.checkin_time) = ?", date).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("fetch daily checkins: %w", err)
	}

	var totalHours float64
	uniqueEmployees := make(map[uuid.UUID]struct{})
	details := make([]dto.DailySummaryDetail, 0, len(rows))

	for _, row := range rows {
		// Sesi yang masih terbuka dihitung 0 jam tapi tetap tampil di
		// details, supaya manager melihat sesi yang sedang berjalan.
		var hours float64
		if row.CheckoutTime != nil {
			hours = geo.Round2(row.CheckoutTime.Sub(row.CheckinTime).Hours())
			// Jumlahkan nilai yang SUDAH dibulatkan per baris supaya
			// total reproducible bit-for-bit.
			totalHours += hours
		}

		uniqueEmployees[row.EmployeeID] = struct{}{}
		details = append(details, dto.DailySummaryDetail{
			EmployeeID:   row.EmployeeID,
			EmployeeName: row.EmployeeName,
			HoursWorked:  hours,
			DistanceKm:   row.DistanceFromClient,
		})
	}

	return &dto.DailySummaryResponse{
		Date:             date,
		TotalCheckins:    len(rows),
		TotalEmployees:   len(uniqueEmployees),
		TotalHoursWorked: geo.Round2(totalHours),
		Details:          details,
	}, nil
}

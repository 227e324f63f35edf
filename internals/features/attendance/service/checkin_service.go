package service

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"absenku_backend/internals/features/attendance/dto"
	"absenku_backend/internals/features/attendance/model"
	clientModel "absenku_backend/internals/features/clients/model"
	"absenku_backend/internals/helpers/datestr"
	"absenku_backend/internals/helpers/geo"
)

// Jarak di atas ambang ini menghasilkan warning (informatif, tidak
// pernah memblokir check-in). Perbandingan strict: pas 0.5 km tanpa warning.
const warnDistanceKm = 0.5

const farWarning = "You are far from the client location"

func farFromClient(distanceKm float64) bool {
	return distanceKm > warnDistanceKm
}

// CheckinService adalah attendance engine: satu-satunya pemilik tabel
// checkins. Urutan prasyarat check-in mengikuti kontrak API:
// input → penugasan → sesi aktif → klien.
type CheckinService struct {
	db *gorm.DB

	// Mutex per employee men-serialisasi check-then-act di CheckIn /
	// CheckOut dalam satu proses; index unik parsial uq_checkins_active
	// jadi penjaga terakhir di storage kalau ada lebih dari satu instance.
	locks sync.Map // uuid.UUID -> *sync.Mutex
}

func NewCheckinService(db *gorm.DB) *CheckinService {
	return &CheckinService{db: db}
}

func (s *CheckinService) lockEmployee(id uuid.UUID) *sync.Mutex {
	v, _ := s.locks.LoadOrStore(id, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu
}

/* ===================== ASSIGNED CLIENTS ===================== */

// AssignedClients: semua lokasi klien yang boleh dikunjungi employee.
// Kosong bukan error.
func (s *CheckinService) AssignedClients(employeeID uuid.UUID) ([]dto.ClientSiteResponse, error) {
	items := make([]dto.ClientSiteResponse, 0)
	err := s.db.Table("clients").
		Select("clients.id, clients.name, clients.address, clients.latitude, clients.longitude").
		Joins("INNER JOIN employee_clients ON clients.id = employee_clients.client_id").
		Where("employee_clients.employee_id = ?", employeeID).
		Scan(&items).Error
	if err != nil {
		return nil, fmt.Errorf("fetch assigned clients: %w", err)
	}
	return items, nil
}

/* ===================== CHECK-IN ===================== */

func (s *CheckinService) CheckIn(employeeID uuid.UUID, req dto.CheckInRequest) (*dto.CheckInResponse, error) {
	// 1) Validasi input dulu, sebelum query apa pun.
	if req.ClientID == "" || req.Latitude == nil || req.Longitude == nil {
		return nil, ErrInvalidInput
	}
	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		return nil, ErrInvalidInput
	}
	lat, lon := *req.Latitude, *req.Longitude
	if !validCoord(lat) || !validCoord(lon) {
		return nil, ErrInvalidInput
	}

	mu := s.lockEmployee(employeeID)
	defer mu.Unlock()

	// 2) Penugasan employee ↔ client.
	var assigned int64
	if err := s.db.Model(&clientModel.EmployeeClientModel{}).
		Where("employee_id = ? AND client_id = ?", employeeID, clientID).
		Count(&assigned).Error; err != nil {
		return nil, fmt.Errorf("check assignment: %w", err)
	}
	if assigned == 0 {
		return nil, ErrNotAuthorized
	}

	// 3) Belum ada sesi aktif.
	var active int64
	if err := s.db.Model(&model.CheckinModel{}).
		Where("employee_id = ? AND status = ?", employeeID, model.StatusCheckedIn).
		Count(&active).Error; err != nil {
		return nil, fmt.Errorf("check active session: %w", err)
	}
	if active > 0 {
		return nil, ErrAlreadyCheckedIn
	}

	// 4) Klien harus ada.
	var client clientModel.ClientModel
	if err := s.db.Where("id = ?", clientID).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("fetch client: %w", err)
	}

	distance := geo.HaversineKm(lat, lon, client.Latitude, client.Longitude)

	row := model.CheckinModel{
		ID:                 uuid.New(),
		EmployeeID:         employeeID,
		ClientID:           clientID,
		Latitude:           lat,
		Longitude:          lon,
		DistanceFromClient: geo.Round2(distance),
		Notes:              req.Notes,
		CheckinTime:        time.Now().UTC(), // server time, bukan dari client
		Status:             model.StatusCheckedIn,
	}
	if err := s.db.Create(&row).Error; err != nil {
		// Kalah balapan dengan check-in lain: index unik parsial menolak
		// baris checked_in kedua.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyCheckedIn
		}
		return nil, fmt.Errorf("insert checkin: %w", err)
	}

	resp := &dto.CheckInResponse{
		ID:                 row.ID,
		DistanceFromClient: row.DistanceFromClient,
		Message:            "Checked in successfully",
	}
	if farFromClient(distance) {
		w := farWarning
		resp.Warning = &w
	}
	return resp, nil
}

func validCoord(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

/* ===================== CHECK-OUT ===================== */

// CheckOut menutup sesi aktif terbaru. Ini satu-satunya jalur yang
// memutasi baris checkins setelah dibuat.
func (s *CheckinService) CheckOut(employeeID uuid.UUID) error {
	mu := s.lockEmployee(employeeID)
	defer mu.Unlock()

	var row model.CheckinModel
	err := s.db.Where("employee_id = ? AND status = ?", employeeID, model.StatusCheckedIn).
		Order("checkin_time DESC").
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoActiveSession
		}
		return fmt.Errorf("fetch active session: %w", err)
	}

	now := time.Now().UTC()
	err = s.db.Model(&model.CheckinModel{}).
		Where("id = ? AND status = ?", row.ID, model.StatusCheckedIn).
		Updates(map[string]interface{}{
			"checkout_time": now,
			"status":        model.StatusCheckedOut,
		}).Error
	if err != nil {
		return fmt.Errorf("close session: %w", err)
	}
	return nil
}

/* ===================== QUERIES ===================== */

// History: sesi milik employee, terbaru duluan, difilter batas tanggal
// kalender (inklusif). Tanggal divalidasi ketat lalu DIBIND sebagai
// parameter — tidak pernah digabung ke teks query.
func (s *CheckinService) History(employeeID uuid.UUID, q dto.HistoryQuery) ([]dto.HistoryItem, error) {
	for _, d := range []string{q.StartDate, q.EndDate} {
		if d != "" {
			if err := datestr.Validate(d); err != nil {
				return nil, ErrInvalidInput
			}
		}
	}

	tx := s.db.Table("checkins").
		Select("checkins.*, clients.name AS client_name, clients.address AS client_address").
		Joins("INNER JOIN clients ON checkins.client_id = clients.id").
		Where("checkins.employee_id = ?", employeeID)

	if q.StartDate != "" {
		tx = tx.Where("DATE(checkins.checkin_time) >= ?", q.StartDate)
	}
	if q.EndDate != "" {
		tx = tx.Where("DATE(checkins.checkin_time) <= ?", q.EndDate)
	}

	items := make([]dto.HistoryItem, 0)
	if err := tx.Order("checkins.checkin_time DESC").Scan(&items).Error; err != nil {
		return nil, fmt.Errorf("fetch history: %w", err)
	}
	return items, nil
}

// ActiveSession: sesi berjalan + nama klien, atau nil kalau tidak ada.
// Tidak ada sesi adalah hasil normal, bukan error (beda dengan CheckOut).
func (s *CheckinService) ActiveSession(employeeID uuid.UUID) (*dto.ActiveSession, error) {
	var item dto.ActiveSession
	err := s.db.Table("checkins").
		Select("checkins.*, clients.name AS client_name").
		Joins("INNER JOIN clients ON checkins.client_id = clients.id").
		Where("checkins.employee_id = ? AND checkins.status = ?", employeeID, model.StatusCheckedIn).
		Order("checkins.checkin_time DESC").
		Limit(1).
		Take(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch active session: %w", err)
	}
	return &item, nil
}

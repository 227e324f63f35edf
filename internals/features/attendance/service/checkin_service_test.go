package service

import (
	"math"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"absenku_backend/internals/features/attendance/dto"
	"absenku_backend/internals/features/attendance/model"
	clientModel "absenku_backend/internals/features/clients/model"
	userModel "absenku_backend/internals/features/users/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// :memory: hidup per koneksi; paksa satu koneksi supaya semua
	// goroutine melihat database yang sama.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&userModel.UserModel{},
		&clientModel.ClientModel{},
		&clientModel.EmployeeClientModel{},
		&model.CheckinModel{},
	))
	return db
}

type fixture struct {
	db       *gorm.DB
	svc      *CheckinService
	employee uuid.UUID
	client   clientModel.ClientModel
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)

	f := &fixture{
		db:       db,
		svc:      NewCheckinService(db),
		employee: uuid.New(),
		client: clientModel.ClientModel{
			ID:        uuid.New(),
			Name:      "PT Maju Jaya",
			Address:   "Jl. Sudirman No. 12",
			Latitude:  -6.2146,
			Longitude: 106.8451,
		},
	}

	require.NoError(t, db.Create(&userModel.UserModel{
		ID: f.employee, Name: "Andi", Email: "andi@absenku.dev", Password: "x", Role: "employee",
	}).Error)
	require.NoError(t, db.Create(&f.client).Error)
	require.NoError(t, db.Create(&clientModel.EmployeeClientModel{
		EmployeeID: f.employee, ClientID: f.client.ID,
	}).Error)
	return f
}

func ptr(v float64) *float64 { return &v }

func (f *fixture) checkinReq() dto.CheckInRequest {
	return dto.CheckInRequest{
		ClientID:  f.client.ID.String(),
		Latitude:  ptr(f.client.Latitude),
		Longitude: ptr(f.client.Longitude),
	}
}

/* ===================== CHECK-IN ===================== */

func TestCheckInSuccess(t *testing.T) {
	f := newFixture(t)

	resp, err := f.svc.CheckIn(f.employee, f.checkinReq())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, 0.0, resp.DistanceFromClient)
	assert.Nil(t, resp.Warning)

	var row model.CheckinModel
	require.NoError(t, f.db.First(&row, "id = ?", resp.ID).Error)
	assert.Equal(t, model.StatusCheckedIn, row.Status)
	assert.Nil(t, row.CheckoutTime)
	assert.WithinDuration(t, time.Now().UTC(), row.CheckinTime, 5*time.Second)
}

func TestCheckInFarFromClientWarns(t *testing.T) {
	f := newFixture(t)

	// ±0.6 km ke utara dari koordinat klien
	req := f.checkinReq()
	req.Latitude = ptr(f.client.Latitude + 0.0054)

	resp, err := f.svc.CheckIn(f.employee, req)
	require.NoError(t, err)
	require.NotNil(t, resp.Warning)
	assert.Equal(t, "You are far from the client location", *resp.Warning)
	assert.Greater(t, resp.DistanceFromClient, 0.5)
}

func TestCheckInNearClientNoWarning(t *testing.T) {
	f := newFixture(t)

	// ±0.1 km, masih dalam ambang
	req := f.checkinReq()
	req.Latitude = ptr(f.client.Latitude + 0.001)

	resp, err := f.svc.CheckIn(f.employee, req)
	require.NoError(t, err)
	assert.Nil(t, resp.Warning)
}

func TestFarFromClientStrictThreshold(t *testing.T) {
	// pas di ambang 0.5 tidak warning; > 0.5 warning
	assert.False(t, farFromClient(0.5))
	assert.False(t, farFromClient(0.49))
	assert.True(t, farFromClient(math.Nextafter(0.5, 1)))
	assert.True(t, farFromClient(0.6))
}

func TestCheckInInvalidInputBeforeOtherChecks(t *testing.T) {
	f := newFixture(t)

	// latitude hilang → InvalidInput meski employee TIDAK punya penugasan
	// ke client: validasi input jalan duluan.
	stranger := uuid.New()
	req := f.checkinReq()
	req.Latitude = nil
	_, err := f.svc.CheckIn(stranger, req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	// client_id bukan UUID
	req = f.checkinReq()
	req.ClientID = "1; DROP TABLE checkins"
	_, err = f.svc.CheckIn(f.employee, req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	// NaN / Inf ditolak sebelum sampai haversine
	req = f.checkinReq()
	req.Latitude = ptr(math.NaN())
	_, err = f.svc.CheckIn(f.employee, req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = f.checkinReq()
	req.Longitude = ptr(math.Inf(1))
	_, err = f.svc.CheckIn(f.employee, req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCheckInNotAuthorized(t *testing.T) {
	f := newFixture(t)

	// client ada tapi tidak ada baris penugasan
	other := clientModel.ClientModel{
		ID: uuid.New(), Name: "CV Lain", Address: "Jl. Lain", Latitude: -6.3, Longitude: 106.9,
	}
	require.NoError(t, f.db.Create(&other).Error)

	req := f.checkinReq()
	req.ClientID = other.ID.String()
	_, err := f.svc.CheckIn(f.employee, req)
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestCheckInClientNotFound(t *testing.T) {
	f := newFixture(t)

	// penugasan ada, baris client-nya tidak (data rusak) → ClientNotFound
	ghost := uuid.New()
	require.NoError(t, f.db.Create(&clientModel.EmployeeClientModel{
		EmployeeID: f.employee, ClientID: ghost,
	}).Error)

	req := f.checkinReq()
	req.ClientID = ghost.String()
	_, err := f.svc.CheckIn(f.employee, req)
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestCheckInAlreadyCheckedIn(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CheckIn(f.employee, f.checkinReq())
	require.NoError(t, err)

	// gagal walaupun target client berbeda
	other := clientModel.ClientModel{
		ID: uuid.New(), Name: "CV Lain", Address: "Jl. Lain", Latitude: -6.3, Longitude: 106.9,
	}
	require.NoError(t, f.db.Create(&other).Error)
	require.NoError(t, f.db.Create(&clientModel.EmployeeClientModel{
		EmployeeID: f.employee, ClientID: other.ID,
	}).Error)

	req := f.checkinReq()
	req.ClientID = other.ID.String()
	_, err = f.svc.CheckIn(f.employee, req)
	assert.ErrorIs(t, err, ErrAlreadyCheckedIn)
}

func TestCheckInConcurrentSingleWinner(t *testing.T) {
	f := newFixture(t)

	const attempts = 8
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.svc.CheckIn(f.employee, f.checkinReq())
		}(i)
	}
	wg.Wait()

	var ok, already int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case assert.ErrorIs(t, err, ErrAlreadyCheckedIn):
			already++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, attempts-1, already)

	// invariant: maksimal satu baris checked_in per employee
	var open int64
	require.NoError(t, f.db.Model(&model.CheckinModel{}).
		Where("employee_id = ? AND status = ?", f.employee, model.StatusCheckedIn).
		Count(&open).Error)
	assert.Equal(t, int64(1), open)
}

/* ===================== CHECK-OUT ===================== */

func TestCheckOutClosesSession(t *testing.T) {
	f := newFixture(t)

	resp, err := f.svc.CheckIn(f.employee, f.checkinReq())
	require.NoError(t, err)

	require.NoError(t, f.svc.CheckOut(f.employee))

	var row model.CheckinModel
	require.NoError(t, f.db.First(&row, "id = ?", resp.ID).Error)
	assert.Equal(t, model.StatusCheckedOut, row.Status)
	require.NotNil(t, row.CheckoutTime)
	assert.False(t, row.CheckoutTime.Before(row.CheckinTime))
}

func TestCheckOutTwice(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CheckIn(f.employee, f.checkinReq())
	require.NoError(t, err)

	require.NoError(t, f.svc.CheckOut(f.employee))
	assert.ErrorIs(t, f.svc.CheckOut(f.employee), ErrNoActiveSession)
}

func TestCheckOutWithoutSession(t *testing.T) {
	f := newFixture(t)
	assert.ErrorIs(t, f.svc.CheckOut(f.employee), ErrNoActiveSession)
}

func TestCheckInAgainAfterCheckOut(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CheckIn(f.employee, f.checkinReq())
	require.NoError(t, err)
	require.NoError(t, f.svc.CheckOut(f.employee))

	// sesi baru boleh dibuka setelah sesi lama tertutup
	_, err = f.svc.CheckIn(f.employee, f.checkinReq())
	assert.NoError(t, err)
}

/* ===================== QUERIES ===================== */

func seedClosedCheckin(t *testing.T, f *fixture, checkin time.Time, checkout *time.Time) model.CheckinModel {
	t.Helper()
	status := model.StatusCheckedIn
	if checkout != nil {
		status = model.StatusCheckedOut
	}
	row := model.CheckinModel{
		ID:           uuid.New(),
		EmployeeID:   f.employee,
		ClientID:     f.client.ID,
		Latitude:     f.client.Latitude,
		Longitude:    f.client.Longitude,
		CheckinTime:  checkin,
		CheckoutTime: checkout,
		Status:       status,
	}
	require.NoError(t, f.db.Create(&row).Error)
	return row
}

func TestAssignedClients(t *testing.T) {
	f := newFixture(t)

	clients, err := f.svc.AssignedClients(f.employee)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, f.client.ID, clients[0].ID)
	assert.Equal(t, f.client.Name, clients[0].Name)
	assert.Equal(t, f.client.Address, clients[0].Address)

	// employee tanpa penugasan → slice kosong, bukan error
	clients, err = f.svc.AssignedClients(uuid.New())
	require.NoError(t, err)
	assert.Empty(t, clients)
}

func TestHistoryOrderAndEnrichment(t *testing.T) {
	f := newFixture(t)

	early := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	late := time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)
	out1 := early.Add(4 * time.Hour)
	out2 := late.Add(2 * time.Hour)
	seedClosedCheckin(t, f, early, &out1)
	seedClosedCheckin(t, f, late, &out2)

	items, err := f.svc.History(f.employee, dto.HistoryQuery{})
	require.NoError(t, err)
	require.Len(t, items, 2)
	// terbaru duluan
	assert.Equal(t, late.Unix(), items[0].CheckinTime.Unix())
	assert.Equal(t, early.Unix(), items[1].CheckinTime.Unix())
	assert.Equal(t, f.client.Name, items[0].ClientName)
	assert.Equal(t, f.client.Address, items[0].ClientAddress)
}

func TestHistoryDateRangeInclusive(t *testing.T) {
	f := newFixture(t)

	d1 := time.Date(2024, 3, 1, 23, 30, 0, 0, time.UTC)
	d2 := time.Date(2024, 3, 2, 0, 15, 0, 0, time.UTC)
	d3 := time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC)
	for _, ts := range []time.Time{d1, d2, d3} {
		out := ts.Add(time.Hour)
		seedClosedCheckin(t, f, ts, &out)
	}

	// batas inklusif dua arah, granularitas hari
	items, err := f.svc.History(f.employee, dto.HistoryQuery{
		StartDate: "2024-03-01",
		EndDate:   "2024-03-02",
	})
	require.NoError(t, err)
	assert.Len(t, items, 2)

	items, err = f.svc.History(f.employee, dto.HistoryQuery{StartDate: "2024-03-05"})
	require.NoError(t, err)
	assert.Len(t, items, 1)

	items, err = f.svc.History(f.employee, dto.HistoryQuery{EndDate: "2024-02-29"})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestHistoryRejectsMalformedDates(t *testing.T) {
	f := newFixture(t)

	for _, bad := range []string{"01-03-2024", "2024-3-1", "2024-02-30", "x' OR 1=1 --"} {
		_, err := f.svc.History(f.employee, dto.HistoryQuery{StartDate: bad})
		assert.ErrorIs(t, err, ErrInvalidInput, bad)
		_, err = f.svc.History(f.employee, dto.HistoryQuery{EndDate: bad})
		assert.ErrorIs(t, err, ErrInvalidInput, bad)
	}
}

func TestActiveSession(t *testing.T) {
	f := newFixture(t)

	// tanpa sesi → nil tanpa error (beda dengan CheckOut)
	session, err := f.svc.ActiveSession(f.employee)
	require.NoError(t, err)
	assert.Nil(t, session)

	resp, err := f.svc.CheckIn(f.employee, f.checkinReq())
	require.NoError(t, err)

	session, err = f.svc.ActiveSession(f.employee)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, resp.ID, session.ID)
	assert.Equal(t, model.StatusCheckedIn, session.Status)
	assert.Equal(t, f.client.Name, session.ClientName)

	require.NoError(t, f.svc.CheckOut(f.employee))

	session, err = f.svc.ActiveSession(f.employee)
	require.NoError(t, err)
	assert.Nil(t, session)
}

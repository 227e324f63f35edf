// internals/features/attendance/controller/checkin_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"absenku_backend/internals/features/attendance/dto"
	"absenku_backend/internals/features/attendance/service"
	helper "absenku_backend/internals/helpers"
	authmw "absenku_backend/internals/middlewares/auth"
)

type CheckinController struct {
	Service  *service.CheckinService
	validate *validator.Validate
}

func NewCheckinController(db *gorm.DB) *CheckinController {
	return &CheckinController{
		Service:  service.NewCheckinService(db),
		validate: validator.New(),
	}
}

func employeeIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals(authmw.LocUserID).(string)
	return uuid.Parse(raw)
}

/* ===================== GET /api/checkin/clients ===================== */

func (ctrl *CheckinController) ListAssignedClients(c *fiber.Ctx) error {
	employeeID, err := employeeIDFromLocals(c)
	if err != nil {
		return helper.ErrorWithKind(c, fiber.StatusUnauthorized, "UNAUTHENTICATED", "Invalid identity")
	}

	clients, err := ctrl.Service.AssignedClients(employeeID)
	if err != nil {
		return ctrl.storageFailure(c, err, "Failed to fetch clients")
	}
	return helper.Success(c, "OK", clients)
}

/* ===================== POST /api/checkin ===================== */

func (ctrl *CheckinController) CheckIn(c *fiber.Ctx) error {
	employeeID, err := employeeIDFromLocals(c)
	if err != nil {
		return helper.ErrorWithKind(c, fiber.StatusUnauthorized, "UNAUTHENTICATED", "Invalid identity")
	}

	var req dto.CheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.ErrorWithKind(c, fiber.StatusBadRequest, "INVALID_INPUT", "Client and location are required")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	resp, err := ctrl.Service.CheckIn(employeeID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			return helper.ErrorWithKind(c, fiber.StatusBadRequest, "INVALID_INPUT", "Client and location are required")
		case errors.Is(err, service.ErrNotAuthorized):
			return helper.ErrorWithKind(c, fiber.StatusForbidden, "NOT_AUTHORIZED", "You are not assigned to this client")
		case errors.Is(err, service.ErrAlreadyCheckedIn):
			return helper.ErrorWithKind(c, fiber.StatusBadRequest, "ALREADY_CHECKED_IN", "Please checkout before checking in again")
		case errors.Is(err, service.ErrClientNotFound):
			return helper.ErrorWithKind(c, fiber.StatusNotFound, "CLIENT_NOT_FOUND", "Client not found")
		default:
			return ctrl.storageFailure(c, err, "Check-in failed")
		}
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Checked in successfully", resp)
}

/* ===================== PUT /api/checkin/checkout ===================== */

func (ctrl *CheckinController) CheckOut(c *fiber.Ctx) error {
	employeeID, err := employeeIDFromLocals(c)
	if err != nil {
		return helper.ErrorWithKind(c, fiber.StatusUnauthorized, "UNAUTHENTICATED", "Invalid identity")
	}

	if err := ctrl.Service.CheckOut(employeeID); err != nil {
		if errors.Is(err, service.ErrNoActiveSession) {
			return helper.ErrorWithKind(c, fiber.StatusNotFound, "NO_ACTIVE_SESSION", "No active check-in found")
		}
		return ctrl.storageFailure(c, err, "Checkout failed")
	}
	return helper.Success(c, "Checked out successfully", nil)
}

/* ===================== GET /api/checkin/history ===================== */

func (ctrl *CheckinController) GetHistory(c *fiber.Ctx) error {
	employeeID, err := employeeIDFromLocals(c)
	if err != nil {
		return helper.ErrorWithKind(c, fiber.StatusUnauthorized, "UNAUTHENTICATED", "Invalid identity")
	}

	q := dto.HistoryQuery{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}

	items, err := ctrl.Service.History(employeeID, q)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			return helper.ErrorWithKind(c, fiber.StatusBadRequest, "INVALID_INPUT", "Invalid date format. Use YYYY-MM-DD")
		}
		return ctrl.storageFailure(c, err, "Failed to fetch history")
	}
	return helper.Success(c, "OK", items)
}

/* ===================== GET /api/checkin/active ===================== */

func (ctrl *CheckinController) GetActiveSession(c *fiber.Ctx) error {
	employeeID, err := employeeIDFromLocals(c)
	if err != nil {
		return helper.ErrorWithKind(c, fiber.StatusUnauthorized, "UNAUTHENTICATED", "Invalid identity")
	}

	session, err := ctrl.Service.ActiveSession(employeeID)
	if err != nil {
		return ctrl.storageFailure(c, err, "Failed to fetch active check-in")
	}
	// session == nil berarti tidak ada sesi aktif; itu hasil sukses.
	return helper.Success(c, "OK", session)
}

// storageFailure: log detail di server, respons seragam tanpa internal.
func (ctrl *CheckinController) storageFailure(c *fiber.Ctx, err error, msg string) error {
	log.Printf("[ERROR] reqid=%v %s: %v", c.Locals("reqid"), msg, err)
	return helper.ErrorWithKind(c, fiber.StatusInternalServerError, "STORAGE_FAILURE", msg)
}

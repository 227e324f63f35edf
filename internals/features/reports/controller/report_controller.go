// internals/features/reports/controller/report_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"absenku_backend/internals/features/reports/service"
	helper "absenku_backend/internals/helpers"
	authmw "absenku_backend/internals/middlewares/auth"
)

type ReportController struct {
	Service *service.ReportService
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{Service: service.NewReportService(db)}
}

/* ===================== GET /api/reports/daily-summary ===================== */

func (ctrl *ReportController) DailySummary(c *fiber.Ctx) error {
	date := c.Query("date")
	if date == "" {
		return helper.ErrorWithKind(c, fiber.StatusBadRequest, "INVALID_INPUT",
			"Date query parameter is required (YYYY-MM-DD)")
	}

	role, _ := c.Locals(authmw.LocRole).(string)

	summary, err := ctrl.Service.DailySummary(date, role)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDate):
			return helper.ErrorWithKind(c, fiber.StatusBadRequest, "INVALID_INPUT",
				"Invalid date format. Use YYYY-MM-DD")
		case errors.Is(err, service.ErrForbidden):
			return helper.ErrorWithKind(c, fiber.StatusForbidden, "FORBIDDEN",
				"Access denied. Managers only")
		default:
			log.Printf("[ERROR] reqid=%v daily summary: %v", c.Locals("reqid"), err)
			return helper.ErrorWithKind(c, fiber.StatusInternalServerError, "STORAGE_FAILURE",
				"Failed to generate daily summary")
		}
	}
	return helper.Success(c, "OK", summary)
}

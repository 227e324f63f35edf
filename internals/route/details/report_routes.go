package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportController "absenku_backend/internals/features/reports/controller"
)

func ReportRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := reportController.NewReportController(db)

	reports := router.Group("/reports")
	// Gate role manager ada di service, setelah validasi tanggal.
	reports.Get("/daily-summary", ctrl.DailySummary)
}

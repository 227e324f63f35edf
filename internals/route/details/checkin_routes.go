package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	checkinController "absenku_backend/internals/features/attendance/controller"
	"absenku_backend/internals/middlewares"
)

func CheckinRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := checkinController.NewCheckinController(db)

	checkin := router.Group("/checkin")
	checkin.Get("/clients", ctrl.ListAssignedClients)
	checkin.Post("/", middlewares.CheckinRateLimiter(), ctrl.CheckIn)
	checkin.Put("/checkout", ctrl.CheckOut)
	checkin.Get("/history", ctrl.GetHistory)
	checkin.Get("/active", ctrl.GetActiveSession)
}

// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMiddleware "absenku_backend/internals/middlewares/auth"
	routeDetails "absenku_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Semua route inti di belakang JWT dari identity provider.
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api", authMiddleware.AuthMiddleware())

	log.Println("[INFO] Mounting Checkin routes...")
	routeDetails.CheckinRoutes(private, db)

	log.Println("[INFO] Mounting Report routes...")
	routeDetails.ReportRoutes(private, db)
}

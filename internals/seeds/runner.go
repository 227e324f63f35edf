package seeds

import (
	clients "absenku_backend/internals/seeds/clients"
	users "absenku_backend/internals/seeds/users"

	"gorm.io/gorm"
)

func RunAllSeeds(db *gorm.DB) {
	//* Users (employee + manager, password di-hash)
	users.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")

	//* Clients + penugasan employee_clients
	clients.SeedClientsFromJSON(db, "internals/seeds/clients/data_clients.json")
	clients.SeedAssignmentsFromJSON(db, "internals/seeds/clients/data_assignments.json")
}

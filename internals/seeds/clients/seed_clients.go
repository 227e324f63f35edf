package clients

import (
	"encoding/json"
	"log"
	"os"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"absenku_backend/internals/features/clients/model"
)

type ClientSeed struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type AssignmentSeed struct {
	EmployeeID string `json:"employee_id"`
	ClientID   string `json:"client_id"`
}

func SeedClientsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file client:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []ClientSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		id, err := uuid.Parse(data.ID)
		if err != nil {
			id = uuid.New()
		}

		var existing model.ClientModel
		if err := db.Where("id = ?", id).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Client '%s' sudah ada, dilewati.", data.Name)
			continue
		}

		newClient := model.ClientModel{
			ID:        id,
			Name:      data.Name,
			Address:   data.Address,
			Latitude:  data.Latitude,
			Longitude: data.Longitude,
		}

		if err := db.Create(&newClient).Error; err != nil {
			log.Printf("❌ Gagal insert client '%s': %v", data.Name, err)
		} else {
			log.Printf("✅ Berhasil insert client '%s'", data.Name)
		}
	}
}

func SeedAssignmentsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file assignment:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []AssignmentSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		employeeID, err := uuid.Parse(data.EmployeeID)
		if err != nil {
			log.Printf("❌ employee_id tidak valid: %s", data.EmployeeID)
			continue
		}
		clientID, err := uuid.Parse(data.ClientID)
		if err != nil {
			log.Printf("❌ client_id tidak valid: %s", data.ClientID)
			continue
		}

		row := model.EmployeeClientModel{EmployeeID: employeeID, ClientID: clientID}

		var count int64
		db.Model(&model.EmployeeClientModel{}).
			Where("employee_id = ? AND client_id = ?", employeeID, clientID).
			Count(&count)
		if count > 0 {
			continue
		}

		if err := db.Create(&row).Error; err != nil {
			log.Printf("❌ Gagal insert assignment %s → %s: %v", data.EmployeeID, data.ClientID, err)
		} else {
			log.Printf("✅ Berhasil insert assignment %s → %s", data.EmployeeID, data.ClientID)
		}
	}
}

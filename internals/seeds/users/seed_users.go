package users

import (
	"encoding/json"
	"log"
	"os"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"absenku_backend/internals/features/users/model"
)

type UserSeed struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file user:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []UserSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.UserModel
		if err := db.Where("email = ?", data.Email).First(&existing).Error; err == nil {
			log.Printf("ℹ️ User dengan email '%s' sudah ada, dilewati.", data.Email)
			continue
		}

		// 🔐 Hash password sebelum disimpan
		hashed, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("❌ Gagal hash password untuk '%s': %v", data.Email, err)
			continue
		}

		id := uuid.New()
		if data.ID != "" {
			if parsed, err := uuid.Parse(data.ID); err == nil {
				id = parsed
			}
		}

		newUser := model.UserModel{
			ID:       id,
			Name:     data.Name,
			Email:    data.Email,
			Password: string(hashed),
			Role:     data.Role,
		}

		if err := db.Create(&newUser).Error; err != nil {
			log.Printf("❌ Gagal insert user '%s': %v", data.Email, err)
		} else {
			log.Printf("✅ Berhasil insert user '%s'", data.Email)
		}
	}
}

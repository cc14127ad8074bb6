// file: internals/seeds/users/seed_users.go
package users

import (
	"encoding/json"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"katalogku_backend/internals/features/users/user/model"
)

type UserSeed struct {
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Gagal membaca file JSON: %v", err)
		return
	}

	var seeds []UserSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		log.Printf("❌ Gagal decode JSON: %v", err)
		return
	}

	var existing []string
	if err := db.Model(&model.UserModel{}).Pluck("email", &existing).Error; err != nil {
		log.Printf("❌ Gagal ambil email yang sudah ada: %v", err)
		return
	}
	existingMap := make(map[string]bool, len(existing))
	for _, email := range existing {
		existingMap[email] = true
	}

	var newUsers []model.UserModel
	for _, s := range seeds {
		if existingMap[s.Email] {
			continue
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(s.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("❌ Gagal hash password %s: %v", s.Email, err)
			continue
		}
		newUsers = append(newUsers, model.UserModel{
			UserName: s.UserName,
			Email:    s.Email,
			Password: string(hashed),
			Role:     s.Role,
			IsActive: true,
		})
	}

	if len(newUsers) == 0 {
		log.Println("✅ Semua user sudah ada, tidak ada yang ditambahkan")
		return
	}
	if err := db.Create(&newUsers).Error; err != nil {
		log.Printf("❌ Gagal insert user: %v", err)
		return
	}
	log.Printf("✅ %d user berhasil ditambahkan", len(newUsers))
}

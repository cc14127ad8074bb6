// file: internals/seeds/topics/seed_topics.go
package topics

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"katalogku_backend/internals/features/catalog/topics/model"
)

type TopicSeed struct {
	TopicName string `json:"topic_name"`
}

func SeedTopicsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Gagal membaca file JSON: %v", err)
		return
	}

	var seeds []TopicSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		log.Printf("❌ Gagal decode JSON: %v", err)
		return
	}

	var existing []string
	if err := db.Model(&model.TopicModel{}).Pluck("topic_name", &existing).Error; err != nil {
		log.Printf("❌ Gagal ambil topic yang sudah ada: %v", err)
		return
	}
	existingMap := make(map[string]bool, len(existing))
	for _, name := range existing {
		existingMap[name] = true
	}

	var newTopics []model.TopicModel
	for _, s := range seeds {
		if existingMap[s.TopicName] {
			continue
		}
		newTopics = append(newTopics, model.TopicModel{TopicName: s.TopicName})
	}

	if len(newTopics) == 0 {
		log.Println("✅ Semua topic sudah ada, tidak ada yang ditambahkan")
		return
	}
	if err := db.Create(&newTopics).Error; err != nil {
		log.Printf("❌ Gagal insert topic: %v", err)
		return
	}
	log.Printf("✅ %d topic berhasil ditambahkan", len(newTopics))
}

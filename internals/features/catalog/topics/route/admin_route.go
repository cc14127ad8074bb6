// file: internals/features/catalog/topics/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"katalogku_backend/internals/features/catalog/topics/controller"
)

// 🔐 Editor/Admin – manage topics
func TopicAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTopicController(db)

	admin := api.Group("/topics")
	admin.Post("/", ctrl.CreateTopic)      // ➕ Create topic
	admin.Delete("/:id", ctrl.DeleteTopic) // 🗑️ Delete topic (program refs may dangle)
	admin.Get("/", ctrl.GetAllTopics)      // 📄 All topics
}

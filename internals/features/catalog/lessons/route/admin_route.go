// file: internals/features/catalog/lessons/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"katalogku_backend/internals/features/catalog/lessons/controller"
)

// 🔐 Editor/Admin – manage lessons (incl. scheduling)
func LessonAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewLessonController(db)

	admin := api.Group("/lessons")
	admin.Post("/", ctrl.CreateLesson)      // ➕ Create lesson
	admin.Put("/:id", ctrl.UpdateLesson)    // ✏️ Update lesson (incl. schedule/archive)
	admin.Delete("/:id", ctrl.DeleteLesson) // 🗑️ Delete lesson
	admin.Get("/", ctrl.GetLessonsByTerm)   // 📄 Lessons of a term (?term_id=)
	admin.Get("/:id", ctrl.GetLessonByID)   // 🔍 Lesson detail
}

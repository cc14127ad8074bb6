// file: internals/features/catalog/terms/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"katalogku_backend/internals/features/catalog/terms/controller"
)

// 🔐 Editor/Admin – manage terms
func TermAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTermController(db)

	admin := api.Group("/terms")
	admin.Post("/", ctrl.CreateTerm)          // ➕ Create term
	admin.Put("/:id", ctrl.UpdateTerm)        // ✏️ Update term
	admin.Delete("/:id", ctrl.DeleteTerm)     // 🗑️ Delete term
	admin.Get("/", ctrl.GetTermsByProgram)    // 📄 Terms of a program (?program_id=)
}

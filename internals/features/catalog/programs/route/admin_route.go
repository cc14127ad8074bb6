// file: internals/features/catalog/programs/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"katalogku_backend/internals/features/catalog/programs/controller"
)

// 🔐 Editor/Admin – manage programs
func ProgramAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewProgramAdminController(db)

	admin := api.Group("/programs")
	admin.Post("/", ctrl.CreateProgram)      // ➕ Create program
	admin.Put("/:id", ctrl.UpdateProgram)    // ✏️ Update program (incl. status)
	admin.Delete("/:id", ctrl.DeleteProgram) // 🗑️ Delete program
	admin.Get("/", ctrl.GetAllPrograms)      // 📄 All programs (any status)
	admin.Get("/:id", ctrl.GetProgramByID)   // 🔍 Program detail
}

// file: internals/features/catalog/programs/route/public_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"katalogku_backend/internals/features/catalog/programs/controller"
)

// 🌍 Public catalog – read-only, published content only
func ProgramPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewProgramPublicController(db)

	catalog := api.Group("/catalog")
	catalog.Get("/programs", ctrl.ListPublishedCatalog)    // 📄 Cursor-paginated catalog
	catalog.Get("/programs/:id", ctrl.GetPublishedProgram) // 🔍 Published program detail
}

// file: internals/features/catalog/assets/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"katalogku_backend/internals/features/catalog/assets/controller"
)

// 🔐 Editor/Admin – manage localized image assets
func AssetAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAssetController(db)

	admin := api.Group("/assets")
	admin.Post("/", ctrl.UpsertAsset)        // ➕/✏️ Upsert by (parent, language, variant, type)
	admin.Delete("/:id", ctrl.DeleteAsset)   // 🗑️ Delete asset
	admin.Get("/", ctrl.GetAssetsByParent)   // 📄 Assets of a parent (?parent_id=)
}

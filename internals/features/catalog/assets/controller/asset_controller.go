// file: internals/features/catalog/assets/controller/asset_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"katalogku_backend/internals/features/catalog/assets/dto"
	"katalogku_backend/internals/features/catalog/assets/model"
	"katalogku_backend/internals/features/catalog/assets/service"
	helper "katalogku_backend/internals/helpers"
)

var validate = validator.New()

type AssetController struct {
	DB *gorm.DB
}

func NewAssetController(db *gorm.DB) *AssetController {
	return &AssetController{DB: db}
}

// ➕/✏️ Upsert asset (editor): same key overwrites the URL, never duplicates
func (ctrl *AssetController) UpsertAsset(c *fiber.Ctx) error {
	var req dto.UpsertAssetRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	parentID, err := uuid.Parse(req.AssetParentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid asset_parent_id")
	}

	asset, err := service.UpsertAsset(ctrl.DB, parentID, req.AssetLanguage, req.AssetVariant, req.AssetType, req.AssetURL)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save asset")
	}

	return helper.JsonOK(c, "Asset saved", dto.ToAssetDTO(asset))
}

// 📄 Assets of one parent (program or lesson)
func (ctrl *AssetController) GetAssetsByParent(c *fiber.Ctx) error {
	raw := c.Query("parent_id")
	if raw == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "parent_id is required")
	}
	parentID, err := uuid.Parse(raw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid parent_id")
	}

	assets, err := service.ListAssetsByParent(ctrl.DB, parentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load assets")
	}

	return helper.JsonOK(c, "ok", dto.ToAssetDTOs(assets))
}

// 🗑️ Delete asset
func (ctrl *AssetController) DeleteAsset(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.Delete(&model.AssetModel{}, "asset_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete asset")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Asset not found")
	}

	return helper.JsonDeleted(c, "Asset deleted", fiber.Map{"asset_id": id})
}

// file: internals/features/catalog/assets/service/asset_service.go
package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"katalogku_backend/internals/features/catalog/assets/model"
)

// UpsertAsset writes one localized image reference. The
// (parent, language, variant, type) key is unique; hitting an existing key
// replaces the URL in place instead of creating a second row.
func UpsertAsset(db *gorm.DB, parentID uuid.UUID, language, variant, assetType, url string) (model.AssetModel, error) {
	asset := model.AssetModel{
		AssetParentID: parentID,
		AssetLanguage: language,
		AssetVariant:  variant,
		AssetType:     assetType,
		AssetURL:      url,
	}

	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "asset_parent_id"},
			{Name: "asset_language"},
			{Name: "asset_variant"},
			{Name: "asset_type"},
		},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"asset_url":        url,
			"asset_updated_at": time.Now().UTC(),
		}),
	}).Create(&asset).Error
	if err != nil {
		return asset, err
	}

	// re-read so the caller sees the surviving row (id/created_at of the
	// original on conflict, not of the failed insert)
	err = db.
		Where("asset_parent_id = ? AND asset_language = ? AND asset_variant = ? AND asset_type = ?",
			parentID, language, variant, assetType).
		First(&asset).Error
	return asset, err
}

// ListAssetsByParent returns every variant/language image of one program or
// lesson.
func ListAssetsByParent(db *gorm.DB, parentID uuid.UUID) ([]model.AssetModel, error) {
	var assets []model.AssetModel
	err := db.
		Where("asset_parent_id = ?", parentID).
		Order("asset_language ASC, asset_type ASC, asset_variant ASC").
		Find(&assets).Error
	return assets, err
}

// file: internals/features/catalog/assets/model/asset_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	VariantPortrait  = "portrait"
	VariantLandscape = "landscape"
	VariantSquare    = "square"
	VariantBanner    = "banner"

	TypePoster    = "poster"
	TypeThumbnail = "thumbnail"
)

// AssetModel maps the assets table: one localized, variant-specific image URL
// attached to a program or lesson. The parent id is untyped on purpose (it may
// point at either table). (parent, language, variant, type) is the natural
// key; writes on an existing key replace the URL only.
type AssetModel struct {
	AssetID       uuid.UUID `json:"asset_id" gorm:"type:uuid;primaryKey;column:asset_id;default:gen_random_uuid()"`
	AssetParentID uuid.UUID `json:"asset_parent_id" gorm:"type:uuid;not null;column:asset_parent_id;uniqueIndex:ux_assets_key"`
	AssetLanguage string    `json:"asset_language" gorm:"type:varchar(10);not null;column:asset_language;uniqueIndex:ux_assets_key"`
	AssetVariant  string    `json:"asset_variant" gorm:"type:varchar(20);not null;column:asset_variant;uniqueIndex:ux_assets_key"`
	AssetType     string    `json:"asset_type" gorm:"type:varchar(20);not null;column:asset_type;uniqueIndex:ux_assets_key"`
	AssetURL      string    `json:"asset_url" gorm:"type:text;not null;column:asset_url"`

	AssetCreatedAt time.Time `json:"asset_created_at" gorm:"column:asset_created_at;autoCreateTime"`
	AssetUpdatedAt time.Time `json:"asset_updated_at" gorm:"column:asset_updated_at;autoUpdateTime"`
}

func (AssetModel) TableName() string { return "assets" }

func (m *AssetModel) BeforeCreate(tx *gorm.DB) error {
	if m.AssetID == uuid.Nil {
		m.AssetID = uuid.New()
	}
	return nil
}

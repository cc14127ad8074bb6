// file: internals/features/catalog/assets/dto/asset_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"katalogku_backend/internals/features/catalog/assets/model"
)

type AssetDTO struct {
	AssetID        uuid.UUID `json:"asset_id"`
	AssetParentID  uuid.UUID `json:"asset_parent_id"`
	AssetLanguage  string    `json:"asset_language"`
	AssetVariant   string    `json:"asset_variant"`
	AssetType      string    `json:"asset_type"`
	AssetURL       string    `json:"asset_url"`
	AssetCreatedAt time.Time `json:"asset_created_at"`
	AssetUpdatedAt time.Time `json:"asset_updated_at"`
}

// UpsertAssetRequest carries the natural key plus the URL; writing an
// existing key replaces the URL only.
type UpsertAssetRequest struct {
	AssetParentID string `json:"asset_parent_id" validate:"required,uuid"`
	AssetLanguage string `json:"asset_language" validate:"required,bcp47_language_tag"`
	AssetVariant  string `json:"asset_variant" validate:"required,oneof=portrait landscape square banner"`
	AssetType     string `json:"asset_type" validate:"required,oneof=poster thumbnail"`
	AssetURL      string `json:"asset_url" validate:"required,url"`
}

func ToAssetDTO(m model.AssetModel) AssetDTO {
	return AssetDTO{
		AssetID:        m.AssetID,
		AssetParentID:  m.AssetParentID,
		AssetLanguage:  m.AssetLanguage,
		AssetVariant:   m.AssetVariant,
		AssetType:      m.AssetType,
		AssetURL:       m.AssetURL,
		AssetCreatedAt: m.AssetCreatedAt,
		AssetUpdatedAt: m.AssetUpdatedAt,
	}
}

func ToAssetDTOs(ms []model.AssetModel) []AssetDTO {
	out := make([]AssetDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToAssetDTO(m))
	}
	return out
}

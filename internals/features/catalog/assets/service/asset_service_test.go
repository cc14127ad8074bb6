// file: internals/features/catalog/assets/service/asset_service_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"katalogku_backend/internals/features/catalog/assets/model"
)

const assetSchema = `
CREATE TABLE assets (
	asset_id text PRIMARY KEY,
	asset_parent_id text NOT NULL,
	asset_language text NOT NULL,
	asset_variant text NOT NULL,
	asset_type text NOT NULL,
	asset_url text NOT NULL,
	asset_created_at datetime,
	asset_updated_at datetime,
	UNIQUE (asset_parent_id, asset_language, asset_variant, asset_type)
);
`

func newAssetTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec(assetSchema).Error)
	return db
}

func TestUpsertAsset(t *testing.T) {
	db := newAssetTestDB(t)
	parent := uuid.New()

	first, err := UpsertAsset(db, parent, "id", model.VariantPortrait, model.TypePoster, "https://cdn.example.com/v1.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/v1.jpg", first.AssetURL)

	// same natural key: the URL is replaced in place, no second row
	second, err := UpsertAsset(db, parent, "id", model.VariantPortrait, model.TypePoster, "https://cdn.example.com/v2.jpg")
	require.NoError(t, err)
	assert.Equal(t, first.AssetID, second.AssetID, "the original row survives the upsert")
	assert.Equal(t, "https://cdn.example.com/v2.jpg", second.AssetURL)

	var count int64
	require.NoError(t, db.Model(&model.AssetModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// different language under the same parent is its own row
	_, err = UpsertAsset(db, parent, "en", model.VariantPortrait, model.TypePoster, "https://cdn.example.com/en.jpg")
	require.NoError(t, err)
	require.NoError(t, db.Model(&model.AssetModel{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestListAssetsByParent(t *testing.T) {
	db := newAssetTestDB(t)
	parent := uuid.New()
	other := uuid.New()

	_, err := UpsertAsset(db, parent, "id", model.VariantPortrait, model.TypePoster, "https://cdn.example.com/a.jpg")
	require.NoError(t, err)
	_, err = UpsertAsset(db, parent, "en", model.VariantLandscape, model.TypeThumbnail, "https://cdn.example.com/b.jpg")
	require.NoError(t, err)
	_, err = UpsertAsset(db, other, "id", model.VariantSquare, model.TypePoster, "https://cdn.example.com/c.jpg")
	require.NoError(t, err)

	assets, err := ListAssetsByParent(db, parent)
	require.NoError(t, err)
	require.Len(t, assets, 2)
	for _, a := range assets {
		assert.Equal(t, parent, a.AssetParentID)
	}
}

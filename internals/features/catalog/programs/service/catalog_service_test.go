// file: internals/features/catalog/programs/service/catalog_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"katalogku_backend/internals/constants"
	LessonModel "katalogku_backend/internals/features/catalog/lessons/model"
	"katalogku_backend/internals/features/catalog/programs/model"
	TermModel "katalogku_backend/internals/features/catalog/terms/model"
	helper "katalogku_backend/internals/helpers"
)

// Tables are created by hand: the production schema carries postgres-only
// defaults (gen_random_uuid, uuid[]) that sqlite cannot migrate.
const catalogSchema = `
CREATE TABLE programs (
	program_id text PRIMARY KEY,
	program_title text NOT NULL,
	program_description text,
	program_primary_language text NOT NULL DEFAULT 'id',
	program_available_languages text,
	program_status text NOT NULL DEFAULT 'draft',
	program_topic_ids text,
	program_published_at datetime,
	program_created_at datetime,
	program_updated_at datetime
);
CREATE TABLE terms (
	term_id text PRIMARY KEY,
	term_program_id text NOT NULL,
	term_number integer NOT NULL,
	term_title text NOT NULL,
	term_created_at datetime
);
CREATE TABLE lessons (
	lesson_id text PRIMARY KEY,
	lesson_term_id text NOT NULL,
	lesson_number integer NOT NULL,
	lesson_title text NOT NULL,
	lesson_content_type text NOT NULL DEFAULT 'video',
	lesson_is_paid numeric NOT NULL DEFAULT 0,
	lesson_primary_language text NOT NULL DEFAULT 'id',
	lesson_available_languages text,
	lesson_content_urls text,
	lesson_subtitle_languages text,
	lesson_subtitle_urls text,
	lesson_status text NOT NULL DEFAULT 'draft',
	lesson_publish_at datetime,
	lesson_published_at datetime,
	lesson_created_at datetime,
	lesson_updated_at datetime
);
`

func newCatalogTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec(catalogSchema).Error)
	return db
}

// seedCatalogProgram writes a program plus one term with one lesson in the
// given lesson status.
func seedCatalogProgram(t *testing.T, db *gorm.DB, title string, createdAt time.Time, status, lessonStatus constants.ContentStatus) model.ProgramModel {
	t.Helper()
	p := model.ProgramModel{
		ProgramTitle:     title,
		ProgramStatus:    status,
		ProgramCreatedAt: createdAt,
	}
	require.NoError(t, db.Create(&p).Error)

	term := TermModel.TermModel{TermProgramID: p.ProgramID, TermNumber: 1, TermTitle: "Term 1"}
	require.NoError(t, db.Create(&term).Error)

	l := LessonModel.LessonModel{
		LessonTermID: term.TermID,
		LessonNumber: 1,
		LessonTitle:  "Lesson 1",
		LessonStatus: lessonStatus,
	}
	require.NoError(t, db.Create(&l).Error)
	return p
}

func TestListPublishedCatalog(t *testing.T) {
	db := newCatalogTestDB(t)
	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	oldest := seedCatalogProgram(t, db, "Oldest", base, constants.StatusPublished, constants.StatusPublished)
	middle := seedCatalogProgram(t, db, "Middle", base.Add(time.Hour), constants.StatusPublished, constants.StatusPublished)
	newest := seedCatalogProgram(t, db, "Newest", base.Add(2*time.Hour), constants.StatusPublished, constants.StatusPublished)

	// out of the listing: still draft, or published but without a single
	// published lesson left
	seedCatalogProgram(t, db, "Draft", base.Add(3*time.Hour), constants.StatusDraft, constants.StatusPublished)
	seedCatalogProgram(t, db, "AllArchived", base.Add(4*time.Hour), constants.StatusPublished, constants.StatusArchived)
	seedCatalogProgram(t, db, "OnlyScheduled", base.Add(5*time.Hour), constants.StatusPublished, constants.StatusScheduled)

	t.Run("first page, newest first", func(t *testing.T) {
		page, err := ListPublishedCatalog(db, nil, 2, nil)
		require.NoError(t, err)

		assert.EqualValues(t, 3, page.Total)
		require.Len(t, page.Programs, 2)
		assert.Equal(t, newest.ProgramID, page.Programs[0].ProgramID)
		assert.Equal(t, middle.ProgramID, page.Programs[1].ProgramID)
		require.NotNil(t, page.NextCursor)

		cursor, err := helper.DecodeCursor(*page.NextCursor)
		require.NoError(t, err)

		last, err := ListPublishedCatalog(db, cursor, 2, nil)
		require.NoError(t, err)
		require.Len(t, last.Programs, 1)
		assert.Equal(t, oldest.ProgramID, last.Programs[0].ProgramID)
		assert.Nil(t, last.NextCursor, "short page means no further cursor")
	})

	t.Run("full page at the exact end still hands out a cursor", func(t *testing.T) {
		page, err := ListPublishedCatalog(db, nil, 3, nil)
		require.NoError(t, err)
		require.Len(t, page.Programs, 3)
		require.NotNil(t, page.NextCursor)

		cursor, err := helper.DecodeCursor(*page.NextCursor)
		require.NoError(t, err)

		empty, err := ListPublishedCatalog(db, cursor, 3, nil)
		require.NoError(t, err)
		assert.Empty(t, empty.Programs)
		assert.Nil(t, empty.NextCursor)
	})
}

func TestHasPublishedLesson(t *testing.T) {
	db := newCatalogTestDB(t)
	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	with := seedCatalogProgram(t, db, "With", base, constants.StatusPublished, constants.StatusPublished)
	without := seedCatalogProgram(t, db, "Without", base, constants.StatusPublished, constants.StatusArchived)

	ok, err := HasPublishedLesson(db, with.ProgramID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = HasPublishedLesson(db, without.ProgramID)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = HasPublishedLesson(db, uuid.New())
	require.NoError(t, err)
	assert.False(t, ok)
}

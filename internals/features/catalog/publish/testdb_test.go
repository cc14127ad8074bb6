// file: internals/features/catalog/publish/testdb_test.go
package publish

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"katalogku_backend/internals/constants"
	LessonModel "katalogku_backend/internals/features/catalog/lessons/model"
	ProgramModel "katalogku_backend/internals/features/catalog/programs/model"
	TermModel "katalogku_backend/internals/features/catalog/terms/model"
)

// The production schema uses gen_random_uuid() defaults and uuid[]/text[]
// columns, so the tables are created here by hand instead of via AutoMigrate.
const testSchema = `
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
	term_created_at datetime,
	UNIQUE (term_program_id, term_number)
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
	lesson_updated_at datetime,
	UNIQUE (lesson_term_id, lesson_number)
);
`

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // :memory: lives on a single connection

	require.NoError(t, db.Exec(testSchema).Error)
	return db
}

func seedProgram(t *testing.T, db *gorm.DB, status constants.ContentStatus) ProgramModel.ProgramModel {
	t.Helper()
	p := ProgramModel.ProgramModel{
		ProgramTitle:  "Program " + uuid.NewString()[:8],
		ProgramStatus: status,
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func seedTerm(t *testing.T, db *gorm.DB, programID uuid.UUID, number int) TermModel.TermModel {
	t.Helper()
	term := TermModel.TermModel{
		TermProgramID: programID,
		TermNumber:    number,
		TermTitle:     "Term",
	}
	require.NoError(t, db.Create(&term).Error)
	return term
}

func seedLesson(t *testing.T, db *gorm.DB, termID uuid.UUID, number int, status constants.ContentStatus, publishAt *time.Time) LessonModel.LessonModel {
	t.Helper()
	l := LessonModel.LessonModel{
		LessonTermID:    termID,
		LessonNumber:    number,
		LessonTitle:     "Lesson",
		LessonStatus:    status,
		LessonPublishAt: publishAt,
	}
	require.NoError(t, db.Create(&l).Error)
	return l
}

func reloadLesson(t *testing.T, db *gorm.DB, id uuid.UUID) LessonModel.LessonModel {
	t.Helper()
	var l LessonModel.LessonModel
	require.NoError(t, db.First(&l, "lesson_id = ?", id).Error)
	return l
}

func reloadProgram(t *testing.T, db *gorm.DB, id uuid.UUID) ProgramModel.ProgramModel {
	t.Helper()
	var p ProgramModel.ProgramModel
	require.NoError(t, db.First(&p, "program_id = ?", id).Error)
	return p
}

func ptrTime(ts time.Time) *time.Time { return &ts }

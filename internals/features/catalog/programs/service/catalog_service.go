// file: internals/features/catalog/programs/service/catalog_service.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"katalogku_backend/internals/constants"
	"katalogku_backend/internals/features/catalog/programs/model"
	helper "katalogku_backend/internals/helpers"
)

// CatalogPage is one page of the public catalog listing.
type CatalogPage struct {
	Programs   []model.ProgramModel
	Total      int64
	NextCursor *string
}

// ListPublishedCatalog lists programs that are published AND still have at
// least one published lesson. The lesson check is a read-time filter on
// purpose: a program stays status=published after its last lesson is
// archived, but it must drop out of the public listing.
//
// Ordered (program_created_at DESC, program_id DESC); cursor points at the
// last row of the previous page. next_cursor is nil when the page came back
// smaller than the limit. Read-only: triggers no transitions.
func ListPublishedCatalog(db *gorm.DB, cursor *helper.Cursor, limit int, topicID *uuid.UUID) (CatalogPage, error) {
	filtered := func() *gorm.DB {
		q := db.Model(&model.ProgramModel{}).
			Where("program_status = ?", constants.StatusPublished).
			Where("EXISTS (SELECT 1 FROM lessons JOIN terms ON terms.term_id = lessons.lesson_term_id WHERE terms.term_program_id = programs.program_id AND lessons.lesson_status = ?)", constants.StatusPublished)
		if topicID != nil {
			// membership test against the uuid[] set; dangling ids simply
			// never match
			q = q.Where("? = ANY(program_topic_ids)", topicID.String())
		}
		return q
	}

	var page CatalogPage
	if err := filtered().Count(&page.Total).Error; err != nil {
		return page, err
	}

	q := filtered()
	if cursor != nil {
		q = q.Where("(program_created_at, program_id) < (?, ?)", cursor.CreatedAt, cursor.ID)
	}
	if err := q.
		Order("program_created_at DESC, program_id DESC").
		Limit(limit).
		Find(&page.Programs).Error; err != nil {
		return page, err
	}

	if len(page.Programs) == limit && limit > 0 {
		last := page.Programs[len(page.Programs)-1]
		next := helper.EncodeCursor(last.ProgramCreatedAt, last.ProgramID)
		page.NextCursor = &next
	}
	return page, nil
}

// HasPublishedLesson re-checks the catalog precondition for one program.
func HasPublishedLesson(db *gorm.DB, programID uuid.UUID) (bool, error) {
	var count int64
	err := db.Table("lessons").
		Joins("JOIN terms ON terms.term_id = lessons.lesson_term_id").
		Where("terms.term_program_id = ?", programID).
		Where("lessons.lesson_status = ?", constants.StatusPublished).
		Count(&count).Error
	return count > 0, err
}


// file: internals/features/catalog/publish/repository.go
package publish

import (
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"katalogku_backend/internals/constants"
	LessonModel "katalogku_backend/internals/features/catalog/lessons/model"
	ProgramModel "katalogku_backend/internals/features/catalog/programs/model"
	TermModel "katalogku_backend/internals/features/catalog/terms/model"
)

// ListDueScheduledLessons returns every lesson with status scheduled and a
// publish_at at or before now. Archived/draft rows are never touched here.
func ListDueScheduledLessons(tx *gorm.DB, now time.Time) ([]LessonModel.LessonModel, error) {
	var due []LessonModel.LessonModel
	err := tx.
		Where("lesson_status = ?", constants.StatusScheduled).
		Where("lesson_publish_at IS NOT NULL AND lesson_publish_at <= ?", now).
		Find(&due).Error
	return due, err
}

// TransitionLessonsToPublished flips the given lessons to published in one
// bulk write. The due-predicate is part of the WHERE clause so a row that an
// editor moved away from scheduled between select and update is left alone.
// published_at keeps its first value (COALESCE), so re-running is a no-op.
// An empty id list is a no-op, not an error.
func TransitionLessonsToPublished(tx *gorm.DB, ids []uuid.UUID, now time.Time) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := tx.Model(&LessonModel.LessonModel{}).
		Where("lesson_id IN ?", ids).
		Where("lesson_status = ?", constants.StatusScheduled).
		Where("lesson_publish_at IS NOT NULL AND lesson_publish_at <= ?", now).
		Updates(map[string]interface{}{
			"lesson_status":       constants.StatusPublished,
			"lesson_published_at": gorm.Expr("COALESCE(lesson_published_at, ?)", now),
			"lesson_updated_at":   now,
		})
	return res.RowsAffected, res.Error
}

// CascadePublishPrograms moves the owning programs of the given terms from
// draft/scheduled to published, but only for programs that really have at
// least one published lesson — the precondition is re-checked in-store, never
// taken from the caller's claim. Idempotent: already-published programs are
// untouched and program_published_at is never rewritten.
//
// A term pointing at a program that no longer exists is logged and skipped so
// one corrupt row cannot block the rest of the batch.
func CascadePublishPrograms(tx *gorm.DB, termIDs []uuid.UUID, now time.Time) (int64, error) {
	if len(termIDs) == 0 {
		return 0, nil
	}

	var terms []TermModel.TermModel
	if err := tx.Where("term_id IN ?", termIDs).Find(&terms).Error; err != nil {
		return 0, err
	}

	programSet := make(map[uuid.UUID]struct{}, len(terms))
	for _, t := range terms {
		programSet[t.TermProgramID] = struct{}{}
	}
	if len(programSet) == 0 {
		return 0, nil
	}
	programIDs := make([]uuid.UUID, 0, len(programSet))
	for id := range programSet {
		programIDs = append(programIDs, id)
	}

	var existing []uuid.UUID
	if err := tx.Model(&ProgramModel.ProgramModel{}).
		Where("program_id IN ?", programIDs).
		Pluck("program_id", &existing).Error; err != nil {
		return 0, err
	}
	if len(existing) < len(programIDs) {
		found := make(map[uuid.UUID]struct{}, len(existing))
		for _, id := range existing {
			found[id] = struct{}{}
		}
		for _, id := range programIDs {
			if _, ok := found[id]; !ok {
				log.Printf("[PUBLISH] skip cascade: term references missing program %s", id)
			}
		}
	}
	if len(existing) == 0 {
		return 0, nil
	}

	res := tx.Model(&ProgramModel.ProgramModel{}).
		Where("program_id IN ?", existing).
		Where("program_status IN ?", []constants.ContentStatus{constants.StatusDraft, constants.StatusScheduled}).
		Where("EXISTS (SELECT 1 FROM lessons JOIN terms ON terms.term_id = lessons.lesson_term_id WHERE terms.term_program_id = programs.program_id AND lessons.lesson_status = ?)", constants.StatusPublished).
		Updates(map[string]interface{}{
			"program_status":       constants.StatusPublished,
			"program_published_at": gorm.Expr("COALESCE(program_published_at, ?)", now),
			"program_updated_at":   now,
		})
	return res.RowsAffected, res.Error
}

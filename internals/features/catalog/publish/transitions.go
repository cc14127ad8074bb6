// file: internals/features/catalog/publish/transitions.go
package publish

import (
	"errors"
	"time"

	"katalogku_backend/internals/constants"
)

var (
	ErrTransitionNotAllowed = errors.New("status transition not allowed")
	ErrScheduleNeedsTime    = errors.New("scheduled status requires publish_at")
)

// Editor-driven transitions. The worker never consults this table: it owns
// exactly one transition (scheduled → published when due) plus the derived
// program cascade, and must not re-derive editor moves.
var editorAllowed = map[constants.ContentStatus]map[constants.ContentStatus]bool{
	constants.StatusDraft: {
		constants.StatusScheduled: true,
		constants.StatusPublished: true, // manual publish
		constants.StatusArchived:  true,
	},
	constants.StatusScheduled: {
		constants.StatusDraft:     true, // unschedule
		constants.StatusPublished: true,
		constants.StatusArchived:  true,
	},
	constants.StatusPublished: {
		constants.StatusArchived: true,
	},
	constants.StatusArchived: {}, // terminal
}

// EditorTransitionAllowed reports whether an editor may move from → to.
// Same-status writes are a no-op, not an error.
func EditorTransitionAllowed(from, to constants.ContentStatus) bool {
	if from == to {
		return true
	}
	return editorAllowed[from][to]
}

// ValidateScheduling enforces the "scheduled implies publish_at" invariant.
func ValidateScheduling(status constants.ContentStatus, publishAt *time.Time) error {
	if status == constants.StatusScheduled && publishAt == nil {
		return ErrScheduleNeedsTime
	}
	return nil
}

// LessonDue: a scheduled lesson is due when its publish_at instant is at or
// before the cycle's reference time.
func LessonDue(publishAt *time.Time, now time.Time) bool {
	return publishAt != nil && !publishAt.After(now)
}

// file: internals/features/catalog/publish/repository_test.go
package publish

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"katalogku_backend/internals/constants"
)

var cycleNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestListDueScheduledLessons(t *testing.T) {
	db := newTestDB(t)
	p := seedProgram(t, db, constants.StatusDraft)
	term := seedTerm(t, db, p.ProgramID, 1)

	due := seedLesson(t, db, term.TermID, 1, constants.StatusScheduled, ptrTime(cycleNow.Add(-time.Hour)))
	onTheDot := seedLesson(t, db, term.TermID, 2, constants.StatusScheduled, ptrTime(cycleNow))
	seedLesson(t, db, term.TermID, 3, constants.StatusScheduled, ptrTime(cycleNow.Add(time.Minute)))
	seedLesson(t, db, term.TermID, 4, constants.StatusDraft, ptrTime(cycleNow.Add(-time.Hour)))
	seedLesson(t, db, term.TermID, 5, constants.StatusArchived, ptrTime(cycleNow.Add(-time.Hour)))

	got, err := ListDueScheduledLessons(db, cycleNow)
	require.NoError(t, err)

	ids := make([]uuid.UUID, 0, len(got))
	for _, l := range got {
		ids = append(ids, l.LessonID)
	}
	assert.ElementsMatch(t, []uuid.UUID{due.LessonID, onTheDot.LessonID}, ids,
		"only scheduled lessons with publish_at <= now are due; the cutoff is inclusive")
}

func TestTransitionLessonsToPublished(t *testing.T) {
	db := newTestDB(t)
	p := seedProgram(t, db, constants.StatusDraft)
	term := seedTerm(t, db, p.ProgramID, 1)

	t.Run("flips due scheduled lessons and stamps published_at", func(t *testing.T) {
		l := seedLesson(t, db, term.TermID, 1, constants.StatusScheduled, ptrTime(cycleNow.Add(-time.Minute)))

		n, err := TransitionLessonsToPublished(db, []uuid.UUID{l.LessonID}, cycleNow)
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)

		got := reloadLesson(t, db, l.LessonID)
		assert.Equal(t, constants.StatusPublished, got.LessonStatus)
		require.NotNil(t, got.LessonPublishedAt)
		assert.True(t, got.LessonPublishedAt.Equal(cycleNow))
	})

	t.Run("keeps an earlier published_at", func(t *testing.T) {
		first := cycleNow.Add(-24 * time.Hour)
		l := seedLesson(t, db, term.TermID, 2, constants.StatusScheduled, ptrTime(cycleNow.Add(-time.Minute)))
		require.NoError(t, db.Model(&l).Update("lesson_published_at", first).Error)

		n, err := TransitionLessonsToPublished(db, []uuid.UUID{l.LessonID}, cycleNow)
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)

		got := reloadLesson(t, db, l.LessonID)
		require.NotNil(t, got.LessonPublishedAt)
		assert.True(t, got.LessonPublishedAt.Equal(first), "published_at is set once, never rewritten")
	})

	t.Run("leaves rows an editor moved away in the meantime", func(t *testing.T) {
		l := seedLesson(t, db, term.TermID, 3, constants.StatusDraft, ptrTime(cycleNow.Add(-time.Minute)))

		n, err := TransitionLessonsToPublished(db, []uuid.UUID{l.LessonID}, cycleNow)
		require.NoError(t, err)
		assert.EqualValues(t, 0, n)
		assert.Equal(t, constants.StatusDraft, reloadLesson(t, db, l.LessonID).LessonStatus)
	})

	t.Run("empty id list is a no-op", func(t *testing.T) {
		n, err := TransitionLessonsToPublished(db, nil, cycleNow)
		require.NoError(t, err)
		assert.EqualValues(t, 0, n)
	})
}

func TestCascadePublishPrograms(t *testing.T) {
	t.Run("publishes the owning draft program", func(t *testing.T) {
		db := newTestDB(t)
		p := seedProgram(t, db, constants.StatusDraft)
		term := seedTerm(t, db, p.ProgramID, 1)
		seedLesson(t, db, term.TermID, 1, constants.StatusPublished, nil)

		n, err := CascadePublishPrograms(db, []uuid.UUID{term.TermID}, cycleNow)
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)

		got := reloadProgram(t, db, p.ProgramID)
		assert.Equal(t, constants.StatusPublished, got.ProgramStatus)
		require.NotNil(t, got.ProgramPublishedAt)
		assert.True(t, got.ProgramPublishedAt.Equal(cycleNow))
	})

	t.Run("precondition re-checked in store", func(t *testing.T) {
		db := newTestDB(t)
		p := seedProgram(t, db, constants.StatusDraft)
		term := seedTerm(t, db, p.ProgramID, 1)
		seedLesson(t, db, term.TermID, 1, constants.StatusScheduled, ptrTime(cycleNow.Add(time.Hour)))

		// caller claims the term published something; the store says otherwise
		n, err := CascadePublishPrograms(db, []uuid.UUID{term.TermID}, cycleNow)
		require.NoError(t, err)
		assert.EqualValues(t, 0, n)
		assert.Equal(t, constants.StatusDraft, reloadProgram(t, db, p.ProgramID).ProgramStatus)
	})

	t.Run("already published program keeps its published_at", func(t *testing.T) {
		db := newTestDB(t)
		first := cycleNow.Add(-48 * time.Hour)
		p := seedProgram(t, db, constants.StatusPublished)
		require.NoError(t, db.Model(&p).Update("program_published_at", first).Error)
		term := seedTerm(t, db, p.ProgramID, 1)
		seedLesson(t, db, term.TermID, 1, constants.StatusPublished, nil)

		n, err := CascadePublishPrograms(db, []uuid.UUID{term.TermID}, cycleNow)
		require.NoError(t, err)
		assert.EqualValues(t, 0, n, "cascade is idempotent for published programs")

		got := reloadProgram(t, db, p.ProgramID)
		require.NotNil(t, got.ProgramPublishedAt)
		assert.True(t, got.ProgramPublishedAt.Equal(first))
	})

	t.Run("term pointing at a missing program is skipped", func(t *testing.T) {
		db := newTestDB(t)
		dangling := seedTerm(t, db, uuid.New(), 1)

		healthy := seedProgram(t, db, constants.StatusDraft)
		healthyTerm := seedTerm(t, db, healthy.ProgramID, 1)
		seedLesson(t, db, healthyTerm.TermID, 1, constants.StatusPublished, nil)

		n, err := CascadePublishPrograms(db, []uuid.UUID{dangling.TermID, healthyTerm.TermID}, cycleNow)
		require.NoError(t, err, "one corrupt row must not block the batch")
		assert.EqualValues(t, 1, n)
		assert.Equal(t, constants.StatusPublished, reloadProgram(t, db, healthy.ProgramID).ProgramStatus)
	})

	t.Run("empty term list is a no-op", func(t *testing.T) {
		db := newTestDB(t)
		n, err := CascadePublishPrograms(db, nil, cycleNow)
		require.NoError(t, err)
		assert.EqualValues(t, 0, n)
	})
}

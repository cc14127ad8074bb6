// file: internals/features/catalog/publish/worker_test.go
package publish

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"katalogku_backend/internals/constants"
)

func newTestWorker(db *gorm.DB, now time.Time) *Worker {
	w := NewWorker(db, time.Minute)
	w.nowFn = func(*gorm.DB) time.Time { return now }
	return w
}

func TestRunCycle_PublishesDueLessonsAndCascades(t *testing.T) {
	db := newTestDB(t)

	// one program, two terms: term 1 is due, term 2 releases later
	p := seedProgram(t, db, constants.StatusDraft)
	term1 := seedTerm(t, db, p.ProgramID, 1)
	term2 := seedTerm(t, db, p.ProgramID, 2)
	due := seedLesson(t, db, term1.TermID, 1, constants.StatusScheduled, ptrTime(cycleNow.Add(-time.Minute)))
	later := seedLesson(t, db, term2.TermID, 1, constants.StatusScheduled, ptrTime(cycleNow.Add(time.Hour)))

	w := newTestWorker(db, cycleNow)
	report, err := w.RunCycle()
	require.NoError(t, err)
	assert.False(t, report.Skipped)
	assert.EqualValues(t, 1, report.LessonsPublished)
	assert.EqualValues(t, 1, report.ProgramsPublished)

	assert.Equal(t, constants.StatusPublished, reloadLesson(t, db, due.LessonID).LessonStatus)
	assert.Equal(t, constants.StatusScheduled, reloadLesson(t, db, later.LessonID).LessonStatus)

	program := reloadProgram(t, db, p.ProgramID)
	assert.Equal(t, constants.StatusPublished, program.ProgramStatus)
	require.NotNil(t, program.ProgramPublishedAt)
	firstPublish := *program.ProgramPublishedAt

	// next cycle, an hour later: the second lesson goes out, the program is
	// already published and stays untouched
	w2 := newTestWorker(db, cycleNow.Add(time.Hour))
	report, err = w2.RunCycle()
	require.NoError(t, err)
	assert.EqualValues(t, 1, report.LessonsPublished)
	assert.EqualValues(t, 0, report.ProgramsPublished)

	program = reloadProgram(t, db, p.ProgramID)
	require.NotNil(t, program.ProgramPublishedAt)
	assert.True(t, program.ProgramPublishedAt.Equal(firstPublish))
}

func TestRunCycle_NothingDueIsANoop(t *testing.T) {
	db := newTestDB(t)
	p := seedProgram(t, db, constants.StatusDraft)
	term := seedTerm(t, db, p.ProgramID, 1)
	seedLesson(t, db, term.TermID, 1, constants.StatusScheduled, ptrTime(cycleNow.Add(time.Hour)))

	w := newTestWorker(db, cycleNow)
	report, err := w.RunCycle()
	require.NoError(t, err)
	assert.EqualValues(t, 0, report.LessonsPublished)
	assert.EqualValues(t, 0, report.ProgramsPublished)
}

func TestRunCycle_Idempotent(t *testing.T) {
	db := newTestDB(t)
	p := seedProgram(t, db, constants.StatusDraft)
	term := seedTerm(t, db, p.ProgramID, 1)
	l := seedLesson(t, db, term.TermID, 1, constants.StatusScheduled, ptrTime(cycleNow.Add(-time.Minute)))

	w := newTestWorker(db, cycleNow)
	_, err := w.RunCycle()
	require.NoError(t, err)
	first := reloadLesson(t, db, l.LessonID)
	require.NotNil(t, first.LessonPublishedAt)

	report, err := w.RunCycle()
	require.NoError(t, err)
	assert.EqualValues(t, 0, report.LessonsPublished)

	again := reloadLesson(t, db, l.LessonID)
	require.NotNil(t, again.LessonPublishedAt)
	assert.True(t, again.LessonPublishedAt.Equal(*first.LessonPublishedAt))
}

func TestRunCycle_RollsBackWhenCascadeFails(t *testing.T) {
	db := newTestDB(t)
	p := seedProgram(t, db, constants.StatusDraft)
	term := seedTerm(t, db, p.ProgramID, 1)
	l := seedLesson(t, db, term.TermID, 1, constants.StatusScheduled, ptrTime(cycleNow.Add(-time.Minute)))

	w := newTestWorker(db, cycleNow)
	w.cascadeFn = func(*gorm.DB, []uuid.UUID, time.Time) (int64, error) {
		return 0, errors.New("cascade exploded")
	}

	_, err := w.RunCycle()
	require.Error(t, err)

	// lesson and program both untouched: the cycle is one transaction
	got := reloadLesson(t, db, l.LessonID)
	assert.Equal(t, constants.StatusScheduled, got.LessonStatus)
	assert.Nil(t, got.LessonPublishedAt)
	assert.Equal(t, constants.StatusDraft, reloadProgram(t, db, p.ProgramID).ProgramStatus)

	// the guard is released, the next cycle succeeds
	report, err := w.RunCycle()
	require.NoError(t, err)
	assert.EqualValues(t, 1, report.LessonsPublished)
}

func TestRunCycle_OverlappingCycleIsSkipped(t *testing.T) {
	db := newTestDB(t)
	p := seedProgram(t, db, constants.StatusDraft)
	term := seedTerm(t, db, p.ProgramID, 1)
	seedLesson(t, db, term.TermID, 1, constants.StatusScheduled, ptrTime(cycleNow.Add(-time.Minute)))

	w := newTestWorker(db, cycleNow)

	entered := make(chan struct{})
	release := make(chan struct{})
	w.cascadeFn = func(tx *gorm.DB, termIDs []uuid.UUID, now time.Time) (int64, error) {
		close(entered)
		<-release
		return CascadePublishPrograms(tx, termIDs, now)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := w.RunCycle()
		assert.NoError(t, err)
	}()

	<-entered
	report, err := w.RunCycle()
	require.NoError(t, err)
	assert.True(t, report.Skipped, "a second cycle while one is in flight must be skipped, not queued")

	close(release)
	<-done
}

func TestWorkerStartStop(t *testing.T) {
	db := newTestDB(t)
	p := seedProgram(t, db, constants.StatusDraft)
	term := seedTerm(t, db, p.ProgramID, 1)
	l := seedLesson(t, db, term.TermID, 1, constants.StatusScheduled, ptrTime(cycleNow.Add(-time.Minute)))

	w := NewWorker(db, 10*time.Millisecond)
	w.nowFn = func(*gorm.DB) time.Time { return cycleNow }
	w.Start()

	assert.Eventually(t, func() bool {
		var status string
		db.Raw("SELECT lesson_status FROM lessons WHERE lesson_id = ?", l.LessonID).Scan(&status)
		return status == string(constants.StatusPublished)
	}, 2*time.Second, 10*time.Millisecond)

	w.Stop() // must return, the loop goroutine exits
}

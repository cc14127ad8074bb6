// file: internals/features/catalog/publish/worker.go
package publish

import (
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbtime "katalogku_backend/internals/helpers/dbtime"
)

// CycleReport summarizes one publish cycle.
type CycleReport struct {
	Skipped           bool
	LessonsPublished  int64
	ProgramsPublished int64
	RanAt             time.Time
}

// Worker runs the periodic publish cycle: flip due scheduled lessons to
// published and cascade the transition up to their programs, all inside one
// store transaction. Overlapping cycles in the same process are skipped via
// an atomic guard; this does not protect two separate processes sharing the
// store (horizontal scaling would need an advisory lock on top).
type Worker struct {
	db       *gorm.DB
	interval time.Duration

	running atomic.Bool
	stop    chan struct{}
	done    chan struct{}

	// seams for tests: fixed clock, failing cascade
	nowFn     func(*gorm.DB) time.Time
	cascadeFn func(*gorm.DB, []uuid.UUID, time.Time) (int64, error)
}

func NewWorker(db *gorm.DB, interval time.Duration) *Worker {
	return &Worker{
		db:        db,
		interval:  interval,
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
		nowFn:     dbtime.Now,
		cascadeFn: CascadePublishPrograms,
	}
}

// Start launches the cycle loop on its own goroutine, off the request path.
func (w *Worker) Start() {
	go func() {
		defer close(w.done)
		log.Printf("[PUBLISH] worker started, interval=%s", w.interval)

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		for {
			select {
			case <-w.stop:
				log.Println("[PUBLISH] worker stopped")
				return
			case <-ticker.C:
				report, err := w.RunCycle()
				switch {
				case err != nil:
					// already rolled back; the next tick retries
				case report.Skipped:
					log.Println("[PUBLISH] previous cycle still running, tick skipped")
				case report.LessonsPublished > 0:
					log.Printf("[PUBLISH] cycle done: %d lesson(s), %d program(s) published at %s",
						report.LessonsPublished, report.ProgramsPublished, report.RanAt.Format(time.RFC3339))
				}
			}
		}
	}()
}

// Stop halts the loop and waits for it to exit.
func (w *Worker) Stop() {
	close(w.stop)
	<-w.done
}

// RunCycle performs exactly one publish cycle. Failures never propagate past
// this boundary as a panic; everything is rolled back and reported as an
// error for the next tick to retry.
func (w *Worker) RunCycle() (report CycleReport, err error) {
	if !w.running.CompareAndSwap(false, true) {
		return CycleReport{Skipped: true}, nil
	}
	// release the guard whatever happens, a crashed cycle must not wedge
	// all future ticks
	defer w.running.Store(false)
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("publish cycle panic: %v", r)
			log.Printf("[PUBLISH ERROR] %v", err)
		}
	}()

	var lessons, programs int64
	var ranAt time.Time

	err = w.db.Transaction(func(tx *gorm.DB) error {
		// one reference time for the whole batch
		now := w.nowFn(tx)
		ranAt = now

		due, err := ListDueScheduledLessons(tx, now)
		if err != nil {
			return err
		}
		if len(due) == 0 {
			return nil // no-op cycle, commit
		}

		ids := make([]uuid.UUID, 0, len(due))
		termSet := make(map[uuid.UUID]struct{}, len(due))
		for _, l := range due {
			ids = append(ids, l.LessonID)
			termSet[l.LessonTermID] = struct{}{}
		}
		termIDs := make([]uuid.UUID, 0, len(termSet))
		for id := range termSet {
			termIDs = append(termIDs, id)
		}

		lessons, err = TransitionLessonsToPublished(tx, ids, now)
		if err != nil {
			return err
		}

		// cascade reads lesson state after the bulk write, same transaction
		programs, err = w.cascadeFn(tx, termIDs, now)
		return err
	})
	if err != nil {
		log.Printf("[PUBLISH ERROR] cycle rolled back: %v", err)
		return CycleReport{RanAt: ranAt}, err
	}

	return CycleReport{
		LessonsPublished:  lessons,
		ProgramsPublished: programs,
		RanAt:             ranAt,
	}, nil
}

package workers

import (
	"context"
	"log"
	"time"

	"github.com/comitanigiacomo/lifesync-engine/internal/core/domain"
	"github.com/comitanigiacomo/lifesync-engine/internal/observability"
)

const defaultQueueSize = 100

// OutcomeRefresher recomputes and stores a user's outcome snapshot.
type OutcomeRefresher interface {
	RefreshOutcomes(ctx context.Context, userID domain.ID, today time.Time) error
}

type SnapshotJob struct {
	UserID domain.ID
}

// SnapshotWorker refreshes outcome snapshots in the background after a user's
// data changes. clock supplies "today" in the configured timezone.
type SnapshotWorker struct {
	refresher OutcomeRefresher
	clock     func() time.Time
	jobs      chan SnapshotJob
}

func NewSnapshotWorker(refresher OutcomeRefresher, clock func() time.Time, queueSize int) *SnapshotWorker {
	if clock == nil {
		clock = time.Now
	}
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	return &SnapshotWorker{
		refresher: refresher,
		clock:     clock,
		jobs:      make(chan SnapshotJob, queueSize),
	}
}

func (w *SnapshotWorker) Start(ctx context.Context) {
	go func() {
		log.Println("[WORKER] snapshot worker started")
		for {
			select {
			case job := <-w.jobs:
				w.processJob(ctx, job)
			case <-ctx.Done():
				log.Println("[WORKER] snapshot worker shutting down")
				return
			}
		}
	}()
}

// Enqueue never blocks; when the queue is full the job is dropped and the
// snapshot simply expires on its own.
func (w *SnapshotWorker) Enqueue(userID domain.ID) {
	select {
	case w.jobs <- SnapshotJob{UserID: userID}:
	default:
		observability.RecordSnapshotJobDropped()
		log.Printf("[WORKER] queue full, dropping snapshot job for user %s", userID)
	}
}

func (w *SnapshotWorker) processJob(ctx context.Context, job SnapshotJob) {
	if err := w.refresher.RefreshOutcomes(ctx, job.UserID, w.clock()); err != nil {
		log.Printf("[WORKER] failed to refresh snapshot for user %s: %v", job.UserID, err)
	}
}

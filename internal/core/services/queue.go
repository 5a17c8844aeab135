package services

import "github.com/comitanigiacomo/lifesync-engine/internal/core/domain"

// SnapshotQueue schedules a background refresh of a user's outcome snapshot.
// Implementations must not block.
type SnapshotQueue interface {
	Enqueue(userID domain.ID)
}

func mergeString(newVal, oldVal string) string {
	if newVal == "" {
		return oldVal
	}
	return newVal
}

func notify(queue SnapshotQueue, userID domain.ID) {
	if queue != nil {
		queue.Enqueue(userID)
	}
}

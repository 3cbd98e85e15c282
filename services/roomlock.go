package services

import (
	"sync"

	"github.com/google/uuid"
)

// roomLocks serializes the conflict-check-then-insert sequence per room.
// Without it two concurrent creates for overlapping windows can both pass
// the conflict check before either row is written.
var roomLocks sync.Map

func lockRoom(roomID uuid.UUID) *sync.Mutex {
	v, _ := roomLocks.LoadOrStore(roomID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu
}

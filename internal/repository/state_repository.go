package repository

import (
	"context"
	"sync"
)

// DefaultStateKey is the fixed key the whole board state is stored under.
const DefaultStateKey = "kanban-board-state"

// StateRepository is durable get/set of one serialized state blob.
// Get reports found=false when nothing has been stored yet.
type StateRepository interface {
	Get(ctx context.Context) (data []byte, found bool, err error)
	Set(ctx context.Context, data []byte) error
}

// MemoryRepository keeps the blob in process memory.
type MemoryRepository struct {
	mu   sync.RWMutex
	data []byte
	set  bool
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Get returns a copy so callers cannot alias the stored bytes.
func (r *MemoryRepository) Get(ctx context.Context) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.set {
		return nil, false, nil
	}
	return append([]byte(nil), r.data...), true, nil
}

func (r *MemoryRepository) Set(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append([]byte(nil), data...)
	r.set = true
	return nil
}

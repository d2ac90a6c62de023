package memory

import (
	"context"
	"sync"

	"github.com/SergeyKozhin/weekly-scheduler-backend/internal/model"
)

// ScheduleRepository is an in-memory stand-in for the durable blob store,
// used in dev mode and in tests. Contents do not survive a restart.
type ScheduleRepository struct {
	mu      sync.RWMutex
	payload []byte
}

func NewScheduleRepository() *ScheduleRepository {
	return &ScheduleRepository{}
}

func (r *ScheduleRepository) Get(_ context.Context) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.payload == nil {
		return nil, model.ErrNoRecord
	}

	copied := make([]byte, len(r.payload))
	copy(copied, r.payload)
	return copied, nil
}

func (r *ScheduleRepository) Set(_ context.Context, payload []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := make([]byte, len(payload))
	copy(copied, payload)
	r.payload = copied
	return nil
}

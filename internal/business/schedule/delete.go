package schedule

import (
	"context"

	"github.com/SergeyKozhin/weekly-scheduler-backend/internal/model"
)

// DeleteEvent removes the event with the given id from day; later events
// shift down one position. Unknown day or id yields ErrNoRecord.
func (s *Service) DeleteEvent(ctx context.Context, day model.Weekday, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	events, ok := s.schedule[day]
	if !ok {
		return model.ErrNoRecord
	}

	idx := indexByID(events, id)
	if idx == -1 {
		return model.ErrNoRecord
	}

	s.schedule[day] = append(events[:idx], events[idx+1:]...)

	s.persist(ctx)

	return nil
}

// ClearAll resets every day to an empty sequence. Destructive and
// irreversible; callers must have obtained explicit confirmation.
func (s *Service) ClearAll(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.schedule = model.EmptySchedule()

	s.persist(ctx)
}

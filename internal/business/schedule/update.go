package schedule

import (
	"context"

	"github.com/SergeyKozhin/weekly-scheduler-backend/internal/model"
)

// UpdateEvent applies patch to the event with the given id. Only title and
// color are editable here; start and end never change, so the day's ordering
// is untouched. A patched color must come from the palette. Unknown day or id
// yields ErrNoRecord with no state change.
func (s *Service) UpdateEvent(ctx context.Context, day model.Weekday, id string, patch model.EventPatch) (*model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	events, ok := s.schedule[day]
	if !ok {
		return nil, model.ErrNoRecord
	}

	idx := indexByID(events, id)
	if idx == -1 {
		return nil, model.ErrNoRecord
	}

	if patch.Color != nil && !model.ValidColor(*patch.Color) {
		return nil, &model.ValidationError{Field: "color", Message: "color must be one of the palette values"}
	}

	event := events[idx]
	if patch.Title != nil {
		event.Title = *patch.Title
	}
	if patch.Color != nil {
		event.Color = *patch.Color
	}

	s.persist(ctx)

	stored := *event
	return &stored, nil
}

func indexByID(events []*model.Event, id string) int {
	for i, e := range events {
		if e.ID == id {
			return i
		}
	}
	return -1
}

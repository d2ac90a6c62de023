package schedule

import (
	"context"
	"strings"

	"github.com/SergeyKozhin/weekly-scheduler-backend/internal/model"
	"github.com/google/uuid"
)

func newEventID() string {
	return uuid.NewString()
}

// AddEvent validates info, inserts it into the day keeping the ascending
// start order, persists and returns the stored event with its new id.
// Overlapping events are permitted without restriction.
func (s *Service) AddEvent(ctx context.Context, day model.Weekday, info model.EventCreate) (*model.Event, error) {
	title := strings.TrimSpace(info.Title)
	if title == "" {
		return nil, &model.ValidationError{Field: "title", Message: "title must be provided"}
	}
	if !model.ValidClock(info.Start) {
		return nil, &model.ValidationError{Field: "start", Message: "start must be a zero-padded HH:MM time"}
	}
	if !model.ValidClock(info.End) {
		return nil, &model.ValidationError{Field: "end", Message: "end must be a zero-padded HH:MM time"}
	}

	color := info.Color
	if color == "" {
		color = model.DefaultColor
	}
	if !model.ValidColor(color) {
		return nil, &model.ValidationError{Field: "color", Message: "color must be one of the palette values"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.schedule[day]; !ok {
		return nil, model.ErrNoRecord
	}

	event := &model.Event{
		ID: newEventID(),
		EventCreate: model.EventCreate{
			Title: title,
			Start: info.Start,
			End:   info.End,
			Color: color,
		},
	}

	s.schedule[day] = append(s.schedule[day], event)
	s.schedule.SortDay(day)

	s.persist(ctx)

	stored := *event
	return &stored, nil
}

package schedule

import (
	"time"

	"github.com/SergeyKozhin/weekly-scheduler-backend/internal/model"
)

// RenderItem is the shape consumed by the calendar-rendering widget. The
// extended props carry enough of a back-reference for the widget's click
// callback to be mapped to a store mutation by event id.
type RenderItem struct {
	Title           string    `json:"title"`
	DaysOfWeek      []int     `json:"daysOfWeek"`
	StartTime       string    `json:"startTime"`
	EndTime         string    `json:"endTime"`
	BackgroundColor string    `json:"backgroundColor"`
	BorderColor     string    `json:"borderColor"`
	TextColor       string    `json:"textColor"`
	Display         string    `json:"display"`
	ExtendedProps   RenderRef `json:"extendedProps"`
}

type RenderRef struct {
	EventID       string        `json:"eventId"`
	Day           model.Weekday `json:"day"`
	OriginalStart string        `json:"originalStart"`
	OriginalEnd   string        `json:"originalEnd"`
}

// RenderItems derives the widget render model from the current schedule.
// Days are walked in calendar order so the output is deterministic.
func (s *Service) RenderItems() []*RenderItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var items []*RenderItem
	for _, day := range model.Weekdays {
		for _, e := range s.schedule[day] {
			color := e.Color
			if color == "" {
				color = model.DefaultColor
			}

			items = append(items, &RenderItem{
				Title:           e.Title,
				DaysOfWeek:      []int{day.Number()},
				StartTime:       e.Start,
				EndTime:         e.End,
				BackgroundColor: color,
				BorderColor:     color,
				TextColor:       "#ffffff",
				Display:         "block",
				ExtendedProps: RenderRef{
					EventID:       e.ID,
					Day:           day,
					OriginalStart: e.Start,
					OriginalEnd:   e.End,
				},
			})
		}
	}

	return items
}

// CurrentEvent returns the event in progress at now, if any: the first event
// on today whose interval contains the current HH:MM.
func (s *Service) CurrentEvent(now time.Time) (*model.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	day := model.WeekdayOf(now)
	clock := model.FormatClock(now)

	for _, e := range s.schedule[day] {
		if e.Start <= clock && e.End > clock {
			stored := *e
			return &stored, true
		}
	}

	return nil, false
}

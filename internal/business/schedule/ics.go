package schedule

import (
	"fmt"
	"time"

	"github.com/SergeyKozhin/weekly-scheduler-backend/internal/model"
	ical "github.com/arran4/golang-ical"
)

var icsByDay = map[model.Weekday]string{
	model.Monday:    "MO",
	model.Tuesday:   "TU",
	model.Wednesday: "WE",
	model.Thursday:  "TH",
	model.Friday:    "FR",
	model.Saturday:  "SA",
	model.Sunday:    "SU",
}

// ExportICS renders the schedule as an iCalendar document with one weekly
// recurring VEVENT per stored event, anchored in the week of now.
func (s *Service) ExportICS(now time.Time) ([]byte, error) {
	snapshot := s.Snapshot()

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)

	for _, day := range model.Weekdays {
		for _, e := range snapshot[day] {
			start, err := anchorFor(day, e.Start, now)
			if err != nil {
				return nil, fmt.Errorf("anchor event %v: %w", e.ID, err)
			}

			endHour, endMinute, err := model.ParseClock(e.End)
			if err != nil {
				return nil, fmt.Errorf("end of event %v: %w", e.ID, err)
			}
			end := time.Date(start.Year(), start.Month(), start.Day(), endHour, endMinute, 0, 0, start.Location())

			event := cal.AddEvent(e.ID)
			event.SetSummary(e.Title)
			event.SetStartAt(start)
			event.SetEndAt(end)
			event.AddRrule(fmt.Sprintf("FREQ=WEEKLY;BYDAY=%s", icsByDay[day]))
		}
	}

	return []byte(cal.Serialize()), nil
}

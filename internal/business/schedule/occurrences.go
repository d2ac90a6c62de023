package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/SergeyKozhin/weekly-scheduler-backend/internal/model"
	"github.com/teambition/rrule-go"
)

// Occurrence is one concrete dated instance of a weekly event.
type Occurrence struct {
	EventID string        `json:"event_id"`
	Day     model.Weekday `json:"day"`
	Title   string        `json:"title"`
	Color   string        `json:"color"`
	From    time.Time     `json:"from"`
	To      time.Time     `json:"to"`
}

// Occurrences expands the weekly grid into dated instances between from and
// to (inclusive), sorted ascending by start.
func (s *Service) Occurrences(from, to time.Time) ([]*Occurrence, error) {
	snapshot := s.Snapshot()

	var res []*Occurrence

	for _, day := range model.Weekdays {
		for _, e := range snapshot[day] {
			rule, err := weeklyRule(day, e.Start, from)
			if err != nil {
				return nil, fmt.Errorf("rule for event %v: %w", e.ID, err)
			}

			endHour, endMinute, err := model.ParseClock(e.End)
			if err != nil {
				return nil, fmt.Errorf("end of event %v: %w", e.ID, err)
			}

			for _, start := range rule.Between(from, to, true) {
				end := time.Date(start.Year(), start.Month(), start.Day(), endHour, endMinute, 0, 0, start.Location())

				res = append(res, &Occurrence{
					EventID: e.ID,
					Day:     day,
					Title:   e.Title,
					Color:   e.Color,
					From:    start,
					To:      end,
				})
			}
		}
	}

	sort.SliceStable(res, func(i, j int) bool {
		return res[i].From.Before(res[j].From)
	})

	return res, nil
}

// anchorFor returns the last timestamp at or before from that falls on day
// and carries the given HH:MM clock.
func anchorFor(day model.Weekday, start string, from time.Time) (time.Time, error) {
	hour, minute, err := model.ParseClock(start)
	if err != nil {
		return time.Time{}, err
	}

	anchor := time.Date(from.Year(), from.Month(), from.Day(), hour, minute, 0, 0, from.Location())
	back := (int(anchor.Weekday()) - day.Number() + 7) % 7
	return anchor.AddDate(0, 0, -back), nil
}

// weeklyRule builds a WEEKLY rrule anchored on the last date at or before
// from falling on day, carrying the event's start clock.
func weeklyRule(day model.Weekday, start string, from time.Time) (*rrule.RRule, error) {
	anchor, err := anchorFor(day, start, from)
	if err != nil {
		return nil, err
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:     rrule.WEEKLY,
		Interval: 1,
		Dtstart:  anchor,
	})
	if err != nil {
		return nil, fmt.Errorf("creating rule: %w", err)
	}

	return rule, nil
}

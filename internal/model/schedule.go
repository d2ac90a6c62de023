package model

import (
	"sort"
	"time"
)

type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Weekdays lists all days in calendar order starting from Monday, matching
// the order the week grid is presented in.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var weekdayNumbers = map[Weekday]int{
	Sunday:    0,
	Monday:    1,
	Tuesday:   2,
	Wednesday: 3,
	Thursday:  4,
	Friday:    5,
	Saturday:  6,
}

// ParseWeekday maps a lowercase day name to a Weekday.
func ParseWeekday(s string) (Weekday, error) {
	d := Weekday(s)
	if _, ok := weekdayNumbers[d]; !ok {
		return "", ErrNoRecord
	}
	return d, nil
}

// Number returns the widget day-of-week code, 0=Sunday..6=Saturday.
func (d Weekday) Number() int {
	return weekdayNumbers[d]
}

// WeekdayOf returns the Weekday a timestamp falls on.
func WeekdayOf(t time.Time) Weekday {
	switch t.Weekday() {
	case time.Sunday:
		return Sunday
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	default:
		return Saturday
	}
}

// Schedule is the full weekly set of events keyed by weekday. Within a day
// events stay sorted ascending by start; the format is fixed-width zero-padded
// HH:MM, so plain string comparison orders correctly.
type Schedule map[Weekday][]*Event

// EmptySchedule returns a schedule with all seven days mapped to empty slices.
func EmptySchedule() Schedule {
	s := make(Schedule, len(Weekdays))
	for _, d := range Weekdays {
		s[d] = []*Event{}
	}
	return s
}

// Normalize ensures all seven weekday keys exist, drops unknown keys and
// re-sorts every day. Used after hydrating from storage or an import payload.
func (s Schedule) Normalize() Schedule {
	res := EmptySchedule()
	for _, d := range Weekdays {
		if events := s[d]; len(events) != 0 {
			res[d] = events
		}
		res.SortDay(d)
	}
	return res
}

// SortDay restores the ordering invariant for a single day.
func (s Schedule) SortDay(day Weekday) {
	events := s[day]
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Start < events[j].Start
	})
}

// Clone deep-copies the schedule so snapshots handed to other components
// cannot observe later mutations.
func (s Schedule) Clone() Schedule {
	res := make(Schedule, len(s))
	for d, events := range s {
		copied := make([]*Event, len(events))
		for i, e := range events {
			c := *e
			copied[i] = &c
		}
		res[d] = copied
	}
	return res
}

// Count returns the total number of events across all days.
func (s Schedule) Count() int {
	n := 0
	for _, events := range s {
		n += len(events)
	}
	return n
}

package notifier

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/SergeyKozhin/weekly-scheduler-backend/internal/model"
	"github.com/xlab/closer"
	"go.uber.org/zap"
)

// Matcher evaluates, once per calendar minute, whether any event is starting
// right now or five minutes from now, and drives the alert plus repeating
// sound until the alert is dismissed.
type Matcher struct {
	logger    *zap.SugaredLogger
	schedules scheduleSource
	sound     *Repeater

	mu                sync.Mutex
	clock             time.Time
	alert             AlertState
	earlyNotification bool

	// alerted tracks (day, event id, minute) tuples already raised within
	// the current minute so a dismissed alert cannot refire for the same
	// event before the minute rolls over.
	alerted       map[string]struct{}
	alertedMinute string
}

type scheduleSource interface {
	Snapshot() model.Schedule
}

func NewMatcher(logger *zap.SugaredLogger, schedules scheduleSource, sound *Repeater, earlyNotification bool) *Matcher {
	return &Matcher{
		logger:            logger,
		schedules:         schedules,
		sound:             sound,
		clock:             time.Now(),
		earlyNotification: earlyNotification,
		alerted:           map[string]struct{}{},
	}
}

// Start runs the one-second tick loop until ctx is cancelled or the process
// shuts down. Each tick updates the held clock first and only then evaluates,
// so a match always sees a consistent "now".
func (m *Matcher) Start(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	done := make(chan struct{})

	closer.Bind(func() {
		close(done)
		ticker.Stop()
	})

	for {
		select {
		case <-ctx.Done():
			return
		case <-done:
			return
		case t := <-ticker.C:
			m.Tick(t)
		}
	}
}

// Tick advances the clock and, on minute boundaries, evaluates the schedule.
func (m *Matcher) Tick(now time.Time) {
	m.mu.Lock()
	m.clock = now
	m.mu.Unlock()

	if now.Second() != 0 {
		return
	}

	m.evaluate(now)
}

// Clock returns the timestamp of the latest tick.
func (m *Matcher) Clock() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.clock
}

func (m *Matcher) evaluate(now time.Time) {
	day := model.WeekdayOf(now)
	currentTimeString := model.FormatClock(now)
	fiveMinutesLaterString := model.FormatClock(now.Add(5 * time.Minute))
	// The de-dup key carries the date so the same weekly slot alerts again
	// next week even if no tick cleared the set in between.
	minuteKey := now.Format("2006-01-02 15:04")

	todayEvents := m.schedules.Snapshot()[day]

	var currentEvents, upcomingEvents []*model.Event
	for _, e := range todayEvents {
		if e.Start == currentTimeString {
			currentEvents = append(currentEvents, e)
		}
	}
	if m.EarlyNotification() {
		for _, e := range todayEvents {
			if e.Start == fiveMinutesLaterString {
				upcomingEvents = append(upcomingEvents, e)
			}
		}
	}

	// Events starting right now win over the five-minute warning; the
	// "soon" set is not shown in the same tick.
	switch {
	case len(currentEvents) > 0:
		m.raise(day, minuteKey, AlertKindNow, messageStartingNow, currentEvents)
	case len(upcomingEvents) > 0:
		m.raise(day, minuteKey, AlertKindSoon, messageStartingSoon, upcomingEvents)
	}
}

func (m *Matcher) raise(day model.Weekday, minute string, kind AlertKind, message string, events []*model.Event) {
	m.mu.Lock()

	if m.alertedMinute != minute {
		m.alerted = map[string]struct{}{}
		m.alertedMinute = minute
	}

	var fresh []*model.Event
	for _, e := range events {
		key := alertKey(day, e.ID, minute)
		if _, ok := m.alerted[key]; ok {
			continue
		}
		m.alerted[key] = struct{}{}
		fresh = append(fresh, e)
	}

	if len(fresh) == 0 {
		m.mu.Unlock()
		return
	}

	m.alert = AlertState{
		Open:    true,
		Kind:    kind,
		Message: message,
		Events:  fresh,
	}
	m.mu.Unlock()

	m.logger.Infow("schedule alert raised", "kind", kind, "day", day, "minute", minute, "events", len(fresh))
	m.sound.Start()
}

// Alert returns the current alert state.
func (m *Matcher) Alert() AlertState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.alert
}

// Dismiss closes the alert and releases the sound repeater. Safe to call
// when no alert is open.
func (m *Matcher) Dismiss() {
	m.mu.Lock()
	m.alert = AlertState{}
	m.mu.Unlock()

	m.sound.Stop()
}

func (m *Matcher) EarlyNotification() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.earlyNotification
}

func (m *Matcher) SetEarlyNotification(enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.earlyNotification = enabled
}

func alertKey(day model.Weekday, eventID, minute string) string {
	return fmt.Sprintf("%v|%v|%v", day, eventID, minute)
}

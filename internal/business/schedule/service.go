package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/SergeyKozhin/weekly-scheduler-backend/internal/model"
	"go.uber.org/zap"
)

// Service owns the authoritative weekly schedule. Every mutation happens
// in memory first and is then mirrored to the repository; a failed mirror
// write is logged and never rolls the in-memory state back.
type Service struct {
	mu         sync.RWMutex
	logger     *zap.SugaredLogger
	repository ScheduleRepository
	schedule   model.Schedule
}

// ScheduleRepository is the durable mirror: a single blob read once at
// startup and overwritten wholesale on every mutation.
type ScheduleRepository interface {
	Get(ctx context.Context) ([]byte, error)
	Set(ctx context.Context, payload []byte) error
}

func NewService(logger *zap.SugaredLogger, repo ScheduleRepository) *Service {
	return &Service{
		logger:     logger,
		repository: repo,
		schedule:   model.EmptySchedule(),
	}
}

// Load hydrates the schedule from the repository. Missing or malformed
// stored data is indistinguishable from a first run and yields the empty
// schedule without an error.
func (s *Service) Load(ctx context.Context) error {
	payload, err := s.repository.Get(ctx)
	if err != nil {
		if !errors.Is(err, model.ErrNoRecord) {
			s.logger.Errorw("failed to read stored schedule, starting empty", "err", err)
		}
		return nil
	}

	var stored model.Schedule
	if err := json.Unmarshal(payload, &stored); err != nil {
		s.logger.Errorw("stored schedule is malformed, starting empty", "err", err)
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.schedule = withIDs(stored.Normalize())

	return nil
}

// Snapshot returns a deep copy of the current schedule.
func (s *Service) Snapshot() model.Schedule {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.schedule.Clone()
}

// EventsOn returns a copy of one day's events, unknown day yields ErrNoRecord.
func (s *Service) EventsOn(day model.Weekday) ([]*model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events, ok := s.schedule[day]
	if !ok {
		return nil, model.ErrNoRecord
	}

	copied := make([]*model.Event, len(events))
	for i, e := range events {
		c := *e
		copied[i] = &c
	}

	return copied, nil
}

// serialize renders the schedule as pretty-printed JSON. The same bytes go
// to the repository and out of ExportAsText, so an exported file and the
// stored blob always share one shape.
func serialize(schedule model.Schedule) ([]byte, error) {
	return json.MarshalIndent(schedule, "", "  ")
}

// persist mirrors the in-memory schedule to the repository. Best effort:
// a write failure is logged and the session continues on memory alone.
func (s *Service) persist(ctx context.Context) {
	payload, err := serialize(s.schedule)
	if err != nil {
		s.logger.Errorw("failed to serialize schedule", "err", err)
		return
	}

	if err := s.repository.Set(ctx, payload); err != nil {
		s.logger.Errorw("failed to persist schedule", "err", err)
	}
}

func withIDs(schedule model.Schedule) model.Schedule {
	for _, events := range schedule {
		for _, e := range events {
			if e.ID == "" {
				e.ID = newEventID()
			}
		}
	}
	return schedule
}

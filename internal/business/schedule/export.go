package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SergeyKozhin/weekly-scheduler-backend/internal/model"
)

// ExportAsText serializes the full schedule to pretty-printed JSON,
// byte-for-byte the same shape as the stored blob.
func (s *Service) ExportAsText() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	payload, err := serialize(s.schedule)
	if err != nil {
		return nil, fmt.Errorf("serialize schedule: %w", err)
	}

	return payload, nil
}

// ExportFilename returns the date-stamped download name for an export taken now.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("my-calendar-schedule-%s.txt", now.Format("2006-01-02"))
}

// ImportFromText parses payload and replaces the whole schedule on success.
// On failure the schedule is untouched and an ImportError is returned.
// Parsed data is trusted as-is beyond successful decoding; events arriving
// without ids get fresh ones so they stay addressable.
func (s *Service) ImportFromText(ctx context.Context, payload []byte) error {
	var imported model.Schedule
	if err := json.Unmarshal(payload, &imported); err != nil {
		return &model.ImportError{Err: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.schedule = withIDs(imported.Normalize())

	s.persist(ctx)

	return nil
}

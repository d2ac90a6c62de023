package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/SergeyKozhin/weekly-scheduler-backend/internal/business/schedule"
	"github.com/robfig/cron/v3"
	"github.com/xlab/closer"
	"go.uber.org/zap"
)

// Scheduler writes periodic export snapshots of the schedule to disk, using
// the same payload and naming as a manual export.
type Scheduler struct {
	logger   *zap.SugaredLogger
	exporter exporter
	dir      string
}

type exporter interface {
	ExportAsText() ([]byte, error)
}

func NewScheduler(logger *zap.SugaredLogger, exporter exporter, dir string) *Scheduler {
	return &Scheduler{
		logger:   logger,
		exporter: exporter,
		dir:      dir,
	}
}

// Start registers the snapshot job on spec and runs the cron loop until
// shutdown.
func (s *Scheduler) Start(spec string) error {
	c := cron.New()

	if _, err := c.AddFunc(spec, func() {
		if err := s.Snapshot(time.Now()); err != nil {
			s.logger.Errorw("scheduled backup failed", "err", err)
		}
	}); err != nil {
		return fmt.Errorf("schedule backup job %q: %w", spec, err)
	}

	c.Start()
	s.logger.Infow("backup scheduler started", "spec", spec, "dir", s.dir)

	closer.Bind(func() {
		<-c.Stop().Done()
	})

	return nil
}

// Snapshot writes one export file for the given moment.
func (s *Scheduler) Snapshot(now time.Time) error {
	payload, err := s.exporter.ExportAsText()
	if err != nil {
		return fmt.Errorf("export schedule: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create backup dir: %w", err)
	}

	path := filepath.Join(s.dir, schedule.ExportFilename(now))
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write backup file: %w", err)
	}

	s.logger.Debugw("backup written", "path", path)
	return nil
}

package backup

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

type staticExporter struct {
	payload []byte
	err     error
}

func (e *staticExporter) ExportAsText() ([]byte, error) {
	return e.payload, e.err
}

func TestSnapshotWritesExportFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "backups")
	payload := []byte(`{"monday": []}`)
	s := NewScheduler(zap.NewNop().Sugar(), &staticExporter{payload: payload}, dir)

	now := time.Date(2024, 1, 15, 3, 0, 0, 0, time.UTC)
	if err := s.Snapshot(now); err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dir, "my-calendar-schedule-2024-01-15.txt"))
	if err != nil {
		t.Fatalf("read backup file: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("backup payload = %q, want %q", got, payload)
	}
}

func TestSnapshotOverwritesSameDay(t *testing.T) {
	dir := t.TempDir()
	exporter := &staticExporter{payload: []byte("first")}
	s := NewScheduler(zap.NewNop().Sugar(), exporter, dir)

	now := time.Date(2024, 1, 15, 3, 0, 0, 0, time.UTC)
	if err := s.Snapshot(now); err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}

	exporter.payload = []byte("second")
	if err := s.Snapshot(now.Add(time.Hour)); err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read backup dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected a single file for the day, got %d", len(entries))
	}

	got, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatalf("read backup file: %v", err)
	}
	if string(got) != "second" {
		t.Fatalf("backup payload = %q, want %q", got, "second")
	}
}

func TestSnapshotExportFailure(t *testing.T) {
	exportErr := errors.New("boom")
	s := NewScheduler(zap.NewNop().Sugar(), &staticExporter{err: exportErr}, t.TempDir())

	err := s.Snapshot(time.Now())
	if !errors.Is(err, exportErr) {
		t.Fatalf("Snapshot() error = %v, want wrapped %v", err, exportErr)
	}
}

func TestStartRejectsBadSpec(t *testing.T) {
	s := NewScheduler(zap.NewNop().Sugar(), &staticExporter{}, t.TempDir())

	if err := s.Start("not a cron spec"); err == nil {
		t.Fatal("expected error for invalid cron spec")
	}
}

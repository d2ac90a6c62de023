package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/SergeyKozhin/weekly-scheduler-backend/internal/model"
)

func TestRenderItems(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	event, err := s.AddEvent(ctx, model.Tuesday, model.EventCreate{
		Title: "Standup",
		Start: "09:00",
		End:   "09:30",
		Color: "#3498db",
	})
	if err != nil {
		t.Fatalf("AddEvent() error = %v", err)
	}

	items := s.RenderItems()
	if len(items) != 1 {
		t.Fatalf("expected 1 render item, got %d", len(items))
	}

	item := items[0]
	if item.Title != "Standup" || item.StartTime != "09:00" || item.EndTime != "09:30" {
		t.Fatalf("unexpected item: %+v", item)
	}
	if len(item.DaysOfWeek) != 1 || item.DaysOfWeek[0] != 2 {
		t.Fatalf("expected tuesday code 2, got %v", item.DaysOfWeek)
	}
	if item.BackgroundColor != "#3498db" || item.BorderColor != "#3498db" {
		t.Fatalf("unexpected colors: %+v", item)
	}
	if item.ExtendedProps.EventID != event.ID || item.ExtendedProps.Day != model.Tuesday {
		t.Fatalf("back-reference broken: %+v", item.ExtendedProps)
	}
	if item.ExtendedProps.OriginalStart != "09:00" || item.ExtendedProps.OriginalEnd != "09:30" {
		t.Fatalf("back-reference times broken: %+v", item.ExtendedProps)
	}
}

func TestRenderItemsResolveBackToStore(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	// Two identical events used to be indistinguishable via content match;
	// the id back-reference keeps them separate.
	first, err := s.AddEvent(ctx, model.Monday, model.EventCreate{Title: "Twin", Start: "09:00", End: "10:00"})
	if err != nil {
		t.Fatalf("AddEvent() error = %v", err)
	}
	if _, err := s.AddEvent(ctx, model.Monday, model.EventCreate{Title: "Twin", Start: "09:00", End: "10:00"}); err != nil {
		t.Fatalf("AddEvent() error = %v", err)
	}

	items := s.RenderItems()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ExtendedProps.EventID == items[1].ExtendedProps.EventID {
		t.Fatal("duplicate events share an id")
	}

	if err := s.DeleteEvent(ctx, model.Monday, items[1].ExtendedProps.EventID); err != nil {
		t.Fatalf("DeleteEvent() error = %v", err)
	}

	events, err := s.EventsOn(model.Monday)
	if err != nil {
		t.Fatalf("EventsOn() error = %v", err)
	}
	if len(events) != 1 || events[0].ID != first.ID {
		t.Fatal("wrong twin deleted")
	}
}

func TestCurrentEvent(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	if _, err := s.AddEvent(ctx, model.Monday, model.EventCreate{Title: "Standup", Start: "09:00", End: "09:30"}); err != nil {
		t.Fatalf("AddEvent() error = %v", err)
	}

	// 2024-01-01 is a Monday.
	during := time.Date(2024, 1, 1, 9, 15, 0, 0, time.Local)
	event, ok := s.CurrentEvent(during)
	if !ok {
		t.Fatal("expected an event in progress")
	}
	if event.Title != "Standup" {
		t.Fatalf("unexpected event: %+v", event)
	}

	atStart, ok := s.CurrentEvent(time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local))
	if !ok || atStart.Title != "Standup" {
		t.Fatal("start minute must count as in progress")
	}

	if _, ok := s.CurrentEvent(time.Date(2024, 1, 1, 9, 30, 0, 0, time.Local)); ok {
		t.Fatal("end minute must not count as in progress")
	}
	if _, ok := s.CurrentEvent(time.Date(2024, 1, 2, 9, 15, 0, 0, time.Local)); ok {
		t.Fatal("other days must not match")
	}
}

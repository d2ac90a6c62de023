package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	schedule_service "github.com/SergeyKozhin/weekly-scheduler-backend/internal/business/schedule"
	"github.com/SergeyKozhin/weekly-scheduler-backend/internal/model"
	"github.com/SergeyKozhin/weekly-scheduler-backend/internal/notifier"
	"github.com/SergeyKozhin/weekly-scheduler-backend/internal/storage/memory"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := zap.NewNop().Sugar()
	schedules := schedule_service.NewService(logger, memory.NewScheduleRepository())
	sound := notifier.NewRepeater(logger, notifier.NoopPlayer{}, false)
	matcher := notifier.NewMatcher(logger, schedules, sound, true)

	a, err := NewApi(logger, schedules, matcher, sound)
	if err != nil {
		t.Fatalf("NewApi() error = %v", err)
	}

	ts := httptest.NewServer(a)
	t.Cleanup(ts.Close)
	return ts
}

func postEvent(t *testing.T, ts *httptest.Server, day, body string) *http.Response {
	t.Helper()

	res, err := http.Post(ts.URL+"/schedule/"+day, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST event: %v", err)
	}
	return res
}

func TestHealthcheck(t *testing.T) {
	ts := newTestServer(t)

	res, err := http.Get(ts.URL + "/healthcheck")
	if err != nil {
		t.Fatalf("GET /healthcheck: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("health status %d", res.StatusCode)
	}
}

func TestAddAndListEvents(t *testing.T) {
	ts := newTestServer(t)

	res := postEvent(t, ts, "monday", `{"title":"Standup","start":"09:00","end":"09:30","color":"#4a4a8f"}`)
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 got %d", res.StatusCode)
	}

	var created model.Event
	if err := json.NewDecoder(res.Body).Decode(&created); err != nil {
		t.Fatalf("decode created event: %v", err)
	}
	if created.ID == "" {
		t.Fatal("created event has no id")
	}

	res, err := http.Get(ts.URL + "/schedule/monday")
	if err != nil {
		t.Fatalf("GET day: %v", err)
	}
	var events []*model.Event
	if err := json.NewDecoder(res.Body).Decode(&events); err != nil {
		t.Fatalf("decode events: %v", err)
	}
	if len(events) != 1 || events[0].Title != "Standup" {
		t.Fatalf("unexpected events: %+v", events)
	}
}

func TestAddEventValidationResponse(t *testing.T) {
	ts := newTestServer(t)

	res := postEvent(t, ts, "monday", `{"title":"  ","start":"09:00","end":"09:30"}`)
	if res.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d", res.StatusCode)
	}

	var body struct {
		Error map[string]string `json:"error"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if _, ok := body.Error["title"]; !ok {
		t.Fatalf("expected title error, got %v", body.Error)
	}
}

func TestUnknownDayIs404(t *testing.T) {
	ts := newTestServer(t)

	res := postEvent(t, ts, "someday", `{"title":"X","start":"09:00","end":"10:00"}`)
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", res.StatusCode)
	}
}

func TestUpdateAndDeleteEvent(t *testing.T) {
	ts := newTestServer(t)

	res := postEvent(t, ts, "tuesday", `{"title":"Gym","start":"18:00","end":"19:00"}`)
	var created model.Event
	if err := json.NewDecoder(res.Body).Decode(&created); err != nil {
		t.Fatalf("decode created event: %v", err)
	}

	req, _ := http.NewRequest(http.MethodPatch, ts.URL+"/schedule/tuesday/"+created.ID, bytes.NewBufferString(`{"title":"Swim"}`))
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("PATCH event: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}

	var updated model.Event
	if err := json.NewDecoder(res.Body).Decode(&updated); err != nil {
		t.Fatalf("decode updated event: %v", err)
	}
	if updated.Title != "Swim" || updated.Start != "18:00" {
		t.Fatalf("unexpected update: %+v", updated)
	}

	req, _ = http.NewRequest(http.MethodDelete, ts.URL+"/schedule/tuesday/"+created.ID, nil)
	res, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE event: %v", err)
	}
	if res.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204 got %d", res.StatusCode)
	}

	req, _ = http.NewRequest(http.MethodDelete, ts.URL+"/schedule/tuesday/"+created.ID, nil)
	res, _ = http.DefaultClient.Do(req)
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for repeated delete, got %d", res.StatusCode)
	}
}

func TestUpdateEventRejectsOffPaletteColor(t *testing.T) {
	ts := newTestServer(t)

	res := postEvent(t, ts, "monday", `{"title":"Standup","start":"09:00","end":"09:30"}`)
	var created model.Event
	if err := json.NewDecoder(res.Body).Decode(&created); err != nil {
		t.Fatalf("decode created event: %v", err)
	}

	req, _ := http.NewRequest(http.MethodPatch, ts.URL+"/schedule/monday/"+created.ID, bytes.NewBufferString(`{"color":"#000000"}`))
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("PATCH event: %v", err)
	}
	if res.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d", res.StatusCode)
	}

	var body struct {
		Error map[string]string `json:"error"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if _, ok := body.Error["color"]; !ok {
		t.Fatalf("expected color error, got %v", body.Error)
	}

	res, _ = http.Get(ts.URL + "/schedule/monday")
	var events []*model.Event
	if err := json.NewDecoder(res.Body).Decode(&events); err != nil {
		t.Fatalf("decode events: %v", err)
	}
	if events[0].Color != model.DefaultColor {
		t.Fatalf("rejected patch must not change the color: %+v", events[0])
	}
}

func TestClearRequiresConfirmation(t *testing.T) {
	ts := newTestServer(t)

	postEvent(t, ts, "friday", `{"title":"Party","start":"20:00","end":"23:00"}`)

	req, _ := http.NewRequest(http.MethodDelete, ts.URL+"/schedule", nil)
	res, _ := http.DefaultClient.Do(req)
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 without confirm, got %d", res.StatusCode)
	}

	req, _ = http.NewRequest(http.MethodDelete, ts.URL+"/schedule?confirm=true", nil)
	res, _ = http.DefaultClient.Do(req)
	if res.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204 got %d", res.StatusCode)
	}

	res, _ = http.Get(ts.URL + "/schedule/friday")
	var events []*model.Event
	if err := json.NewDecoder(res.Body).Decode(&events); err != nil {
		t.Fatalf("decode events: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected cleared day, got %+v", events)
	}
}

func TestExportDownload(t *testing.T) {
	ts := newTestServer(t)

	postEvent(t, ts, "monday", `{"title":"Standup","start":"09:00","end":"09:30"}`)

	res, err := http.Get(ts.URL + "/schedule/export")
	if err != nil {
		t.Fatalf("GET export: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}

	disposition := res.Header.Get("Content-Disposition")
	if !strings.Contains(disposition, "my-calendar-schedule-") || !strings.Contains(disposition, ".txt") {
		t.Fatalf("unexpected disposition: %q", disposition)
	}
}

func TestExportICSFormat(t *testing.T) {
	ts := newTestServer(t)

	postEvent(t, ts, "monday", `{"title":"Standup","start":"09:00","end":"09:30"}`)

	res, err := http.Get(ts.URL + "/schedule/export?format=ics")
	if err != nil {
		t.Fatalf("GET export ics: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}
	if ct := res.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/calendar") {
		t.Fatalf("unexpected content type: %q", ct)
	}

	res, _ = http.Get(ts.URL + "/schedule/export?format=xml")
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown format, got %d", res.StatusCode)
	}
}

func TestImportReplacesSchedule(t *testing.T) {
	ts := newTestServer(t)

	postEvent(t, ts, "monday", `{"title":"Old","start":"08:00","end":"09:00"}`)

	payload := `{"sunday": [{"title": "New", "start": "10:00", "end": "11:00", "color": "#2ecc71"}]}`
	res, err := http.Post(ts.URL+"/schedule/import", "text/plain", strings.NewReader(payload))
	if err != nil {
		t.Fatalf("POST import: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}

	res, _ = http.Get(ts.URL + "/schedule/monday")
	var events []*model.Event
	if err := json.NewDecoder(res.Body).Decode(&events); err != nil {
		t.Fatalf("decode events: %v", err)
	}
	if len(events) != 0 {
		t.Fatal("import did not replace the whole schedule")
	}
}

func TestImportMalformedIs400(t *testing.T) {
	ts := newTestServer(t)

	res, err := http.Post(ts.URL+"/schedule/import", "text/plain", strings.NewReader("{broken"))
	if err != nil {
		t.Fatalf("POST import: %v", err)
	}
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", res.StatusCode)
	}
}

func TestRenderItemsEndpoint(t *testing.T) {
	ts := newTestServer(t)

	postEvent(t, ts, "wednesday", `{"title":"Yoga","start":"18:00","end":"19:00"}`)

	res, err := http.Get(ts.URL + "/schedule/render")
	if err != nil {
		t.Fatalf("GET render: %v", err)
	}

	var items []struct {
		Title      string `json:"title"`
		DaysOfWeek []int  `json:"daysOfWeek"`
	}
	if err := json.NewDecoder(res.Body).Decode(&items); err != nil {
		t.Fatalf("decode items: %v", err)
	}
	if len(items) != 1 || items[0].Title != "Yoga" {
		t.Fatalf("unexpected items: %+v", items)
	}
	if len(items[0].DaysOfWeek) != 1 || items[0].DaysOfWeek[0] != 3 {
		t.Fatalf("unexpected day code: %v", items[0].DaysOfWeek)
	}
}

func TestOccurrencesQueryValidation(t *testing.T) {
	ts := newTestServer(t)

	res, _ := http.Get(ts.URL + "/schedule/occurrences")
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 without range, got %d", res.StatusCode)
	}

	res, _ = http.Get(ts.URL + "/schedule/occurrences?from=2024-01-01T00:00:00Z&to=2024-01-07T23:59:59Z")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}
}

func TestAlertLifecycle(t *testing.T) {
	ts := newTestServer(t)

	res, _ := http.Get(ts.URL + "/alert")
	var body struct {
		Clock string              `json:"clock"`
		Alert notifier.AlertState `json:"alert"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode alert: %v", err)
	}
	if body.Alert.Open {
		t.Fatal("expected closed alert initially")
	}
	if _, err := time.Parse("15:04:05", body.Clock); err != nil {
		t.Fatalf("clock %q not in HH:MM:SS form: %v", body.Clock, err)
	}

	req, _ := http.NewRequest(http.MethodDelete, ts.URL+"/alert", nil)
	res, _ = http.DefaultClient.Do(req)
	if res.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204 got %d", res.StatusCode)
	}
}

func TestSettings(t *testing.T) {
	ts := newTestServer(t)

	req, _ := http.NewRequest(http.MethodPut, ts.URL+"/settings", bytes.NewBufferString(`{"sound_enabled":true,"early_notification":false}`))
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("PUT settings: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}

	var settings struct {
		SoundEnabled      bool `json:"sound_enabled"`
		EarlyNotification bool `json:"early_notification"`
	}
	if err := json.NewDecoder(res.Body).Decode(&settings); err != nil {
		t.Fatalf("decode settings: %v", err)
	}
	if !settings.SoundEnabled || settings.EarlyNotification {
		t.Fatalf("unexpected settings: %+v", settings)
	}
}

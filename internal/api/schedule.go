package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/SergeyKozhin/weekly-scheduler-backend/internal/business/schedule"
	"github.com/SergeyKozhin/weekly-scheduler-backend/internal/model"
)

const dateTimeFormat = time.RFC3339

func (a *Api) getScheduleHandler(w http.ResponseWriter, r *http.Request) {
	if err := a.writeJSON(w, http.StatusOK, a.schedules.Snapshot(), nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) clearScheduleHandler(w http.ResponseWriter, r *http.Request) {
	// Destructive and irreversible; the client confirms on behalf of the user.
	if r.URL.Query().Get("confirm") != "true" {
		a.badRequestResponse(w, r, errors.New("clearing the schedule requires confirm=true"))
		return
	}

	a.schedules.ClearAll(r.Context())

	w.WriteHeader(http.StatusNoContent)
}

func (a *Api) renderItemsHandler(w http.ResponseWriter, r *http.Request) {
	items := a.schedules.RenderItems()
	if items == nil {
		items = []*schedule.RenderItem{}
	}

	if err := a.writeJSON(w, http.StatusOK, items, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) occurrencesHandler(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseOccurrencesQuery(r)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	occurrences, err := a.schedules.Occurrences(from, to)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("expand occurrences: %w", err))
		return
	}
	if occurrences == nil {
		occurrences = []*schedule.Occurrence{}
	}

	if err := a.writeJSON(w, http.StatusOK, occurrences, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func parseOccurrencesQuery(r *http.Request) (from, to time.Time, err error) {
	v := r.URL.Query().Get("from")
	if v == "" {
		return from, to, fmt.Errorf("from must be provided")
	}
	from, err = time.Parse(dateTimeFormat, v)
	if err != nil {
		return from, to, fmt.Errorf("invalid time format: %w", err)
	}

	v = r.URL.Query().Get("to")
	if v == "" {
		return from, to, fmt.Errorf("to must be provided")
	}
	to, err = time.Parse(dateTimeFormat, v)
	if err != nil {
		return from, to, fmt.Errorf("invalid time format: %w", err)
	}

	return from, to, nil
}

func (a *Api) currentEventHandler(w http.ResponseWriter, r *http.Request) {
	event, ok := a.schedules.CurrentEvent(time.Now())
	if !ok {
		a.notFoundResponse(w, r)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, event, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) exportScheduleHandler(w http.ResponseWriter, r *http.Request) {
	now := time.Now()

	var payload []byte
	var contentType, filename string
	var err error

	switch format := r.URL.Query().Get("format"); format {
	case "", "text":
		payload, err = a.schedules.ExportAsText()
		contentType = "text/plain; charset=utf-8"
		filename = schedule.ExportFilename(now)
	case "ics":
		payload, err = a.schedules.ExportICS(now)
		contentType = "text/calendar; charset=utf-8"
		filename = "my-calendar-schedule.ics"
	default:
		a.badRequestResponse(w, r, fmt.Errorf("unsupported export format %q", format))
		return
	}

	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("export schedule: %w", err))
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

func (a *Api) importScheduleHandler(w http.ResponseWriter, r *http.Request) {
	maxBytes := 1_048_576
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, int64(maxBytes)))
	if err != nil {
		a.badRequestResponse(w, r, fmt.Errorf("read payload: %w", err))
		return
	}

	if err := a.schedules.ImportFromText(r.Context(), payload); err != nil {
		importErr := &model.ImportError{}
		switch {
		case errors.As(err, &importErr):
			a.badRequestResponse(w, r, importErr)
		default:
			a.serverErrorResponse(w, r, fmt.Errorf("import schedule: %w", err))
		}
		return
	}

	if err := a.writeJSON(w, http.StatusOK, a.schedules.Snapshot(), nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

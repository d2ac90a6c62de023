package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/SergeyKozhin/weekly-scheduler-backend/internal/model"
	"github.com/SergeyKozhin/weekly-scheduler-backend/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

func (a *Api) listDayEventsHandler(w http.ResponseWriter, r *http.Request) {
	day, ok := r.Context().Value(contextKeyDay).(model.Weekday)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveDay)
		return
	}

	events, err := a.schedules.EventsOn(day)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNoRecord):
			a.notFoundResponse(w, r)
		default:
			a.serverErrorResponse(w, r, fmt.Errorf("list events: %w", err))
		}
		return
	}

	if err := a.writeJSON(w, http.StatusOK, events, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) addEventHandler(w http.ResponseWriter, r *http.Request) {
	day, ok := r.Context().Value(contextKeyDay).(model.Weekday)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveDay)
		return
	}

	req := &struct {
		Title string `json:"title"`
		Start string `json:"start"`
		End   string `json:"end"`
		Color string `json:"color"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	event, err := a.schedules.AddEvent(r.Context(), day, model.EventCreate{
		Title: req.Title,
		Start: req.Start,
		End:   req.End,
		Color: req.Color,
	})
	if err != nil {
		validationErr := &model.ValidationError{}
		switch {
		case errors.As(err, &validationErr):
			v := validator.New()
			v.AddError(validationErr.Field, validationErr.Message)
			a.failedValidationResponse(w, r, v.Errors)
		case errors.Is(err, model.ErrNoRecord):
			a.notFoundResponse(w, r)
		default:
			a.serverErrorResponse(w, r, fmt.Errorf("add event: %w", err))
		}
		return
	}

	if err := a.writeJSON(w, http.StatusCreated, event, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) updateEventHandler(w http.ResponseWriter, r *http.Request) {
	day, ok := r.Context().Value(contextKeyDay).(model.Weekday)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveDay)
		return
	}

	req := &struct {
		Title *string `json:"title"`
		Color *string `json:"color"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	event, err := a.schedules.UpdateEvent(r.Context(), day, chi.URLParam(r, "eventID"), model.EventPatch{
		Title: req.Title,
		Color: req.Color,
	})
	if err != nil {
		validationErr := &model.ValidationError{}
		switch {
		case errors.As(err, &validationErr):
			v := validator.New()
			v.AddError(validationErr.Field, validationErr.Message)
			a.failedValidationResponse(w, r, v.Errors)
		case errors.Is(err, model.ErrNoRecord):
			a.notFoundResponse(w, r)
		default:
			a.serverErrorResponse(w, r, fmt.Errorf("update event: %w", err))
		}
		return
	}

	if err := a.writeJSON(w, http.StatusOK, event, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) deleteEventHandler(w http.ResponseWriter, r *http.Request) {
	day, ok := r.Context().Value(contextKeyDay).(model.Weekday)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveDay)
		return
	}

	if err := a.schedules.DeleteEvent(r.Context(), day, chi.URLParam(r, "eventID")); err != nil {
		switch {
		case errors.Is(err, model.ErrNoRecord):
			a.notFoundResponse(w, r)
		default:
			a.serverErrorResponse(w, r, fmt.Errorf("delete event: %w", err))
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

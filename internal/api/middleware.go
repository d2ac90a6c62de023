package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/SergeyKozhin/weekly-scheduler-backend/internal/model"
	"github.com/go-chi/chi/v5"
)

type contextKey string

const contextKeyDay = contextKey("day")

var errCantRetrieveDay = errors.New("can't retrieve day")

func (a *Api) dayCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		day, err := model.ParseWeekday(chi.URLParam(r, "day"))
		if err != nil {
			a.notFoundResponse(w, r)
			return
		}

		dayContext := context.WithValue(r.Context(), contextKeyDay, day)
		next.ServeHTTP(w, r.WithContext(dayContext))
	})
}

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/SergeyKozhin/weekly-scheduler-backend/internal/business/schedule"
	"github.com/SergeyKozhin/weekly-scheduler-backend/internal/model"
	"github.com/SergeyKozhin/weekly-scheduler-backend/internal/notifier"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Api struct {
	handler http.Handler
	logger  *zap.SugaredLogger

	schedules scheduleService
	alerts    alertService
	sound     soundControl
}

type scheduleService interface {
	Snapshot() model.Schedule
	EventsOn(day model.Weekday) ([]*model.Event, error)
	AddEvent(ctx context.Context, day model.Weekday, info model.EventCreate) (*model.Event, error)
	UpdateEvent(ctx context.Context, day model.Weekday, id string, patch model.EventPatch) (*model.Event, error)
	DeleteEvent(ctx context.Context, day model.Weekday, id string) error
	ClearAll(ctx context.Context)
	ExportAsText() ([]byte, error)
	ExportICS(now time.Time) ([]byte, error)
	ImportFromText(ctx context.Context, payload []byte) error
	RenderItems() []*schedule.RenderItem
	Occurrences(from, to time.Time) ([]*schedule.Occurrence, error)
	CurrentEvent(now time.Time) (*model.Event, bool)
}

type alertService interface {
	Alert() notifier.AlertState
	Clock() time.Time
	Dismiss()
	EarlyNotification() bool
	SetEarlyNotification(enabled bool)
}

type soundControl interface {
	Enabled() bool
	SetEnabled(enabled bool)
}

func NewApi(
	logger *zap.SugaredLogger,
	schedules scheduleService,
	alerts alertService,
	sound soundControl,
) (*Api, error) {
	a := &Api{
		logger:    logger,
		schedules: schedules,
		alerts:    alerts,
		sound:     sound,
	}
	a.setupHandler()

	return a, nil
}

func (a *Api) setupHandler() {
	middleware.DefaultLogger = func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			a.logger.Debugw(r.URL.RequestURI(),
				"addr", r.RemoteAddr,
				"protocol", r.Proto,
				"method", r.Method,
			)
			next.ServeHTTP(w, r)
		})
	}

	r := chi.NewMux()

	r.Use(middleware.Logger, middleware.Recoverer, middleware.StripSlashes)
	r.NotFound(a.notFoundResponse)
	r.MethodNotAllowed(a.methodNotAllowedResponse)

	r.Get("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/schedule", func(r chi.Router) {
		r.Get("/", a.getScheduleHandler)
		r.Delete("/", a.clearScheduleHandler)
		r.Get("/render", a.renderItemsHandler)
		r.Get("/occurrences", a.occurrencesHandler)
		r.Get("/current", a.currentEventHandler)
		r.Get("/export", a.exportScheduleHandler)
		r.Post("/import", a.importScheduleHandler)

		r.With(a.dayCtx).Route("/{day}", func(r chi.Router) {
			r.Get("/", a.listDayEventsHandler)
			r.Post("/", a.addEventHandler)
			r.Patch("/{eventID}", a.updateEventHandler)
			r.Delete("/{eventID}", a.deleteEventHandler)
		})
	})

	r.Route("/alert", func(r chi.Router) {
		r.Get("/", a.getAlertHandler)
		r.Delete("/", a.dismissAlertHandler)
	})

	r.Route("/settings", func(r chi.Router) {
		r.Get("/", a.getSettingsHandler)
		r.Put("/", a.updateSettingsHandler)
	})

	a.handler = r
}

func (a *Api) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}

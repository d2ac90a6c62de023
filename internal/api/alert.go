package api

import (
	"net/http"

	"github.com/SergeyKozhin/weekly-scheduler-backend/internal/notifier"
)

type alertResp struct {
	// Clock is the matcher's view of the current time, for the widget's
	// on-screen clock.
	Clock string              `json:"clock"`
	Alert notifier.AlertState `json:"alert"`
}

func (a *Api) getAlertHandler(w http.ResponseWriter, r *http.Request) {
	resp := alertResp{
		Clock: a.alerts.Clock().Format("15:04:05"),
		Alert: a.alerts.Alert(),
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) dismissAlertHandler(w http.ResponseWriter, r *http.Request) {
	a.alerts.Dismiss()

	w.WriteHeader(http.StatusNoContent)
}

package api

import (
	"net/http"
)

type settingsResp struct {
	SoundEnabled      bool `json:"sound_enabled"`
	EarlyNotification bool `json:"early_notification"`
}

func (a *Api) getSettingsHandler(w http.ResponseWriter, r *http.Request) {
	resp := settingsResp{
		SoundEnabled:      a.sound.Enabled(),
		EarlyNotification: a.alerts.EarlyNotification(),
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) updateSettingsHandler(w http.ResponseWriter, r *http.Request) {
	req := &struct {
		SoundEnabled      *bool `json:"sound_enabled"`
		EarlyNotification *bool `json:"early_notification"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	if req.SoundEnabled != nil {
		a.sound.SetEnabled(*req.SoundEnabled)
	}
	if req.EarlyNotification != nil {
		a.alerts.SetEarlyNotification(*req.EarlyNotification)
	}

	resp := settingsResp{
		SoundEnabled:      a.sound.Enabled(),
		EarlyNotification: a.alerts.EarlyNotification(),
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

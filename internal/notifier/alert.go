package notifier

import (
	"github.com/SergeyKozhin/weekly-scheduler-backend/internal/model"
)

type AlertKind string

const (
	// AlertKindNow marks events starting this very minute.
	AlertKindNow AlertKind = "now"
	// AlertKindSoon marks events starting five minutes from now.
	AlertKindSoon AlertKind = "soon"
)

const (
	messageStartingNow  = "A new event is starting!"
	messageStartingSoon = "An event starts in 5 minutes!"
)

// AlertState is ephemeral and never persisted. It opens on a match and
// closes only on explicit dismissal; there is no automatic timeout.
type AlertState struct {
	Open    bool           `json:"open"`
	Kind    AlertKind      `json:"kind,omitempty"`
	Message string         `json:"message,omitempty"`
	Events  []*model.Event `json:"events,omitempty"`
}

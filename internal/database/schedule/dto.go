package schedule

import "time"

type scheduleDTO struct {
	Key       string
	Payload   []byte
	UpdatedAt time.Time
}

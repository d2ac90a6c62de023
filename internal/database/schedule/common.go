package schedule

import (
	"github.com/SergeyKozhin/weekly-scheduler-backend/internal/database"
)

// Repository keeps the schedule blob in a single row per storage key, as an
// alternative durable backend to redis.
type Repository struct {
	db database.PGX
}

func NewRepository(db database.PGX) *Repository {
	return &Repository{db: db}
}

var baseQuery = database.PSQL.
	Select("key",
		"payload",
		"updated_at",
	).
	From(database.SchedulesTable)

package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/SergeyKozhin/weekly-scheduler-backend/internal/config"
	"github.com/SergeyKozhin/weekly-scheduler-backend/internal/database"
)

func (r *Repository) Set(ctx context.Context, payload []byte) error {
	qb := database.PSQL.
		Insert(database.SchedulesTable).
		Columns(
			"key",
			"payload",
			"updated_at",
		).
		Values(
			config.ScheduleKey(),
			payload,
			time.Now(),
		).
		Suffix("on conflict (key) do update set payload = excluded.payload, updated_at = excluded.updated_at")

	if _, err := r.db.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}

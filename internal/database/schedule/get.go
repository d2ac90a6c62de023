package schedule

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/SergeyKozhin/weekly-scheduler-backend/internal/config"
	"github.com/SergeyKozhin/weekly-scheduler-backend/internal/model"
	"github.com/jackc/pgx/v4"
)

func (r *Repository) Get(ctx context.Context) ([]byte, error) {
	qb := baseQuery.
		Where(sq.Eq{"key": config.ScheduleKey()})

	dto := &scheduleDTO{}
	if err := r.db.Get(ctx, dto, qb); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return dto.Payload, nil
}

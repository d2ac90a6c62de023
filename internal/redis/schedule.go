package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/SergeyKozhin/weekly-scheduler-backend/internal/config"
	"github.com/SergeyKozhin/weekly-scheduler-backend/internal/model"
	"github.com/gomodule/redigo/redis"
	"go.uber.org/zap"
)

// ScheduleRepository mirrors the whole schedule blob under a single key,
// overwritten wholesale on every mutation.
type ScheduleRepository struct {
	pool   *redis.Pool
	logger *zap.SugaredLogger
}

func NewScheduleRepository(pool *redis.Pool, logger *zap.SugaredLogger) *ScheduleRepository {
	return &ScheduleRepository{
		pool:   pool,
		logger: logger,
	}
}

func (r *ScheduleRepository) Get(ctx context.Context) ([]byte, error) {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("get connection: %w", err)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			r.logger.Errorw("Failed closing redis connection", "err", err)
		}
	}()

	payload, err := redis.Bytes(conn.Do("GET", config.ScheduleKey()))
	if err != nil {
		if errors.Is(err, redis.ErrNil) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("GET %v: %w", config.ScheduleKey(), err)
	}

	return payload, nil
}

func (r *ScheduleRepository) Set(ctx context.Context, payload []byte) error {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			r.logger.Errorw("Failed closing redis connection", "err", err)
		}
	}()

	if _, err := conn.Do("SET", config.ScheduleKey(), payload); err != nil {
		return fmt.Errorf("SET %v: %w", config.ScheduleKey(), err)
	}

	return nil
}

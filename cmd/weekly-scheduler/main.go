package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/SergeyKozhin/weekly-scheduler-backend/internal/api"
	"github.com/SergeyKozhin/weekly-scheduler-backend/internal/backup"
	schedule_service "github.com/SergeyKozhin/weekly-scheduler-backend/internal/business/schedule"
	"github.com/SergeyKozhin/weekly-scheduler-backend/internal/config"
	"github.com/SergeyKozhin/weekly-scheduler-backend/internal/database"
	pg_schedule "github.com/SergeyKozhin/weekly-scheduler-backend/internal/database/schedule"
	"github.com/SergeyKozhin/weekly-scheduler-backend/internal/notifier"
	"github.com/SergeyKozhin/weekly-scheduler-backend/internal/redis"
	"github.com/SergeyKozhin/weekly-scheduler-backend/internal/storage/memory"
	"github.com/xlab/closer"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	ctx := context.Background()

	logger, err := initLogger()
	if err != nil {
		log.Fatalf("unable to initialize logger: %v", err)
	}

	repository, err := initRepository(ctx, logger)
	if err != nil {
		log.Fatalf("unable to initialize storage: %v", err)
	}

	scheduleService := schedule_service.NewService(logger, repository)
	if err := scheduleService.Load(ctx); err != nil {
		log.Fatalf("unable to load schedule: %v", err)
	}

	var player notifier.Player = notifier.NoopPlayer{}
	if config.SoundCommand() != "" {
		player = notifier.NewExecPlayer(logger, config.SoundCommand(), config.SoundPath())
	}

	sound := notifier.NewRepeater(logger, player, config.SoundEnabled())
	closer.Bind(sound.Stop)

	matcher := notifier.NewMatcher(logger, scheduleService, sound, config.EarlyNotification())
	go matcher.Start(ctx)

	if config.BackupEnabled() {
		backups := backup.NewScheduler(logger, scheduleService, config.BackupDir())
		if err := backups.Start(config.BackupCron()); err != nil {
			logger.Fatalw("error starting backup scheduler", "err", err)
		}
	}

	api, err := api.NewApi(logger, scheduleService, matcher, sound)
	if err != nil {
		logger.Fatalw("error initiating api", "err", err)
	}

	errLogger, err := zap.NewStdLogAt(logger.Desugar(), zap.ErrorLevel)
	if err != nil {
		logger.Fatalw("error initiating server logger", "err", err)
	}

	server := &http.Server{
		Addr:     ":" + config.Port(),
		Handler:  api,
		ErrorLog: errLogger,
	}

	logger.Infow("Started server", "port", config.Port())
	logger.Fatalw("server error", "err", server.ListenAndServe())
}

func initRepository(ctx context.Context, logger *zap.SugaredLogger) (schedule_service.ScheduleRepository, error) {
	switch config.Storage() {
	case "redis":
		pool := redis.NewRedisPool(logger)
		return redis.NewScheduleRepository(pool, logger), nil
	case "postgres":
		db, err := database.NewPGX(ctx)
		if err != nil {
			return nil, err
		}
		return pg_schedule.NewRepository(db), nil
	case "memory":
		logger.Warnw("using in-memory storage, schedule will not survive a restart")
		return memory.NewScheduleRepository(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", config.Storage())
	}
}

func initLogger() (*zap.SugaredLogger, error) {
	var logger *zap.Logger
	var err error

	if config.Production() {
		logger, err = zap.NewProduction()
	} else {
		conf := zap.NewDevelopmentConfig()
		conf.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		logger, err = conf.Build()
	}

	if err != nil {
		return nil, err
	}

	closer.Bind(func() {
		_ = logger.Sync()
	})

	return logger.Sugar(), nil
}

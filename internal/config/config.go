package config

import (
	"fmt"

	"github.com/caarlos0/env"
)

type config struct {
	Production        bool   `env:"PRODUCTION" envDefault:"false"`
	Port              string `env:"PORT" envDefault:"80"`
	Storage           string `env:"STORAGE" envDefault:"redis"`
	RedisUrl          string `env:"REDIS_URL" envDefault:"redis:6379"`
	PostgresUrl       string `env:"POSTGRES_URL" envDefault:""`
	ScheduleKey       string `env:"SCHEDULE_KEY" envDefault:"schedule"`
	SoundEnabled      bool   `env:"SOUND_ENABLED" envDefault:"true"`
	SoundCommand      string `env:"SOUND_COMMAND" envDefault:""`
	SoundPath         string `env:"SOUND_PATH" envDefault:"assets/notification.mp3"`
	EarlyNotification bool   `env:"EARLY_NOTIFICATION" envDefault:"true"`
	BackupEnabled     bool   `env:"BACKUP_ENABLED" envDefault:"false"`
	BackupDir         string `env:"BACKUP_DIR" envDefault:"backups"`
	BackupCron        string `env:"BACKUP_CRON" envDefault:"0 0 * * *"`
}

var conf config

func init() {
	if err := env.Parse(&conf); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
}

func Production() bool {
	return conf.Production
}

func Port() string {
	return conf.Port
}

func Storage() string {
	return conf.Storage
}

func RedisURL() string {
	return conf.RedisUrl
}

func PostgresURL() string {
	return conf.PostgresUrl
}

func ScheduleKey() string {
	return conf.ScheduleKey
}

func SoundEnabled() bool {
	return conf.SoundEnabled
}

func SoundCommand() string {
	return conf.SoundCommand
}

func SoundPath() string {
	return conf.SoundPath
}

func EarlyNotification() bool {
	return conf.EarlyNotification
}

func BackupEnabled() bool {
	return conf.BackupEnabled
}

func BackupDir() string {
	return conf.BackupDir
}

func BackupCron() string {
	return conf.BackupCron
}

package internal

import (
	"fmt"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel          string        `env:"LOG_LEVEL,required=true"`
	LexiconPath       string        `env:"LEXICON_PATH,required=true"`
	BadgerFilepath    string        `env:"BADGER_FILEPATH,required=true"`
	BufferSize        int           `env:"BUFFER_SIZE,required=true"`
	RateLimitWindow   time.Duration `env:"RATE_LIMIT_WINDOW,default=1.5s"`
	RateLimitCapacity int           `env:"RATE_LIMIT_CAPACITY,default=10000"`
	RetentionDays     int           `env:"RETENTION_DAYS,default=30"`
	RetentionInterval time.Duration `env:"RETENTION_INTERVAL,default=24h"`
	StatusWindowDays  int           `env:"STATUS_WINDOW_DAYS,default=7"`
	HealthInterval    time.Duration `env:"HEALTH_INTERVAL,default=30s"`
	RestartInterval   time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	CensorCharacter   string        `env:"CENSOR_CHARACTER,default=*"`
}

// Load reads an optional .env file then decodes the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, err
	}
	if _, err := CharacterRune(config.CensorCharacter); err != nil {
		return Config{}, err
	}
	if config.BufferSize <= 0 {
		return Config{}, fmt.Errorf("BUFFER_SIZE must be positive, got %d", config.BufferSize)
	}
	if config.RateLimitCapacity <= 0 {
		return Config{}, fmt.Errorf("RATE_LIMIT_CAPACITY must be positive, got %d", config.RateLimitCapacity)
	}
	return config, nil
}

func (c Config) RetentionPeriod() time.Duration {
	return time.Duration(c.RetentionDays) * 24 * time.Hour
}

func (c Config) StatusWindow() time.Duration {
	return time.Duration(c.StatusWindowDays) * 24 * time.Hour
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CENSOR_CHARACTER must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}

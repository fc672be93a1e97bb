package envs

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Envs struct {
	RedigoPort      string `env:"REDIGO_PORT" envDefault:"6379"`
	RedigoBind      string `env:"REDIGO_BIND" envDefault:"127.0.0.1"`
	Databases       int    `env:"REDIGO_DATABASES" envDefault:"16"`
	LogLevel        string `env:"REDIGO_LOG_LEVEL" envDefault:"info"`
	LogJson         bool   `env:"REDIGO_LOG_JSON" envDefault:"false"`
	JournalCapacity int    `env:"REDIGO_JOURNAL_CAPACITY" envDefault:"1024"`
}

// Loads a .env file if present. Reports false when none was found.
func LoadEnv(filenames ...string) bool {
	return godotenv.Load(filenames...) == nil
}

func Gets() (Envs, error) {
	var envs Envs

	if err := env.Parse(&envs); err != nil {
		return Envs{}, fmt.Errorf("error parsing env variables: %w", err)
	}

	if envs.Databases < 1 {
		return Envs{}, fmt.Errorf("REDIGO_DATABASES must be at least 1, got %d", envs.Databases)
	}
	if envs.JournalCapacity < 1 {
		return Envs{}, fmt.Errorf("REDIGO_JOURNAL_CAPACITY must be at least 1, got %d", envs.JournalCapacity)
	}

	return envs, nil
}

func (envs Envs) Address() string {
	return envs.RedigoBind + ":" + envs.RedigoPort
}

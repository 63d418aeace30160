package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds all runtime configuration, read from the process environment.
type Config struct {
	DatabaseURL  string        `env:"DATABASE_URL,required"`
	Port         string        `env:"PORT" envDefault:"8080"`
	JWTSecret    string        `env:"JWT_SECRET" envDefault:"dev-secret-change-me"`
	JWTExpiresIn time.Duration `env:"JWT_EXPIRES_IN" envDefault:"168h"`
	CORSOrigin   string        `env:"CORS_ORIGIN" envDefault:"http://localhost:3000"`
	UploadDir    string        `env:"UPLOAD_DIR" envDefault:"uploads"`
	GinMode      string        `env:"GIN_MODE" envDefault:"debug"`
	LogLevel     string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat    string        `env:"LOG_FORMAT" envDefault:"json"`
}

// Load reads configuration from the environment, loading a .env file first
// when one is present. A missing DATABASE_URL is a fatal startup error.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); !os.IsNotExist(err) {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	return cfg, nil
}

package config

import (
	"github.com/go-faster/errors"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver         string   `env:"DB_DRIVER" env-default:"mysql"`
	DBHost           string   `env:"DB_HOST" env-default:"localhost"`
	DBPort           string   `env:"DB_PORT"`
	DBUser           string   `env:"DB_USER" env-default:"greenxp"`
	DBPassword       string   `env:"DB_PASSWORD" env-default:""`
	DBName           string   `env:"DB_NAME" env-default:"greenxp"`
	DBMaxOpenConns   int      `env:"DB_MAX_OPEN_CONNS" env-default:"100"`
	DBMaxIdleConns   int      `env:"DB_MAX_IDLE_CONNS" env-default:"10"`
	Port             string   `env:"PORT" env-default:"3000"`
	GinMode          string   `env:"GIN_MODE" env-default:"debug"`
	AutoMigrate      bool     `env:"AUTO_MIGRATE" env-default:"true"`
	LogLevel         string   `env:"LOG_LEVEL" env-default:"info"`
	CORSAllowOrigins []string `env:"CORS_ALLOW_ORIGINS" env-separator:"," env-default:"http://localhost:3000"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	// A missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, errors.Wrap(err, "read env")
	}

	switch cfg.DBDriver {
	case DriverMySQL, DriverPostgres:
	default:
		return nil, errors.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	if cfg.DBPort == "" {
		cfg.DBPort = defaultPorts[cfg.DBDriver]
	}
	if cfg.DBMaxOpenConns <= 0 {
		return nil, errors.New("DB_MAX_OPEN_CONNS must be positive")
	}

	return &cfg, nil
}

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

var defaultPorts = map[string]string{
	DriverMySQL:    "3306",
	DriverPostgres: "5432",
}

// IsRelease reports whether gin runs in release mode.
func (c *Config) IsRelease() bool {
	return c.GinMode == "release"
}

package app

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the application. Every field has a
// default, so loading never fails on absent values.
type Config struct {
	AppEnv            string        `envconfig:"APP_ENV" default:"development"`
	AppAddr           string        `envconfig:"APP_ADDR" default:":8000"`
	AppReadTimeout    time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	AppWriteTimeout   time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"15s"`
	AppRequestTimeout time.Duration `envconfig:"APP_REQUEST_TIMEOUT" default:"30s"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`

	MetricsEnabled bool `envconfig:"METRICS_ENABLED" default:"true"`

	PostgresDriver   string `envconfig:"POSTGRES_DRIVER" default:"postgres"`
	PostgresHost     string `envconfig:"POSTGRES_HOST" default:"localhost"`
	PostgresPort     int    `envconfig:"POSTGRES_PORT" default:"5432"`
	PostgresUser     string `envconfig:"POSTGRES_USER" default:"postgres"`
	PostgresPassword string `envconfig:"POSTGRES_PASSWORD" default:"postgres"`
	PostgresDB       string `envconfig:"POSTGRES_DB" default:"quoin"`

	AllowedHosts []string `envconfig:"ALLOWED_HOSTS" default:"localhost,127.0.0.1,test"`
	CORSOrigins  []string `envconfig:"CORS_ORIGINS" default:"http://localhost:3000,http://localhost:8000"`
}

// envFile maps the environment tag to the dotenv file loaded before the
// process environment is read. Process variables always win: godotenv never
// overwrites a variable that is already set.
func envFile(env string) string {
	switch env {
	case "test":
		return ".env.test"
	case "production":
		return ".env.production"
	default:
		return ".env"
	}
}

// LoadConfig reads configuration from the QUOIN-prefixed environment,
// layered over the env file selected by APP_ENV.
func LoadConfig() (*Config, error) {
	env := os.Getenv("QUOIN_APP_ENV")
	if env == "" {
		env = os.Getenv("APP_ENV")
	}
	if env == "" {
		env = "development"
	}
	// A missing env file is not an error.
	_ = godotenv.Load(envFile(env))

	var cfg Config
	if err := envconfig.Process("quoin", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DatabaseURL composes the connection string from the five connection
// fields. It is computed fresh on every call so field mutations are always
// reflected.
func (c *Config) DatabaseURL() string {
	u := url.URL{
		Scheme: c.PostgresDriver,
		User:   url.UserPassword(c.PostgresUser, c.PostgresPassword),
		Host:   fmt.Sprintf("%s:%d", c.PostgresHost, c.PostgresPort),
		Path:   "/" + c.PostgresDB,
	}
	return u.String()
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}

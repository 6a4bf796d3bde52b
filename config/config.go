package config

import (
	"log"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"LOG_FILE" envDefault:""`
	HTTP     HTTP
	Postgres Postgres
	Redis    Redis
	API      API
	Cache    Cache
	Jobs     Jobs
}

type HTTP struct {
	Port            int           `env:"PORT" envDefault:"4000"`
	StaticDir       string        `env:"STATIC_DIR" envDefault:"public"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"0s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type Postgres struct {
	Host            string `env:"PGHOST" envDefault:"localhost"`
	Port            int    `env:"PGPORT" envDefault:"5432"`
	DbName          string `env:"PGDATABASE" envDefault:"postgres"`
	Password        string `env:"PGPASSWORD" envDefault:""`
	User            string `env:"PGUSER" envDefault:"postgres"`
	MaxOpenConns    int    `env:"PG_MAX_OPEN_CONNS" envDefault:"10"`
	ConnMaxLifetime int    `env:"PG_CONN_MAX_LIFETIME" envDefault:"300"`
	MaxIdleConns    int    `env:"PG_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxIdleTime int    `env:"PG_CONN_MAX_IDLE_TIME" envDefault:"60"`
	MigrationDir    string `env:"PG_MIGRATION_DIR" envDefault:""`
}

// Redis is optional: an empty host disables the quote cache.
type Redis struct {
	Host     string `env:"REDIS_HOST" envDefault:""`
	Port     int    `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD" envDefault:""`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type API struct {
	Debug            bool          `env:"API_DEBUG" envDefault:"false"`
	Timeout          time.Duration `env:"API_TIMEOUT" envDefault:"0s"`
	QuoteFanoutLimit int           `env:"QUOTE_FANOUT_LIMIT" envDefault:"0"`
	FinnhubApi       FinnhubApi
}

type FinnhubApi struct {
	Url    string `env:"FINNHUB_API_URL" envDefault:"https://finnhub.io/api/v1"`
	ApiKey string `env:"FINNHUB_API_KEY,notEmpty"`
}

type Cache struct {
	QuoteExpiration time.Duration `env:"CACHE_QUOTE_EXPIRATION" envDefault:"30s"`
}

type Jobs struct {
	RefreshQuoteCacheInterval time.Duration `env:"REFRESH_QUOTE_CACHE_JOB_INTERVAL" envDefault:"0s"`
}

func (r Redis) Enabled() bool {
	return r.Host != ""
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("parse config error: %s", err)
	}

	return cfg
}

// Load reads .env (if any) and the process environment.
// Fields without envDefault are required, so a missing FINNHUB_API_KEY fails here.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{}

	opts := env.Options{RequiredIfNoDef: true}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, err
	}

	return cfg, nil
}

type plainConfig Config

// LogValue hides secrets when the config is logged at startup.
func (c Config) LogValue() slog.Value {
	c.Postgres.Password = mask(c.Postgres.Password)
	c.Redis.Password = mask(c.Redis.Password)
	c.API.FinnhubApi.ApiKey = mask(c.API.FinnhubApi.ApiKey)
	return slog.AnyValue(plainConfig(c))
}

func mask(s string) string {
	if s == "" {
		return ""
	}
	return "***"
}

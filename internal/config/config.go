package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
}

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
	StorageBolt   = "bolt"

	CatalogMock     = "mock"
	CatalogPostgres = "postgres"
)

type Storage struct {
	Driver   string        `yaml:"STORAGE_DRIVER" env:"STORAGE_DRIVER" env-default:"memory"`
	BoltPath string        `yaml:"BOLT_PATH" env:"BOLT_PATH" env-default:"storefront.db"`
	TTL      time.Duration `yaml:"STORAGE_TTL" env:"STORAGE_TTL" env-default:"720h"`
}

type Database struct {
	Host            string        `yaml:"PG_HOST" env:"PG_HOST" env-default:"localhost"`
	Port            string        `yaml:"PG_PORT" env:"PG_PORT" env-default:"5432"`
	User            string        `yaml:"PG_USER" env:"PG_USER"`
	Password        string        `yaml:"PG_PASSWORD" env:"PG_PASSWORD"`
	Name            string        `yaml:"PG_DBNAME" env:"PG_DBNAME"`
	SSLMode         string        `yaml:"PG_SSLMODE" env:"PG_SSLMODE" env-default:"require"`
	MaxOpenConns    int           `yaml:"MAX_OPEN_CONNS" env:"MAX_OPEN_CONNS" env-default:"10"`
	MaxIdleConns    int           `yaml:"MAX_IDLE_CONNS" env:"MAX_IDLE_CONNS" env-default:"5"`
	ConnMaxLifetime time.Duration `yaml:"CONN_MAX_LIFETIME" env:"CONN_MAX_LIFETIME" env-default:"30m"`
	ConnMaxIdleTime time.Duration `yaml:"CONN_MAX_IDLE_TIME" env:"CONN_MAX_IDLE_TIME" env-default:"5m"`
}

type RedisConnect struct {
	Host     string `yaml:"REDIS_HOST" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"REDIS_PORT" env:"REDIS_PORT" env-default:"6379"`
	Username string `yaml:"REDIS_USER" env:"REDIS_USER"`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

type Catalog struct {
	Source         string        `yaml:"CATALOG_SOURCE" env:"CATALOG_SOURCE" env-default:"mock"`
	SimulatedDelay time.Duration `yaml:"SIMULATED_DELAY" env:"CATALOG_SIMULATED_DELAY" env-default:"800ms"`
	LoadTimeout    time.Duration `yaml:"LOAD_TIMEOUT" env:"CATALOG_LOAD_TIMEOUT" env-default:"10s"`
}

type Security struct {
	SessionKey string        `yaml:"SESSION_KEY" env:"SESSION_KEY" env-required:"true"`
	SessionTTL time.Duration `yaml:"SESSION_TTL" env:"SESSION_TTL" env-default:"720h"`
	// in-memory sessions idle this long are dropped; their state stays in storage
	SessionIdle time.Duration `yaml:"SESSION_IDLE" env:"SESSION_IDLE" env-default:"30m"`
}

type Auth struct {
	DemoName     string `yaml:"DEMO_NAME" env:"AUTH_DEMO_NAME" env-default:"Demo User"`
	DemoEmail    string `yaml:"DEMO_EMAIL" env:"AUTH_DEMO_EMAIL" env-default:"demo@example.com"`
	DemoPassword string `yaml:"DEMO_PASSWORD" env:"AUTH_DEMO_PASSWORD" env-default:"password"`
}

type RateConfig struct {
	Enabled     bool          `yaml:"ENABLED" env:"RATE_LIMIT_ENABLED" env-default:"false"`
	MaxAttempts int64         `yaml:"MAX_ATTEMPTS" env:"MAX_ATTEMPTS" env-default:"5"`
	WindowSize  time.Duration `yaml:"WINDOW_SIZE" env:"WINDOW_SIZE" env-default:"15s"`
}

type Tracing struct {
	Enabled          bool    `yaml:"ENABLED" env:"OTEL_ENABLED" env-default:"false"`
	ServiceName      string  `yaml:"SERVICE_NAME" env:"OTEL_SERVICE_NAME" env-default:"storefront"`
	ExporterEndpoint string  `yaml:"EXPORTER_ENDPOINT" env:"OTEL_EXPORTER_ENDPOINT" env-default:"localhost:4318"`
	SamplerRatio     float64 `yaml:"SAMPLER_RATIO" env:"OTEL_SAMPLER_RATIO" env-default:"1.0"`
}

type Config struct {
	Env          string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer   `yaml:"http_server"`
	Storage      Storage      `yaml:"storage"`
	Database     Database     `yaml:"database"`
	RedisConnect RedisConnect `yaml:"redis"`
	Catalog      Catalog      `yaml:"catalog"`
	Security     Security     `yaml:"security"`
	Auth         Auth         `yaml:"auth"`
	RateConfig   RateConfig   `yaml:"rateConfig"`
	Tracing      Tracing      `yaml:"otel"`
}

func MustLoad() *Config {

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "gets the config flag value")

		flag.Parse()

		configPath = *flags

		if configPath == "" {
			log.Fatal("Config path is not set")
		}

	}

	cfg, err := LoadConfigFromPath(configPath)
	if err != nil {
		log.Fatalf("can not read config file: %s", err.Error())
	}

	return cfg

}

func LoadConfigFromPath(configPath string) (*Config, error) {

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return &cfg, nil
}

func (d *Database) GetDSN() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

func (r *RedisConnect) GetDSN() string {
	return fmt.Sprintf("redis://%s:%s@%s:%s", r.Username, r.Password, r.Host, r.Port)
}

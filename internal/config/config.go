package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Cache drivers.
const (
	CacheDriverMemory = "memory"
	CacheDriverRedis  = "redis"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// authentication, result caching, the calculator and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set.
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// CORSOrigins lists the browser origins allowed to call the API. "*" allows any.
		CORSOrigins []string `env:"HTTP_CORS_ORIGINS" env-default:"*" env-separator:"," yaml:"corsOrigins"`
		// PprofEnabled mounts the runtime profiler under /debug/pprof/.
		PprofEnabled bool `env:"HTTP_PPROF_ENABLED" env-default:"true" yaml:"pprofEnabled"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		Username     string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		Password     string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		Host         string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		Port         int    `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		SslMode      string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		DatabaseName string `env:"DATABASE_NAME" env-default:"toolbox" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// JWT holds the RS256 key pair. The public key verifies bearer tokens, the
	// private key is only needed by the jwt command.
	JWT struct {
		PublicKey  string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// Cache configures where evaluation results are cached.
	Cache struct {
		// Driver is either "memory" or "redis".
		Driver string `env:"CACHE_DRIVER" env-default:"memory" yaml:"driver"`
		// TTL is how long a cached result is reused.
		TTL time.Duration `env:"CACHE_TTL" env-default:"1h" yaml:"ttl"`
		// MaxEntries bounds the memory driver.
		MaxEntries int `env:"CACHE_MAX_ENTRIES" env-default:"10000" yaml:"maxEntries"`

		Redis struct {
			Addr     string `env:"CACHE_REDIS_ADDR" env-default:"localhost:6379" yaml:"addr"`
			Password string `env:"CACHE_REDIS_PASSWORD" yaml:"password"`
			DB       int    `env:"CACHE_REDIS_DB" env-default:"0" yaml:"db"`
			Prefix   string `env:"CACHE_REDIS_PREFIX" env-default:"toolbox:" yaml:"prefix"`
		} `yaml:"redis"`
	} `yaml:"cache"`

	// Calculator configures evaluation limits and the background workers.
	Calculator struct {
		// MaxAttempts is how many times a calculation job is tried before it fails.
		MaxAttempts int `env:"CALCULATOR_MAX_ATTEMPTS" env-default:"5" yaml:"maxAttempts"`
		// Workers is the number of calculations processed concurrently.
		Workers int `env:"CALCULATOR_WORKERS" env-default:"10" yaml:"workers"`
		// MaxInputBytes rejects larger argument documents.
		MaxInputBytes int `env:"CALCULATOR_MAX_INPUT_BYTES" env-default:"65536" yaml:"maxInputBytes"`
		// EvaluationTimeout bounds a single evaluation run by a worker.
		EvaluationTimeout time.Duration `env:"CALCULATOR_EVALUATION_TIMEOUT" env-default:"30s" yaml:"evaluationTimeout"` //nolint: lll
	} `yaml:"calculator"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Validate checks values that have no sensible fallback.
func (c *Config) Validate() error {
	switch c.Cache.Driver {
	case CacheDriverMemory, CacheDriverRedis:
	default:
		return fmt.Errorf("unknown cache driver %q", c.Cache.Driver)
	}
	if c.Calculator.MaxAttempts < 1 {
		return errors.New("calculator.maxAttempts must be at least 1")
	}
	if c.Calculator.Workers < 1 {
		return errors.New("calculator.workers must be at least 1")
	}
	if c.Calculator.MaxInputBytes < 1 {
		return errors.New("calculator.maxInputBytes must be positive")
	}

	return nil
}

// Load reads the config file at configPath (YAML, TOML or JSON by extension)
// with environment overrides. When the file does not exist, configuration is
// read from the environment only.
func Load(configPath string) (*Config, error) {
	var cfg Config

	_, statErr := os.Stat(configPath)
	switch {
	case configPath == "" || errors.Is(statErr, fs.ErrNotExist):
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from environment: %w", err)
		}
	default:
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("could not read config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

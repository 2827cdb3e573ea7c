package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"toolbox/internal/config"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, "/metrics", cfg.HTTP.MetricsPath)
	require.Equal(t, []string{"*"}, cfg.HTTP.CORSOrigins)
	require.True(t, cfg.HTTP.PprofEnabled)
	require.Equal(t, config.CacheDriverMemory, cfg.Cache.Driver)
	require.Equal(t, time.Hour, cfg.Cache.TTL)
	require.Equal(t, 5, cfg.Calculator.MaxAttempts)
	require.Equal(t, 65536, cfg.Calculator.MaxInputBytes)
	require.Equal(t, 10*time.Second, cfg.GracefulShutdownTimeout)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "config.yml", `
environment: production
logLevel: warn
http:
  addr: ":9090"
cache:
  driver: redis
  ttl: 5m
  redis:
    addr: "cache:6379"
calculator:
  workers: 3
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, ":9090", cfg.HTTP.Addr)
	require.Equal(t, config.CacheDriverRedis, cfg.Cache.Driver)
	require.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	require.Equal(t, "cache:6379", cfg.Cache.Redis.Addr)
	require.Equal(t, 3, cfg.Calculator.Workers)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "config.yml", "calculator:\n  maxAttempts: 2\n")
	t.Setenv("CALCULATOR_MAX_ATTEMPTS", "9")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 9, cfg.Calculator.MaxAttempts)
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "config.toml", "environment = \"production\"\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
}

func TestLoad_Invalid(t *testing.T) {
	path := writeFile(t, "config.yml", "cache:\n  driver: memcached\n")

	_, err := config.Load(path)
	require.ErrorContains(t, err, "unknown cache driver")
}

func TestLoad_CORSOriginsFromEnv(t *testing.T) {
	t.Setenv("HTTP_CORS_ORIGINS", "https://a.example.com,https://b.example.com")
	t.Setenv("HTTP_PPROF_ENABLED", "false")

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.HTTP.CORSOrigins)
	require.False(t, cfg.HTTP.PprofEnabled)
}

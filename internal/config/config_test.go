package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, "sqlite", c.StorageBackend)
	assert.Empty(t, c.DSN)
	assert.Equal(t, "percify:", c.RedisPrefix)
	assert.Equal(t, 3*time.Second, c.StorageTimeout)
	require.NoError(t, c.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "memory without dsn", mutate: func(c *Config) { c.StorageBackend = "memory"; c.DSN = "" }},
		{name: "unknown backend", mutate: func(c *Config) { c.StorageBackend = "etcd" }, wantErr: true},
		{name: "postgres without dsn", mutate: func(c *Config) { c.StorageBackend = "postgres"; c.DSN = "" }, wantErr: true},
		{name: "redis without url", mutate: func(c *Config) { c.StorageBackend = "redis"; c.RedisURL = "" }, wantErr: true},
		{name: "bad level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: true},
		{name: "bad format", mutate: func(c *Config) { c.LogFormat = "xml" }, wantErr: true},
		{name: "negative timeout", mutate: func(c *Config) { c.StorageTimeout = -time.Second }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := defaults()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected *Config
		wantErr  bool
	}{
		{
			name: "all flags",
			args: []string{"-s", "postgres", "-d", "postgres://localhost/percify", "-r", "redis://cache:6379/1",
				"-l", "debug", "-f", "json", "-t", "10", "-p", "s3cret", "-c", "ignored.yaml"},
			expected: &Config{
				StorageBackend: "postgres",
				DSN:            "postgres://localhost/percify",
				RedisURL:       "redis://cache:6379/1",
				RedisPrefix:    "percify:",
				LogLevel:       "debug",
				LogFormat:      "json",
				StorageTimeout: 10 * time.Second,
				Passphrase:     "s3cret",
			},
		},
		{
			name:     "no flags keeps values",
			args:     nil,
			expected: defaults(),
		},
		{
			name:    "bad timeout",
			args:    []string{"-t", "abc"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			err := parseFlags(cfg, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}

func TestParseFlags_KeepsSubSecondTimeoutWhenUnset(t *testing.T) {
	cfg := defaults()
	cfg.StorageTimeout = 1500 * time.Millisecond

	require.NoError(t, parseFlags(cfg, []string{"-l", "warn"}))
	assert.Equal(t, 1500*time.Millisecond, cfg.StorageTimeout)
}

func TestParseEnv(t *testing.T) {
	env := map[string]string{
		"PERCIFY_STORAGE":         "redis",
		"PERCIFY_REDIS_URL":       "redis://env:6379/2",
		"PERCIFY_STORAGE_TIMEOUT": "750ms",
		"UNRELATED":               "x",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := defaults()
	require.NoError(t, parseEnv(cfg, lookup))

	want := defaults()
	want.StorageBackend = "redis"
	want.RedisURL = "redis://env:6379/2"
	want.StorageTimeout = 750 * time.Millisecond
	assert.Empty(t, cmp.Diff(want, cfg))

	env["PERCIFY_STORAGE_TIMEOUT"] = "later"
	require.ErrorContains(t, parseEnv(cfg, lookup), "PERCIFY_STORAGE_TIMEOUT")
}

func TestLoadDotEnv(t *testing.T) {
	t.Setenv("PERCIFY_LOG_FORMAT", "")
	require.NoError(t, os.Unsetenv("PERCIFY_LOG_FORMAT"))

	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("PERCIFY_LOG_FORMAT=json\n"), 0o600))

	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "json", os.Getenv("PERCIFY_LOG_FORMAT"))

	require.NoError(t, loadDotEnv(filepath.Join(dir, "missing.env")))
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "percify.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage: memory\nlog_level: warn\nlog_format: json\n"), 0o600))

	t.Setenv("PERCIFY_LOG_LEVEL", "error")

	cfg, err := LoadConfig([]string{"-c", path, "-l", "debug"})
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.StorageBackend)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_DSNDefaultsOnlyForSQLite(t *testing.T) {
	t.Setenv("PERCIFY_DSN", "")
	require.NoError(t, os.Unsetenv("PERCIFY_DSN"))
	t.Setenv("PERCIFY_STORAGE", "")
	require.NoError(t, os.Unsetenv("PERCIFY_STORAGE"))

	cfg, err := LoadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultSQLiteFile, cfg.DSN)

	_, err = LoadConfig([]string{"-s", "postgres"})
	require.ErrorContains(t, err, "invalid config")

	cfg, err = LoadConfig([]string{"-s", "postgres", "-d", "postgres://localhost/percify"})
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/percify", cfg.DSN)

	cfg, err = LoadConfig([]string{"-s", "sqlite", "-d", "data/mine.db"})
	require.NoError(t, err)
	assert.Equal(t, "data/mine.db", cfg.DSN)
}

func TestLoadConfig_InvalidResult(t *testing.T) {
	_, err := LoadConfig([]string{"-s", "etcd"})
	require.ErrorContains(t, err, "invalid config")
}

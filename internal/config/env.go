package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
)

const envPrefix = "PERCIFY_"

// loadDotEnv exports the variables in path into the process environment
// without overriding ones already set. A missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// parseEnv overlays cfg with PERCIFY_* variables found through lookup.
func parseEnv(cfg *Config, lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"STORAGE":      &cfg.StorageBackend,
		"DSN":          &cfg.DSN,
		"REDIS_URL":    &cfg.RedisURL,
		"REDIS_PREFIX": &cfg.RedisPrefix,
		"LOG_LEVEL":    &cfg.LogLevel,
		"LOG_FORMAT":   &cfg.LogFormat,
		"PASSPHRASE":   &cfg.Passphrase,
	}
	for name, dst := range strs {
		if v, ok := lookup(envPrefix + name); ok {
			*dst = v
		}
	}

	if v, ok := lookup(envPrefix + "STORAGE_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sSTORAGE_TIMEOUT: %w", envPrefix, err)
		}
		cfg.StorageTimeout = d
	}
	return nil
}

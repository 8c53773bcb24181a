package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/percify/internal/flagx"
	"github.com/dmitrijs2005/percify/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk layout, shared by JSON and YAML. Pointer fields
// distinguish "absent" from "empty" so a file only overrides what it names.
type FileConfig struct {
	StorageBackend *string         `json:"storage" yaml:"storage"`
	DSN            *string         `json:"dsn" yaml:"dsn"`
	RedisURL       *string         `json:"redis_url" yaml:"redis_url"`
	RedisPrefix    *string         `json:"redis_prefix" yaml:"redis_prefix"`
	LogLevel       *string         `json:"log_level" yaml:"log_level"`
	LogFormat      *string         `json:"log_format" yaml:"log_format"`
	StorageTimeout *timex.Duration `json:"storage_timeout" yaml:"storage_timeout"`
	Passphrase     *string         `json:"passphrase" yaml:"passphrase"`
}

// parseFile overlays cfg with the file selected by -c/-config. Files ending
// in .yaml or .yml are read as YAML, anything else as JSON.
func parseFile(cfg *Config, args []string) error {
	path := flagx.ConfigPathFlag(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	fc.apply(cfg)
	return nil
}

func (fc *FileConfig) apply(cfg *Config) {
	setString(&cfg.StorageBackend, fc.StorageBackend)
	setString(&cfg.DSN, fc.DSN)
	setString(&cfg.RedisURL, fc.RedisURL)
	setString(&cfg.RedisPrefix, fc.RedisPrefix)
	setString(&cfg.LogLevel, fc.LogLevel)
	setString(&cfg.LogFormat, fc.LogFormat)
	setString(&cfg.Passphrase, fc.Passphrase)
	if fc.StorageTimeout != nil {
		cfg.StorageTimeout = fc.StorageTimeout.Duration
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

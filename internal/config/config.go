package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds runtime settings for the percify console. A non-empty
// Passphrase turns on encryption of stored values.
type Config struct {
	StorageBackend string `validate:"oneof=sqlite postgres redis memory"`
	DSN            string `validate:"required_if=StorageBackend postgres"`
	RedisURL       string `validate:"required_if=StorageBackend redis"`
	RedisPrefix    string
	LogLevel       string        `validate:"oneof=debug info warn error"`
	LogFormat      string        `validate:"oneof=text json"`
	StorageTimeout time.Duration `validate:"gte=0"`
	Passphrase     string
}

// DefaultSQLiteFile is the database file used when the sqlite backend is
// selected without a DSN.
const DefaultSQLiteFile = "percify.db"

// LoadDefaults populates c with defaults for local use. The DSN stays empty;
// LoadConfig fills the sqlite default once the backend is known.
func (c *Config) LoadDefaults() {
	c.StorageBackend = "sqlite"
	c.RedisURL = "redis://localhost:6379/0"
	c.RedisPrefix = "percify:"
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.StorageTimeout = 3 * time.Second
}

// applyBackendDefaults fills settings that depend on the final backend choice.
func (c *Config) applyBackendDefaults() {
	if c.StorageBackend == "sqlite" && c.DSN == "" {
		c.DSN = DefaultSQLiteFile
	}
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LoadConfig builds a Config from defaults, then the config file named by
// -c/-config, then the environment (after loading .env), then flags. Later
// sources override earlier ones. args excludes the program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseFile(cfg, args); err != nil {
		return nil, err
	}
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	cfg.applyBackendDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/percify/internal/flagx"
)

// parseFlags overlays cfg with command-line flags:
//
//	-s string   storage backend: sqlite, postgres, redis or memory
//	-d string   SQLite file or PostgreSQL DSN
//	-r string   Redis URL
//	-l string   log level
//	-f string   log format: text or json
//	-t int      storage timeout in seconds
//	-p string   passphrase for encryption at rest
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-s", "-d", "-r", "-l", "-f", "-t", "-p"})

	fs := flag.NewFlagSet("percify", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.StorageBackend, "s", cfg.StorageBackend, "storage backend")
	fs.StringVar(&cfg.DSN, "d", cfg.DSN, "SQLite file or PostgreSQL DSN")
	fs.StringVar(&cfg.RedisURL, "r", cfg.RedisURL, "Redis URL")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format")
	fs.StringVar(&cfg.Passphrase, "p", cfg.Passphrase, "passphrase for encryption at rest")
	timeout := fs.Int("t", int(cfg.StorageTimeout.Seconds()), "storage timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.StorageTimeout = time.Duration(*timeout) * time.Second
		}
	})
	return nil
}

// Package config loads application settings from an optional TOML file with
// environment-variable overrides. Env wins over the file, the file over
// built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"gsearch/internal/logger"
)

type Config struct {
	// RecentFile is the path of the recent-queries INI file.
	RecentFile string `toml:"recent_file"`
	// MaxRecent caps the recent-queries list.
	MaxRecent int           `toml:"max_recent"`
	Logger    logger.Config `toml:"logger"`
}

const (
	defaultRecentFile = "gsearch.ini"
	defaultMaxRecent  = 20
	defaultLogLevel   = "info"
	defaultLogFormat  = logger.FormatConsole
	defaultLogOutput  = "stdout"
)

// Load parses the config file at path, when it exists, and applies GSEARCH_*
// environment overrides. A missing file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	conf := &Config{
		RecentFile: defaultRecentFile,
		MaxRecent:  defaultMaxRecent,
		Logger: logger.Config{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
			Output: defaultLogOutput,
		},
	}

	if path != "" {
		if _, err := toml.DecodeFile(path, conf); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := conf.parseEnv(); err != nil {
		return nil, err
	}

	return conf, nil
}

func (c *Config) parseEnv() error {
	if v := os.Getenv("GSEARCH_RECENT_FILE"); v != "" {
		c.RecentFile = v
	}
	if v := os.Getenv("GSEARCH_MAX_RECENT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("config: invalid GSEARCH_MAX_RECENT %q", v)
		}
		c.MaxRecent = n
	}
	if v := os.Getenv("GSEARCH_LOG_LEVEL"); v != "" {
		c.Logger.Level = v
	}
	if v := os.Getenv("GSEARCH_LOG_FORMAT"); v != "" {
		c.Logger.Format = v
	}
	if v := os.Getenv("GSEARCH_LOG_OUTPUT"); v != "" {
		c.Logger.Output = v
	}
	return nil
}

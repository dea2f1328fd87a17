package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	// DBPath is the SQLite database location. Defaults to ~/.crewplan/crewplan.db.
	DBPath string `json:"dbPath"`

	// DailyCapacityHours is the fixed capacity consumed per working day.
	DailyCapacityHours int `json:"dailyCapacityHours"`

	Logging LoggingConfig `json:"logging"`

	// MetricsAddr, when set, serves Prometheus metrics on that address.
	MetricsAddr string `json:"metricsAddr"`
}

type LoggingConfig struct {
	Level string `json:"level"`
}

// Default returns the configuration used when no config file is given.
func Default() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("finding home directory: %w", err)
	}
	cfg := &Config{
		DBPath:             filepath.Join(home, ".crewplan", "crewplan.db"),
		DailyCapacityHours: 8,
		Logging:            LoggingConfig{Level: "info"},
	}
	return cfg, nil
}

// Load reads a YAML or JSON config file, then applies CREWPLAN_ environment
// overrides (CREWPLAN_LOGGING__LEVEL=debug sets logging.level).
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	if err := k.Load(env.Provider("CREWPLAN_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "crewplan_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}

	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("dbPath must not be empty")
	}
	if c.DailyCapacityHours <= 0 {
		return fmt.Errorf("dailyCapacityHours must be positive, got %d", c.DailyCapacityHours)
	}
	return nil
}

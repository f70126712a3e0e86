// Package config loads the crewdeckd configuration from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/crewdeck/crewdeck/pkg/schedule"
)

// Config is the crewdeckd server configuration.
type Config struct {
	Listen   string         `yaml:"listen"`
	Database DatabaseConfig `yaml:"database"`
	Logging  LoggingConfig  `yaml:"logging"`

	// Recurring lists standing visits rendered into day views.
	Recurring []RecurringConfig `yaml:"recurring"`
}

// DatabaseConfig locates the sqlite file backing the job store.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig controls the zerolog output.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	Console bool   `yaml:"console"`
}

// RecurringConfig is one standing visit, recurring per a five-field
// cron expression.
type RecurringConfig struct {
	Slug          string   `yaml:"slug"`
	Client        string   `yaml:"client"`
	DurationHours float64  `yaml:"duration_hours"`
	Team          []string `yaml:"team"`
	Cron          string   `yaml:"cron"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Listen:   ":8433",
		Database: DatabaseConfig{Path: "crewdeck.db"},
		Logging:  LoggingConfig{Level: "info", Console: true},
	}
}

// Load reads a YAML config file, filling gaps with defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Listen == "" {
		cfg.Listen = Default().Listen
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = Default().Database.Path
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = Default().Logging.Level
	}
	return cfg, nil
}

// Visits compiles the recurring section into schedules.
func (c *Config) Visits() ([]schedule.RecurringVisit, error) {
	visits := make([]schedule.RecurringVisit, 0, len(c.Recurring))
	for _, rc := range c.Recurring {
		if rc.Slug == "" || rc.Client == "" {
			return nil, fmt.Errorf("recurring visit needs slug and client (slug=%q)", rc.Slug)
		}
		sched, err := schedule.Cron(rc.Cron)
		if err != nil {
			return nil, fmt.Errorf("recurring visit %s: bad cron %q: %w", rc.Slug, rc.Cron, err)
		}
		visits = append(visits, schedule.RecurringVisit{
			Slug:          rc.Slug,
			ClientLabel:   rc.Client,
			DurationHours: rc.DurationHours,
			Team:          rc.Team,
			Schedule:      sched,
		})
	}
	return visits, nil
}

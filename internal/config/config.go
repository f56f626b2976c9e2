package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

var ErrUnsupportedFormat = errors.New("unsupported config format")

type Config struct {
	Log     LogConfig     `yaml:"log" toml:"log" json:"log"`
	Metrics MetricsConfig `yaml:"metrics" toml:"metrics" json:"metrics"`
	Seed    []SeedTask    `yaml:"seed" toml:"seed" json:"seed"`
}

type LogConfig struct {
	Level  string `yaml:"level" toml:"level" json:"level"`
	Format string `yaml:"format" toml:"format" json:"format"` // "text" or "json"
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled" toml:"enabled" json:"enabled"`
}

// SeedTask describes a task to load into a fresh registry.
// DueIn is a Go duration relative to start-up, e.g. "48h" or "-30m".
type SeedTask struct {
	ID        string   `yaml:"id" toml:"id" json:"id"`
	Name      string   `yaml:"name" toml:"name" json:"name"`
	DueIn     string   `yaml:"due_in" toml:"due_in" json:"due_in"`
	Tags      []string `yaml:"tags" toml:"tags" json:"tags,omitempty"`
	Completed bool     `yaml:"completed" toml:"completed" json:"completed"`
}

// Deadline resolves DueIn against now. An empty DueIn means due now.
func (s SeedTask) Deadline(now time.Time) (time.Time, error) {
	if s.DueIn == "" {
		return now, nil
	}
	d, err := time.ParseDuration(s.DueIn)
	if err != nil {
		return time.Time{}, fmt.Errorf("seed task %q: due_in: %w", s.ID, err)
	}
	return now.Add(d), nil
}

func Default() *Config {
	c := &Config{}
	c.ApplyDefaults()
	return c
}

func (l *LogConfig) ApplyDefaults() {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func (c *Config) ApplyDefaults() {
	c.Log.ApplyDefaults()
	for i := range c.Seed {
		if c.Seed[i].ID == "" {
			c.Seed[i].ID = uuid.NewString()
		}
	}
}

// Load reads a YAML (.yaml, .yml) or TOML (.toml) file, then applies defaults and
// environment overrides.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var r Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &r); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(b, &r); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	r.ApplyDefaults()
	r.ApplyEnv()
	return &r, nil
}

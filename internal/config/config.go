// Package config loads the YAML configuration of the statesearch command.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/statespace/cubepath"
	"github.com/katalvlaran/statespace/frontier"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "statesearch.yaml"

// ErrUnknownPuzzle is returned when a named puzzle is not configured.
var ErrUnknownPuzzle = errors.New("config: unknown puzzle")

// PuzzleConfig describes one cube puzzle shape.
type PuzzleConfig struct {
	Width     int   `yaml:"width" json:"width"`
	Intervals []int `yaml:"intervals" json:"intervals"`
}

// Config is the root of statesearch.yaml.
type Config struct {
	// Strategy is a frontier discipline name: bfs, dfs, fifo, lifo.
	Strategy string `yaml:"strategy" json:"strategy"`
	// MaxVisits bounds every search; 0 means no bound.
	MaxVisits int `yaml:"max_visits" json:"max_visits"`
	// LogLevel is debug, info, warn or error.
	LogLevel string `yaml:"log_level" json:"log_level"`
	// Dictionary is the word list used by the ladder command.
	Dictionary string `yaml:"dictionary" json:"dictionary"`
	// MetricsAddr, if set, serves /metrics on that address.
	MetricsAddr string `yaml:"metrics_addr" json:"metrics_addr"`
	// Puzzles adds or overrides named cube puzzles.
	Puzzles map[string]PuzzleConfig `yaml:"puzzles" json:"puzzles"`
}

// Default returns the built-in configuration, including the small and
// standard cube puzzles.
func Default() Config {
	small, standard := cubepath.Small(), cubepath.Standard()

	return Config{
		Strategy:   "bfs",
		LogLevel:   "info",
		Dictionary: "english.txt",
		Puzzles: map[string]PuzzleConfig{
			"small":    {Width: small.Width(), Intervals: small.Intervals()},
			"standard": {Width: standard.Width(), Intervals: standard.Intervals()},
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults
// unless required is true.
func Load(path string, required bool) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.merge(file)

	return cfg, cfg.Validate()
}

// merge overlays the non-zero fields of o.
func (c *Config) merge(o Config) {
	if o.Strategy != "" {
		c.Strategy = o.Strategy
	}
	if o.MaxVisits != 0 {
		c.MaxVisits = o.MaxVisits
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	if o.Dictionary != "" {
		c.Dictionary = o.Dictionary
	}
	if o.MetricsAddr != "" {
		c.MetricsAddr = o.MetricsAddr
	}
	for name, p := range o.Puzzles {
		c.Puzzles[name] = p
	}
}

// Validate checks the strategy, budget and every puzzle shape.
func (c Config) Validate() error {
	if _, err := frontier.ParseDiscipline(c.Strategy); err != nil {
		return fmt.Errorf("config: strategy: %w", err)
	}
	if c.MaxVisits < 0 {
		return fmt.Errorf("config: max_visits cannot be negative (%d)", c.MaxVisits)
	}
	for name := range c.Puzzles {
		if _, err := c.Puzzle(name); err != nil {
			return err
		}
	}

	return nil
}

// Discipline returns the parsed Strategy.
func (c Config) Discipline() (frontier.Discipline, error) {
	return frontier.ParseDiscipline(c.Strategy)
}

// Puzzle builds the named cube puzzle.
func (c Config) Puzzle(name string) (*cubepath.Puzzle, error) {
	pc, ok := c.Puzzles[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPuzzle, name)
	}
	p, err := cubepath.New(pc.Intervals, pc.Width)
	if err != nil {
		return nil, fmt.Errorf("config: puzzle %q: %w", name, err)
	}

	return p, nil
}

package engine

import (
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// EngineConfig is a run configuration for the CLI and comparison
// harness (spec.md section 2/4.A1): grid bounds, starting map, tick
// cadence and activation probability, and log verbosity.
type EngineConfig struct {
	GridX             int           `mapstructure:"grid_x" yaml:"grid_x"`
	GridY             int           `mapstructure:"grid_y" yaml:"grid_y"`
	GridZ             int           `mapstructure:"grid_z" yaml:"grid_z"`
	StartMap          string        `mapstructure:"start_map" yaml:"start_map"`
	ActiveProbability int           `mapstructure:"active_probability" yaml:"active_probability"`
	TickInterval      time.Duration `mapstructure:"tick_interval" yaml:"tick_interval"`
	LogLevel          string        `mapstructure:"log_level" yaml:"log_level"`
}

// DefaultEngineConfig returns the configuration used when no file is
// supplied, or when LoadConfig cannot read one (spec.md section 8, E3).
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		GridX: 10, GridY: 10, GridZ: 10,
		StartMap:          "single-cell",
		ActiveProbability: defaultActiveProbability,
		TickInterval:      100 * time.Millisecond,
		LogLevel:          "info",
	}
}

// LoadConfig loads an EngineConfig from a YAML file at path, the way
// the tabular example's reinforcement.FromYaml loads training config: a
// dedicated viper.Viper instance (never the package-global viper),
// SetConfigType("yaml"), ReadInConfig, Unmarshal. Defaults are applied
// first, so a missing or unreadable file still yields a runnable
// configuration rather than an error.
func LoadConfig(path string) EngineConfig {
	cfg := DefaultEngineConfig()
	if path == "" {
		return cfg
	}

	vp := viper.New()
	vp.SetConfigType("yaml")
	vp.SetConfigName(fileBase(path))
	vp.AddConfigPath(filepath.Dir(path))

	vp.SetDefault("grid_x", cfg.GridX)
	vp.SetDefault("grid_y", cfg.GridY)
	vp.SetDefault("grid_z", cfg.GridZ)
	vp.SetDefault("start_map", cfg.StartMap)
	vp.SetDefault("active_probability", cfg.ActiveProbability)
	vp.SetDefault("tick_interval", cfg.TickInterval)
	vp.SetDefault("log_level", cfg.LogLevel)

	if err := vp.ReadInConfig(); err != nil {
		return cfg
	}
	if err := vp.Unmarshal(&cfg); err != nil {
		return DefaultEngineConfig()
	}
	return cfg
}

// fileBase strips the directory and extension from path, as
// viper.SetConfigName expects.
func fileBase(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	return base[:len(base)-len(ext)]
}

// ApplyConfig configures an existing Engine from cfg. It applies the
// active probability only; the grid size is whatever the caller passed
// to NewEngine or InitGrid, and StartMap, TickInterval and LogLevel are
// not applied to the engine.
func (e *Engine) ApplyConfig(cfg EngineConfig) {
	e.SetActiveProbability(cfg.ActiveProbability)
}

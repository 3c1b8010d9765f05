package cliconfig

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds the settings cmd/cgc's run command needs.
type Config struct {
	Input  InputConfig  `mapstructure:"input"`
	Output OutputConfig `mapstructure:"output"`
	Solver SolverConfig `mapstructure:"solver"`
	Log    LogConfig    `mapstructure:"log"`
}

// InputConfig describes where the base graph comes from.
type InputConfig struct {
	EdgeListPath string `mapstructure:"edge_list_path"`
}

// OutputConfig describes where results are written.
type OutputConfig struct {
	LabelsPath string `mapstructure:"labels_path"`
}

// SolverConfig selects and tunes the two-way mincut backend and which CGC
// phases run.
type SolverConfig struct {
	Backend           string `mapstructure:"backend"` // "bruteforce" or "localsearch"
	LocalSearchRestarts int  `mapstructure:"local_search_restarts"`
	DoCutPhase        bool   `mapstructure:"do_cut_phase"`
	DoGlueAndCutPhase bool   `mapstructure:"do_glue_and_cut_phase"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from configPath (yaml/json/toml, per viper's
// extension sniffing), falling back to defaults for anything unset. An
// empty configPath is valid: defaults apply and EdgeListPath must then be
// supplied on the command line.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			_, notFound := err.(viper.ConfigFileNotFoundError)
			if !notFound && !os.IsNotExist(err) {
				return nil, fmt.Errorf("cliconfig: read config: %w", err)
			}
		}
	}

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("cliconfig: unmarshal config: %w", err)
	}
	return &cfg, nil
}

// LoadFromReader loads configuration of the given type from in-memory
// content, for tests.
func LoadFromReader(configType string, content []byte) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType(configType)
	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("cliconfig: read config: %w", err)
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("cliconfig: unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("output.labels_path", "labels.txt")
	v.SetDefault("solver.backend", "bruteforce")
	v.SetDefault("solver.local_search_restarts", 32)
	v.SetDefault("solver.do_cut_phase", true)
	v.SetDefault("solver.do_glue_and_cut_phase", true)
	v.SetDefault("log.level", "info")
}

// Validate reports whether cfg is usable.
func (c *Config) Validate() error {
	if c.Input.EdgeListPath == "" {
		return fmt.Errorf("cliconfig: input.edge_list_path is required")
	}
	switch c.Solver.Backend {
	case "bruteforce", "localsearch":
	default:
		return fmt.Errorf("cliconfig: unsupported solver.backend %q", c.Solver.Backend)
	}
	return nil
}

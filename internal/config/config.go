package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// IgnoreCaseEnv enables case-insensitive matching when defined, whatever its value.
	IgnoreCaseEnv = "IGNORE_CASE"
	// ConfigFileEnv names an optional YAML settings file.
	ConfigFileEnv = "MINIGREP_CONFIG"
	// LogLevelEnv overrides the log level from the settings file.
	LogLevelEnv = "MINIGREP_LOG_LEVEL"

	defaultLogLevel = "warn"
)

var validLogLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

// LookupFunc reports the value of an environment variable and whether it is defined.
// os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// Config is the resolved input of one search invocation.
type Config struct {
	Query      string
	FilePath   string
	IgnoreCase bool
	LogLevel   string
}

// yamlConfig represents the YAML settings file structure.
type yamlConfig struct {
	IgnoreCase *bool  `yaml:"ignore_case"`
	LogLevel   string `yaml:"log_level"`
}

// Resolve builds a Config from positional arguments (program name excluded)
// and the environment exposed by lookup.
func Resolve(args []string, lookup LookupFunc) (Config, error) {
	if len(args) < 1 {
		return Config{}, ErrMissingQuery
	}
	if len(args) < 2 {
		return Config{}, ErrMissingFilePath
	}
	if lookup == nil {
		lookup = os.LookupEnv
	}

	cfg := defaultConfig()
	cfg.Query = args[0]
	cfg.FilePath = args[1]

	if path, ok := lookup(ConfigFileEnv); ok && strings.TrimSpace(path) != "" {
		yamlCfg, err := loadFromFile(strings.TrimSpace(path))
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		applyYAMLConfig(&cfg, yamlCfg)
	}

	applyEnvConfig(&cfg, lookup)

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		LogLevel: defaultLogLevel,
	}
}

// loadFromFile loads settings from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyYAMLConfig applies YAML settings to the Config struct.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) {
	if yamlCfg.IgnoreCase != nil {
		cfg.IgnoreCase = *yamlCfg.IgnoreCase
	}

	if level := strings.TrimSpace(yamlCfg.LogLevel); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}
}

// applyEnvConfig applies environment variable configuration.
func applyEnvConfig(cfg *Config, lookup LookupFunc) {
	// Presence alone counts, an empty value still enables it.
	if _, ok := lookup(IgnoreCaseEnv); ok {
		cfg.IgnoreCase = true
	}

	if level, ok := lookup(LogLevelEnv); ok && strings.TrimSpace(level) != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(level))
	}
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if _, ok := validLogLevels[cfg.LogLevel]; !ok {
		return fmt.Errorf("unsupported log level %q", cfg.LogLevel)
	}
	return nil
}

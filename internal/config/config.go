package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"lottoscope/pkg/contracts/domain"
)

// Config represents the complete application configuration
type Config struct {
	Server  ServerConfig  `yaml:"server" envconfig:"SERVER"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Paths   PathsConfig   `yaml:"paths" envconfig:"PATHS"`
	Profile ProfileConfig `yaml:"profile" envconfig:"PROFILE"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port            int           `yaml:"port" envconfig:"PORT" default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT" default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT" default:"15s"`
	MaxUploadBytes  int64         `yaml:"max_upload_bytes" envconfig:"MAX_UPLOAD_BYTES" default:"33554432"`
	RateLimit       RateLimitConfig `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
}

// RateLimitConfig contains rate limiting configuration
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" envconfig:"ENABLED" default:"true"`
	RPS     float64 `yaml:"rps" envconfig:"RPS" default:"20"`
	Burst   int     `yaml:"burst" envconfig:"BURST" default:"40"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/lottoscope.log"`
}

// PathsConfig contains file system paths configuration
type PathsConfig struct {
	DataDir    string `yaml:"data_dir" envconfig:"DATA_DIR" default:"data"`
	ExportsDir string `yaml:"exports_dir" envconfig:"EXPORTS_DIR" default:"exports"`
	LogsDir    string `yaml:"logs_dir" envconfig:"LOGS_DIR" default:"logs"`
}

// ProfileConfig is the default lottery profile used when a request or CLI
// invocation does not override it.
type ProfileConfig struct {
	Name         string `yaml:"name" envconfig:"NAME" default:"mega"`
	TotalNumbers int    `yaml:"total_numbers" envconfig:"TOTAL_NUMBERS" default:"60"`
	DrawSize     int    `yaml:"draw_size" envconfig:"DRAW_SIZE" default:"6"`
	BetSize      int    `yaml:"bet_size" envconfig:"BET_SIZE" default:"6"`
	HotCount     int    `yaml:"hot_count" envconfig:"HOT_COUNT" default:"10"`
	ColdCount    int    `yaml:"cold_count" envconfig:"COLD_COUNT" default:"10"`
}

// ToProfile converts the config section into the domain profile.
func (p ProfileConfig) ToProfile() domain.Profile {
	return domain.Profile{
		Name:         p.Name,
		TotalNumbers: p.TotalNumbers,
		DrawSize:     p.DrawSize,
		BetSize:      p.BetSize,
		HotCount:     p.HotCount,
		ColdCount:    p.ColdCount,
	}
}

// Load loads configuration from environment variables and an optional
// config.yaml next to the working directory. Environment variables win over
// file values, file values win over defaults.
func Load() (*Config, error) {
	var cfg Config

	// Load defaults and LOTTO_* environment overrides first.
	if err := envconfig.Process("LOTTO", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	// Load from config file if it exists. File values replace defaults but
	// never an explicitly set environment variable.
	configFile := os.Getenv("LOTTO_CONFIG_FILE")
	if configFile == "" {
		configFile = "config.yaml"
	}
	if _, err := os.Stat(configFile); err == nil {
		fileCfg, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		mergeFileConfig(&cfg, *fileCfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// mergeFileConfig layers file values into cfg: a file value applies when it
// is present (non-zero) and its environment variable was not set explicitly.
func mergeFileConfig(cfg *Config, file Config) {
	if file.Server.Port != 0 && !envSet("LOTTO_SERVER_PORT") {
		cfg.Server.Port = file.Server.Port
	}
	if file.Server.ReadTimeout != 0 && !envSet("LOTTO_SERVER_READ_TIMEOUT") {
		cfg.Server.ReadTimeout = file.Server.ReadTimeout
	}
	if file.Server.WriteTimeout != 0 && !envSet("LOTTO_SERVER_WRITE_TIMEOUT") {
		cfg.Server.WriteTimeout = file.Server.WriteTimeout
	}
	if file.Server.IdleTimeout != 0 && !envSet("LOTTO_SERVER_IDLE_TIMEOUT") {
		cfg.Server.IdleTimeout = file.Server.IdleTimeout
	}
	if file.Server.ShutdownTimeout != 0 && !envSet("LOTTO_SERVER_SHUTDOWN_TIMEOUT") {
		cfg.Server.ShutdownTimeout = file.Server.ShutdownTimeout
	}
	if file.Server.MaxUploadBytes != 0 && !envSet("LOTTO_SERVER_MAX_UPLOAD_BYTES") {
		cfg.Server.MaxUploadBytes = file.Server.MaxUploadBytes
	}
	if file.Server.RateLimit.RPS != 0 && !envSet("LOTTO_SERVER_RATE_LIMIT_RPS") {
		cfg.Server.RateLimit.RPS = file.Server.RateLimit.RPS
	}
	if file.Server.RateLimit.Burst != 0 && !envSet("LOTTO_SERVER_RATE_LIMIT_BURST") {
		cfg.Server.RateLimit.Burst = file.Server.RateLimit.Burst
	}

	if file.Logging.Level != "" && !envSet("LOTTO_LOGGING_LEVEL") {
		cfg.Logging.Level = file.Logging.Level
	}
	if file.Logging.Format != "" && !envSet("LOTTO_LOGGING_FORMAT") {
		cfg.Logging.Format = file.Logging.Format
	}
	if file.Logging.Output != "" && !envSet("LOTTO_LOGGING_OUTPUT") {
		cfg.Logging.Output = file.Logging.Output
	}
	if file.Logging.FilePath != "" && !envSet("LOTTO_LOGGING_FILE_PATH") {
		cfg.Logging.FilePath = file.Logging.FilePath
	}

	if file.Paths.DataDir != "" && !envSet("LOTTO_PATHS_DATA_DIR") {
		cfg.Paths.DataDir = file.Paths.DataDir
	}
	if file.Paths.ExportsDir != "" && !envSet("LOTTO_PATHS_EXPORTS_DIR") {
		cfg.Paths.ExportsDir = file.Paths.ExportsDir
	}
	if file.Paths.LogsDir != "" && !envSet("LOTTO_PATHS_LOGS_DIR") {
		cfg.Paths.LogsDir = file.Paths.LogsDir
	}

	if file.Profile.Name != "" && !envSet("LOTTO_PROFILE_NAME") {
		cfg.Profile.Name = file.Profile.Name
	}
	if file.Profile.TotalNumbers != 0 && !envSet("LOTTO_PROFILE_TOTAL_NUMBERS") {
		cfg.Profile.TotalNumbers = file.Profile.TotalNumbers
	}
	if file.Profile.DrawSize != 0 && !envSet("LOTTO_PROFILE_DRAW_SIZE") {
		cfg.Profile.DrawSize = file.Profile.DrawSize
	}
	if file.Profile.BetSize != 0 && !envSet("LOTTO_PROFILE_BET_SIZE") {
		cfg.Profile.BetSize = file.Profile.BetSize
	}
	if file.Profile.HotCount != 0 && !envSet("LOTTO_PROFILE_HOT_COUNT") {
		cfg.Profile.HotCount = file.Profile.HotCount
	}
	if file.Profile.ColdCount != 0 && !envSet("LOTTO_PROFILE_COLD_COUNT") {
		cfg.Profile.ColdCount = file.Profile.ColdCount
	}
}

// envSet reports whether the variable was set explicitly in the environment.
func envSet(key string) bool {
	_, ok := os.LookupEnv(key)
	return ok
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if err := c.Profile.ToProfile().Validate(); err != nil {
		return fmt.Errorf("invalid default profile: %w", err)
	}
	return nil
}

// EnsureDirectories creates the configured directories if missing.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.DataDir, c.Paths.ExportsDir, c.Paths.LogsDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// ExportPath resolves a file name inside the exports directory.
func (c *Config) ExportPath(name string) string {
	return filepath.Join(c.Paths.ExportsDir, name)
}

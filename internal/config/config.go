// Package config loads the service configuration file
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/mapgen"
)

// Defaults for the server section
const (
	DefaultPort      = 50051
	DefaultRecordTTL = 24 * time.Hour
)

// Config is the root of the YAML file
type Config struct {
	Server     ServerConfig   `yaml:"server"`
	Generation *mapgen.Config `yaml:"generation"`
}

// ServerConfig holds transport and storage settings
type ServerConfig struct {
	Port int `yaml:"port"`
	// RedisAddr selects the Redis level repository. Empty keeps records in memory.
	RedisAddr string        `yaml:"redis_addr"`
	RecordTTL time.Duration `yaml:"record_ttl"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:      DefaultPort,
			RecordTTL: DefaultRecordTTL,
		},
		Generation: mapgen.DefaultConfig(),
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path) // #nosec G304 - operator supplied path
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("config file %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	if err := Parse(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes YAML into cfg, keeping any value the document leaves out,
// and validates the result
func Parse(data []byte, cfg *Config) error {
	if cfg == nil {
		return errors.InvalidArgument("config is required")
	}
	if cfg.Generation == nil {
		cfg.Generation = mapgen.DefaultConfig()
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse config")
	}
	if cfg.Generation == nil {
		cfg.Generation = mapgen.DefaultConfig()
	}

	return cfg.Validate()
}

// Validate checks both sections
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("server.port", c.Server.Port, 1, 65535, vb)
	if c.Server.RecordTTL <= 0 {
		vb.Field("server.record_ttl", "must be positive")
	}
	if err := vb.Build(); err != nil {
		return err
	}

	if c.Generation == nil {
		return errors.InvalidArgument("generation config is required")
	}
	if err := c.Generation.Validate(); err != nil {
		return errors.Wrap(err, "invalid generation config")
	}
	return nil
}

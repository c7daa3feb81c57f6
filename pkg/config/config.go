// Package config provides the configuration for hackdeck.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// ErrNilConfig is returned when a nil config is passed where one is required.
var ErrNilConfig = errors.New("nil config")

// HTTPConfig is the HTTP API configuration for the server.
type HTTPConfig struct {
	// Enabled is whether or not the HTTP server is enabled.
	Enabled bool `env:"ENABLED" yaml:"enabled"`

	// ListenAddr is the address on which the HTTP server will listen.
	ListenAddr string `env:"LISTEN_ADDR" yaml:"listen_addr"`

	// PublicURL is the public URL of the HTTP server.
	PublicURL string `env:"PUBLIC_URL" yaml:"public_url"`
}

// StatsConfig is the configuration for the stats server.
type StatsConfig struct {
	// Enabled is whether or not the stats server is enabled.
	Enabled bool `env:"ENABLED" yaml:"enabled"`

	// ListenAddr is the address on which the stats server will listen.
	ListenAddr string `env:"LISTEN_ADDR" yaml:"listen_addr"`
}

// LogConfig is the logger configuration.
type LogConfig struct {
	// Format is the format of the logs.
	// Valid values are "json", "logfmt", and "text".
	Format string `env:"FORMAT" yaml:"format"`

	// Time format for the log `ts` field.
	// Format must be described in Golang's time format.
	TimeFormat string `env:"TIME_FORMAT" yaml:"time_format"`

	// Path to a file to write logs to.
	// If not set, logs will be written to stderr.
	Path string `env:"PATH" yaml:"path"`
}

// DBConfig is the database connection configuration.
type DBConfig struct {
	// Driver is the driver for the database.
	Driver string `env:"DRIVER" yaml:"driver"`

	// DataSource is the database data source name.
	DataSource string `env:"DATA_SOURCE" yaml:"data_source"`
}

// StorageConfig is the object storage and URL signing configuration.
// Submission files live under Container at durable blob paths. AccountName
// and AccountKey form the shared-key credential used to sign capability
// URLs; when the credential is absent file delivery degrades to unsigned
// URLs instead of failing.
type StorageConfig struct {
	// AccountName is the storage account name.
	AccountName string `env:"ACCOUNT_NAME" yaml:"account_name"`

	// AccountKey is the storage account shared key.
	AccountKey string `env:"ACCOUNT_KEY" yaml:"account_key"`

	// Container is the container holding submission files.
	Container string `env:"CONTAINER" yaml:"container"`
}

// JWTConfig is the API token configuration.
type JWTConfig struct {
	// Secret is the symmetric signing secret for API bearer tokens.
	Secret string `env:"SECRET" yaml:"secret"`
}

// JobsConfig is the configuration for cron jobs.
type JobsConfig struct {
	// LifecycleSweep is the cron spec for the clock-driven status sweep.
	LifecycleSweep string `env:"LIFECYCLE_SWEEP" yaml:"lifecycle_sweep"`
}

// Config is the configuration for hackdeck.
type Config struct {
	// Name is the name of the server.
	Name string `env:"NAME" yaml:"name"`

	// HTTP is the configuration for the HTTP server.
	HTTP HTTPConfig `envPrefix:"HTTP_" yaml:"http"`

	// Stats is the configuration for the stats server.
	Stats StatsConfig `envPrefix:"STATS_" yaml:"stats"`

	// Log is the logger configuration.
	Log LogConfig `envPrefix:"LOG_" yaml:"log"`

	// DB is the database configuration.
	DB DBConfig `envPrefix:"DB_" yaml:"db"`

	// Storage is the object storage and signing configuration.
	Storage StorageConfig `envPrefix:"STORAGE_" yaml:"storage"`

	// JWT is the API token configuration.
	JWT JWTConfig `envPrefix:"JWT_" yaml:"jwt"`

	// Jobs is the configuration for cron jobs.
	Jobs JobsConfig `envPrefix:"JOBS_" yaml:"jobs"`

	// DataPath is the path to the directory where hackdeck stores its data.
	DataPath string `env:"DATA_PATH" yaml:"-"`
}

// IsDebug returns true if the server is running in debug mode.
func IsDebug() bool {
	debug, _ := strconv.ParseBool(os.Getenv("HACKDECK_DEBUG"))
	return debug
}

// IsVerbose returns true if the server is running in verbose mode.
// Verbose mode is only enabled if debug mode is enabled.
func IsVerbose() bool {
	verbose, _ := strconv.ParseBool(os.Getenv("HACKDECK_VERBOSE"))
	return IsDebug() && verbose
}

// ConfigPath returns the path to the config file.
func (c *Config) ConfigPath() string { // nolint:revive
	return filepath.Join(c.DataPath, "config.yaml")
}

// Exist returns true if the config file exists.
func (c *Config) Exist() bool {
	_, err := os.Stat(c.ConfigPath())
	return err == nil
}

// parseFile parses the given file as a configuration file.
// The file must be in YAML format.
func parseFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err //nolint:wrapcheck
	}

	defer f.Close() // nolint: errcheck
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}

	return cfg.Validate()
}

// ParseFile parses the config from the default file path.
// This also calls Validate() on the config.
func (c *Config) ParseFile() error {
	return parseFile(c, c.ConfigPath())
}

// parseEnv parses the environment variables as a configuration file.
func parseEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{
		Prefix: "HACKDECK_",
	}); err != nil {
		return fmt.Errorf("parse environment variables: %w", err)
	}

	return cfg.Validate()
}

// ParseEnv parses the config from the environment variables.
// This also calls Validate() on the config.
func (c *Config) ParseEnv() error {
	return parseEnv(c)
}

// Parse parses the config from the default file path and environment
// variables. This also calls Validate() on the config.
func (c *Config) Parse() error {
	if err := c.ParseFile(); err != nil {
		return err
	}

	return c.ParseEnv()
}

// WriteConfig writes the config to the default file path.
func (c *Config) WriteConfig() error {
	if err := os.MkdirAll(filepath.Dir(c.ConfigPath()), 0o755); err != nil {
		return err //nolint:wrapcheck
	}

	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(c.ConfigPath(), b, 0o600) //nolint:wrapcheck
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c == nil {
		return ErrNilConfig
	}

	if c.HTTP.Enabled && c.HTTP.ListenAddr == "" {
		return fmt.Errorf("http listen address is required")
	}

	if c.DB.Driver == "" {
		return fmt.Errorf("database driver is required")
	}

	return nil
}

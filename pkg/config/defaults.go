package config

import (
	"os"
	"path/filepath"
)

// DefaultDataPath returns the path to the data directory.
// It uses the HACKDECK_DATA_PATH environment variable if set, otherwise it
// uses "data" relative to the current working directory.
func DefaultDataPath() string {
	dp := os.Getenv("HACKDECK_DATA_PATH")
	if dp == "" {
		dp = "data"
	}

	return dp
}

// DefaultConfig returns the default Config.
func DefaultConfig() *Config {
	dataPath := DefaultDataPath()
	return &Config{
		Name:     "Hackdeck",
		DataPath: dataPath,
		HTTP: HTTPConfig{
			Enabled:    true,
			ListenAddr: ":8080",
			PublicURL:  "http://localhost:8080",
		},
		Stats: StatsConfig{
			Enabled:    false,
			ListenAddr: "localhost:8081",
		},
		DB: DBConfig{
			Driver:     "sqlite",
			DataSource: filepath.Join(dataPath, "hackdeck.db") + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)",
		},
		Storage: StorageConfig{
			Container: "submissions",
		},
		Jobs: JobsConfig{
			LifecycleSweep: "@every 1m",
		},
	}
}

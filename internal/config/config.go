package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk application configuration. Every field has a
// working default so a missing config file is not an error.
type Config struct {
	// DataDir holds the database and the session store.
	DataDir string `yaml:"data_dir"`
	// BestEffortMigrations keeps the app running after a failed schema
	// migration instead of refusing to start. Off by default.
	BestEffortMigrations bool `yaml:"best_effort_migrations"`
}

func defaultConfig() Config {
	return Config{DataDir: defaultDataDir()}
}

func defaultDataDir() string {
	if fromEnv := os.Getenv("FITTRACK_DATA_DIR"); fromEnv != "" {
		return fromEnv
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "data"
	}
	return filepath.Join(home, ".fittrack")
}

// Load reads the config file, falling back to defaults when it does not
// exist. An unreadable or malformed file is an error; silently ignoring it
// would mask typos.
func Load(path string) (Config, error) {
	cfg := defaultConfig()

	if path == "" {
		path = filepath.Join(cfg.DataDir, "config.yaml")
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.DataDir == "" {
		cfg.DataDir = defaultDataDir()
	}
	return cfg, nil
}

func (cfg Config) DatabasePath() string {
	return filepath.Join(cfg.DataDir, "fittrack.db")
}

func (cfg Config) SessionDir() string {
	return filepath.Join(cfg.DataDir, "session")
}

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultBackendURL  = "http://127.0.0.1:5000"
	defaultTimeoutSecs = 15
	defaultLogLevel    = "info"

	envBackendURL = "BOTTLEBUDDY_BACKEND_URL"
	envLogLevel   = "BOTTLEBUDDY_LOG_LEVEL"
)

// BackendConfig holds connection details for the wine search backend.
type BackendConfig struct {
	URL         string `yaml:"url"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// Timeout returns the request timeout as a duration.
func (b BackendConfig) Timeout() time.Duration {
	return time.Duration(b.TimeoutSecs) * time.Second
}

// LogConfig selects where diagnostic logs go. The terminal belongs to the
// TUI, so logs always go to a file; "-" disables logging.
type LogConfig struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Backend BackendConfig `yaml:"backend"`
	Log     LogConfig     `yaml:"log"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
// Environment overrides are applied in both cases.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := defaultConfig()
			applyEnv(cfg)
			return cfg, nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	applyEnv(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/bottlebuddy/config.yaml.
// If neither exists, it writes defaults to ~/.config/bottlebuddy/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	applyEnv(cfg)
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "bottlebuddy"), nil
}

func defaultUserConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func defaultLogPath() string {
	dir, err := configDir()
	if err != nil {
		return "-"
	}
	return filepath.Join(dir, "bottlebuddy.log")
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Backend: BackendConfig{URL: defaultBackendURL, TimeoutSecs: defaultTimeoutSecs},
		Log:     LogConfig{Path: defaultLogPath(), Level: defaultLogLevel},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Backend.URL == "" {
		cfg.Backend.URL = defaultBackendURL
	}
	if cfg.Backend.TimeoutSecs == 0 {
		cfg.Backend.TimeoutSecs = defaultTimeoutSecs
	}
	if cfg.Log.Path == "" {
		cfg.Log.Path = defaultLogPath()
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaultLogLevel
	}
	cfg.Backend.URL = strings.TrimRight(cfg.Backend.URL, "/")
}

func applyEnv(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv(envBackendURL)); v != "" {
		cfg.Backend.URL = strings.TrimRight(v, "/")
	}
	if v := strings.TrimSpace(os.Getenv(envLogLevel)); v != "" {
		cfg.Log.Level = v
	}
}

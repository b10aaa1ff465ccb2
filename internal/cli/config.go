package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Config holds the optional defaults read from the spcert config file.
// Flags always override config values.
type Config struct {
	// LogLevel is one of "debug", "info", or "warn".
	LogLevel string `toml:"log_level"`
	// Seed is the default generator seed; 0 means time-based.
	Seed int64 `toml:"seed"`
}

// logLevel maps the configured level name to a log level, falling back
// to def for an empty or unknown name.
func (c Config) logLevel(def log.Level) log.Level {
	switch c.LogLevel {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn":
		return log.WarnLevel
	case "":
		return def
	default:
		return def
	}
}

// configPath returns the config file location using the XDG standard
// (~/.config/spcert/spcert.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, appName+".toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, appName+".toml"), nil
}

// loadConfig reads the config file if present. A missing file yields the
// zero config and no error; a malformed file yields the zero config and
// the parse error so callers can warn without aborting.
func loadConfig() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Config{}, nil
	}
	return loadConfigFile(path)
}

// loadConfigFile reads and decodes one TOML config file.
func loadConfigFile(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config captures the settings SMS Shield needs at startup.
type Config struct {
	Endpoint string
	Timeout  time.Duration
	LogFile  string
}

const (
	envPrefix         = "SMSSHIELD"
	defaultConfigPath = "~/.config/smsshield/config.toml"
	defaultLogFile    = "~/.local/state/smsshield/smsshield.log"
	defaultTimeout    = "10s"
)

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"endpoint": "endpoint",
	"timeout":  "timeout",
	"log-file": "log_file",
}

// Load resolves configuration from flags, environment, the TOML file at path
// (or the default location), and built-in defaults, in that order of
// precedence. A missing file is not an error.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetDefault("endpoint", "")
	v.SetDefault("timeout", defaultTimeout)
	v.SetDefault("log_file", defaultLogFile)

	v.SetConfigType("toml")
	v.SetConfigFile(resolved)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	// BACKEND_URL mirrors the deploy-time variable of the web client.
	if err := v.BindEnv("endpoint", envPrefix+"_ENDPOINT", envPrefix+"_BACKEND_URL"); err != nil {
		return Config{}, fmt.Errorf("bind env: %w", err)
	}

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := Config{
		Endpoint: strings.TrimSpace(v.GetString("endpoint")),
	}

	cfg.Timeout, err = parseTimeout(v.GetString("timeout"))
	if err != nil {
		return Config{}, err
	}

	logFile := strings.TrimSpace(v.GetString("log_file"))
	if logFile == "" {
		logFile = defaultLogFile
	}
	cfg.LogFile = mustExpand(logFile)

	return cfg, nil
}

// DefaultPath returns the config file consulted when no path is given.
func DefaultPath() string {
	return mustExpand(defaultConfigPath)
}

func parseTimeout(raw string) (time.Duration, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = defaultTimeout
	}
	if secs, err := strconv.Atoi(trimmed); err == nil {
		trimmed = strconv.Itoa(secs) + "s"
	}
	d, err := time.ParseDuration(trimmed)
	if err != nil {
		return 0, fmt.Errorf("parse timeout %q: %w", raw, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("parse timeout %q: must be positive", raw)
	}
	return d, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

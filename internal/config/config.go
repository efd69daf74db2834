package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/viper"

	"github.com/sparkentic/sparkentic/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyTemplatesDir = "templates_dir"
	KeyColor        = "color"
	KeyLogLevel     = "log_level"
)

// Keys lists every setting "config set" accepts.
var Keys = []string{KeyTemplatesDir, KeyColor, KeyLogLevel}

// Dir returns the path to the config directory (~/.sparkentic/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load points viper at the config file and environment and sets defaults.
// A missing config file is not an error.
func Load() error {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyColor, "auto")
	viper.SetDefault(KeyLogLevel, "warn")
	viper.SetDefault(KeyTemplatesDir, "")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", FilePath(), err)
	}
	return nil
}

// Get returns a setting, or "" when unset.
func Get(key string) string {
	return viper.GetString(key)
}

// Set validates and persists a setting to the config file.
func Set(key, value string) error {
	if !slices.Contains(Keys, key) {
		return fmt.Errorf("unknown key %q (known keys: %v)", key, Keys)
	}
	if key == KeyColor && !slices.Contains([]string{"auto", "always", "never"}, value) {
		return fmt.Errorf("color must be auto, always or never, got %q", value)
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

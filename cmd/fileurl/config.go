package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/arch-stack/fileurl"
)

// Settings holds user-configurable conversion defaults
type Settings struct {
	// Platform selects the path convention
	// Valid values: "posix", "windows", "native"
	// Default: "native"
	Platform string `mapstructure:"platform"`
	// Lossy substitutes U+FFFD for text the strict convention would
	// reject, instead of failing
	// Default: false
	Lossy bool `mapstructure:"lossy"`
	// Verbose enables debug logging
	// Default: false
	Verbose bool `mapstructure:"verbose"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Platform: "native",
	}
}

// LoadSettings reads .fileurl.toml from dir if present, then applies
// FILEURL_* environment variables on top
func LoadSettings(dir string) (*Settings, error) {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetEnvPrefix("FILEURL")
	v.AutomaticEnv()
	v.SetDefault("platform", "native")
	v.SetDefault("lossy", false)
	v.SetDefault("verbose", false)

	configPath := filepath.Join(dir, ".fileurl.toml")
	if _, err := os.Stat(configPath); err == nil {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			slog.Warn("failed to load config, using defaults", "path", configPath, "error", err)
		}
	}

	settings := DefaultSettings()
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("unmarshaling settings: %w", err)
	}

	return settings, nil
}

// PlatformValue maps the platform setting to its fileurl.Platform
func (s *Settings) PlatformValue() (fileurl.Platform, error) {
	switch strings.ToLower(s.Platform) {
	case "", "native":
		return fileurl.Default(), nil
	case "posix":
		return fileurl.Posix, nil
	case "windows":
		return fileurl.Windows, nil
	default:
		return nil, fmt.Errorf("unknown platform %q", s.Platform)
	}
}

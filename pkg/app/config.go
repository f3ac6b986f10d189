package app

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"farmstand/pkg/notify"
)

// Config is the serve configuration: defaults, then the yaml file, then PORT, then flags.
type Config struct {
	Port          int                `yaml:"port"`
	CatalogPath   string             `yaml:"catalog_path"`
	WatchCatalog  bool               `yaml:"watch_catalog"`
	Notifications NotificationConfig `yaml:"notifications"`
}

// NotificationConfig tunes toast timings.
type NotificationConfig struct {
	Display    time.Duration `yaml:"display"`
	Transition time.Duration `yaml:"transition"`
}

// DefaultConfig serves the embedded catalog on 8765.
func DefaultConfig() Config {
	return Config{
		Port:         8765,
		WatchCatalog: true,
		Notifications: NotificationConfig{
			Display:    notify.DefaultDisplay,
			Transition: notify.DefaultTransition,
		},
	}
}

// LoadConfig reads path over the defaults; an empty path skips the file.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		cfg.Port = p
	}
	return cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.Notifications.Display <= 0 || c.Notifications.Transition < 0 {
		return fmt.Errorf("notification timings must be positive")
	}
	return nil
}

// address converts port configuration into a binding string.
func (c Config) address() string {
	return ":" + strconv.Itoa(c.Port)
}

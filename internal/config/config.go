// Package config loads settings for the site server and markup audit.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/Its-donkey/ai-directory/internal/ui/model"
	"github.com/Its-donkey/ai-directory/logging"
)

// EnvPrefix marks environment overrides, e.g. SITE_LISTEN or SITE_LOG_LEVEL.
const EnvPrefix = "SITE_"

// Config holds everything the native commands need.
type Config struct {
	Listen      string      `koanf:"listen"`
	Dir         string      `koanf:"dir"`
	LogLevel    string      `koanf:"log_level"`
	LogDir      string      `koanf:"log_dir"`
	CORSOrigins []string    `koanf:"cors_origins"`
	Pages       []string    `koanf:"pages"`
	Hooks       model.Hooks `koanf:"hooks"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Listen:   "127.0.0.1:4173",
		Dir:      "web",
		LogLevel: "info",
		Pages:    []string{"index.html", "submit-ai.html"},
		Hooks:    model.DefaultHooks(),
	}
}

// Load starts from Default, overlays the YAML file at path when it exists,
// then overlays SITE_* environment variables.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	cfg.Hooks = cfg.Hooks.WithDefaults()
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Listen) == "" {
		return fmt.Errorf("listen address is required")
	}
	if strings.TrimSpace(c.Dir) == "" {
		return fmt.Errorf("site dir is required")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the parsed log level, defaulting to INFO.
func (c *Config) Level() logging.Level {
	level, _ := logging.ParseLevel(c.LogLevel)
	return level
}

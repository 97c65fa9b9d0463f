package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Its-donkey/ai-directory/internal/ui/model"
	"github.com/Its-donkey/ai-directory/logging"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Listen != "127.0.0.1:4173" || cfg.Dir != "web" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Hooks.Form != model.DefaultHooks().Form || cfg.Hooks.FieldID(model.FieldListingName) != "aiName" {
		t.Fatalf("expected default hooks, got %+v", cfg.Hooks)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadFileAndEnvOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yml")
	content := `listen: ":9000"
dir: public
log_level: debug
cors_origins:
  - https://example.com
pages:
  - home.html
hooks:
  form: listingForm
  fields:
    listingName: toolName
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("SITE_LISTEN", ":9100")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Listen != ":9100" {
		t.Fatalf("expected env to win for listen, got %q", cfg.Listen)
	}
	if cfg.Dir != "public" {
		t.Fatalf("expected dir from file, got %q", cfg.Dir)
	}
	if cfg.Level() != logging.DEBUG {
		t.Fatalf("expected DEBUG level, got %v", cfg.Level())
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "https://example.com" {
		t.Fatalf("unexpected cors origins: %v", cfg.CORSOrigins)
	}
	if len(cfg.Pages) != 1 || cfg.Pages[0] != "home.html" {
		t.Fatalf("unexpected pages: %v", cfg.Pages)
	}
	if cfg.Hooks.Form != "listingForm" {
		t.Fatalf("expected form hook override, got %q", cfg.Hooks.Form)
	}
	if got := cfg.Hooks.FieldID(model.FieldListingName); got != "toolName" {
		t.Fatalf("expected field override, got %q", got)
	}
	if got := cfg.Hooks.FieldID(model.FieldSubmitterEmail); got != "userEmail" {
		t.Fatalf("expected default field id, got %q", got)
	}
	if cfg.Hooks.Modal != model.DefaultHooks().Modal {
		t.Fatalf("expected default modal hook, got %q", cfg.Hooks.Modal)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yml")
	if err := os.WriteFile(path, []byte("listen: [unterminated"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for malformed yaml")
	}
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"empty listen": func(c *Config) { c.Listen = " " },
		"empty dir":    func(c *Config) { c.Dir = "" },
		"bad level":    func(c *Config) { c.LogLevel = "loud" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

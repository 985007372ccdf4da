package runtimeconfig_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-yed-palette/internal/runtimeconfig"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
	if cfg.Generator.Prefix != "AWS - " {
		t.Fatalf("expected default prefix, got %q", cfg.Generator.Prefix)
	}
}

func TestConfigValidate_RejectsPrefixWithSeparator(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Generator.Prefix = "../AWS - "

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrGeneratorPrefixInvalid) {
		t.Fatalf("expected ErrGeneratorPrefixInvalid, got %v", err)
	}
}

func TestConfigValidate_RequiresLoggingProvider(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Logging.Provider = " "

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingProviderRequired) {
		t.Fatalf("expected ErrLoggingProviderRequired, got %v", err)
	}
}

func TestConfigValidate_RejectsUnknownLoggingProvider(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Logging.Provider = "syslog"

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}
}

func TestConfigValidate_RejectsInvalidLevel(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Logging.Level = "verbose"

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}
}

func TestConfigValidate_RejectsInvalidGologgerFormat(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Format = "xml"

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}
}

func TestLoadFileOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.yaml")
	doc := "generator:\n  template: custom.mustache\nlogging:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := runtimeconfig.DefaultConfig()
	if err := runtimeconfig.LoadFile(path, &cfg); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if cfg.Generator.TemplatePath != "custom.mustache" {
		t.Fatalf("expected template path from file, got %q", cfg.Generator.TemplatePath)
	}
	if cfg.Generator.Prefix != runtimeconfig.DefaultPrefix {
		t.Fatalf("expected prefix default to survive, got %q", cfg.Generator.Prefix)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Provider != "console" {
		t.Fatalf("unexpected logging config %+v", cfg.Logging)
	}
}

func TestLoadFileReportsMissingFile(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	if err := runtimeconfig.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), &cfg); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadAppliesEnvironmentAfterFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.yaml")
	if err := os.WriteFile(path, []byte("generator:\n  prefix: \"Icons - \"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("PALETTE_PREFIX", "Env - ")
	t.Setenv("PALETTE_LOG_FOCUS", "palette.generator,palette.tooltips")

	cfg, err := runtimeconfig.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Generator.Prefix != "Env - " {
		t.Fatalf("expected env prefix to win, got %q", cfg.Generator.Prefix)
	}
	if len(cfg.Logging.Focus) != 2 || cfg.Logging.Focus[1] != "palette.tooltips" {
		t.Fatalf("unexpected focus %v", cfg.Logging.Focus)
	}
}

func TestLoadFileRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.yaml")
	content := "generator:\n  prefx: \"Icons - \"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := runtimeconfig.DefaultConfig()
	err := runtimeconfig.LoadFile(path, &cfg)
	if !errors.Is(err, runtimeconfig.ErrConfigSchema) {
		t.Fatalf("expected ErrConfigSchema, got %v", err)
	}
	if cfg.Generator.Prefix != runtimeconfig.DefaultPrefix {
		t.Fatalf("expected config untouched on schema failure, got %q", cfg.Generator.Prefix)
	}
}

func TestLoadFileRejectsMistypedValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.yaml")
	content := "logging:\n  add_source: \"yes please\"\n  provider: syslog\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := runtimeconfig.DefaultConfig()
	if err := runtimeconfig.LoadFile(path, &cfg); !errors.Is(err, runtimeconfig.ErrConfigSchema) {
		t.Fatalf("expected ErrConfigSchema, got %v", err)
	}
}

func TestLoadFileAcceptsEmptyDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.yaml")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := runtimeconfig.DefaultConfig()
	if err := runtimeconfig.LoadFile(path, &cfg); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Logging.Provider != "console" {
		t.Fatalf("expected defaults kept, got %q", cfg.Logging.Provider)
	}
}

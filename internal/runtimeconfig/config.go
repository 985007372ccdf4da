package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultPrefix is prepended to every generated document name.
const DefaultPrefix = "AWS - "

var ErrGeneratorPrefixInvalid = errors.New("palette config: generator prefix must not contain path separators")
var ErrLoggingProviderRequired = errors.New("palette config: logging provider is required")
var ErrLoggingProviderUnknown = errors.New("palette config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("palette config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("palette config: logging format is invalid")

// Config aggregates the settings shared by the palette commands.
type Config struct {
	Generator GeneratorConfig `yaml:"generator"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// GeneratorConfig controls how palette documents are named and rendered.
type GeneratorConfig struct {
	// Prefix is prepended to the category name to build the document file name.
	Prefix string `yaml:"prefix" env:"PALETTE_PREFIX"`
	// TemplatePath points at a mustache template replacing the embedded one.
	TemplatePath string `yaml:"template" env:"PALETTE_TEMPLATE"`
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string   `yaml:"provider" env:"PALETTE_LOG_PROVIDER"`
	Level     string   `yaml:"level" env:"PALETTE_LOG_LEVEL"`
	Format    string   `yaml:"format" env:"PALETTE_LOG_FORMAT"`
	AddSource bool     `yaml:"add_source" env:"PALETTE_LOG_ADD_SOURCE"`
	Focus     []string `yaml:"focus" env:"PALETTE_LOG_FOCUS" envSeparator:","`
}

func DefaultConfig() Config {
	return Config{
		Generator: GeneratorConfig{
			Prefix: DefaultPrefix,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "warn",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.ContainsAny(cfg.Generator.Prefix, `/\`) {
		return fmt.Errorf("%w: %q", ErrGeneratorPrefixInvalid, cfg.Generator.Prefix)
	}

	provider := normalizeProvider(cfg.Logging.Provider)
	if provider == "" {
		return ErrLoggingProviderRequired
	}
	if !isSupportedProvider(provider) {
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if provider == "gologger" {
		if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}

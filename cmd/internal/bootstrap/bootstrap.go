// Package bootstrap holds the configuration and logging setup shared by the
// palette command line tools.
package bootstrap

import (
	"flag"
	"io"
	"strings"

	"github.com/goliatone/go-yed-palette/internal/logging/console"
	"github.com/goliatone/go-yed-palette/internal/logging/gologger"
	"github.com/goliatone/go-yed-palette/internal/paletteerrors"
	"github.com/goliatone/go-yed-palette/internal/runtimeconfig"
	"github.com/goliatone/go-yed-palette/pkg/interfaces"
)

// LoggingFlags binds the logging flags common to every tool.
type LoggingFlags struct {
	Config *string
	Level  *string
	Format *string
}

// RegisterLoggingFlags adds -config, -log-level and -log-format to fs.
func RegisterLoggingFlags(fs *flag.FlagSet) LoggingFlags {
	return LoggingFlags{
		Config: fs.String("config", "", "Optional YAML configuration file"),
		Level:  fs.String("log-level", "", "Minimum log level (trace, debug, info, warn, error)"),
		Format: fs.String("log-format", "", "go-logger output format (console, json, pretty)"),
	}
}

// Apply copies the logging flags the user set onto cfg.
func (f LoggingFlags) Apply(fs *flag.FlagSet, cfg *runtimeconfig.Config) {
	Visited(fs, map[string]func(){
		"log-level":  func() { cfg.Logging.Level = *f.Level },
		"log-format": func() { cfg.Logging.Format = *f.Format },
	})
}

// Visited runs the callback registered for every flag set on the command
// line, leaving config values untouched for flags left at their defaults.
func Visited(fs *flag.FlagSet, setters map[string]func()) {
	fs.Visit(func(fl *flag.Flag) {
		if set, ok := setters[fl.Name]; ok {
			set()
		}
	})
}

// LoadConfig resolves defaults, the optional YAML file and environment
// overrides, lets override adjust the result, then validates it.
func LoadConfig(path string, override func(*runtimeconfig.Config)) (runtimeconfig.Config, error) {
	path = strings.TrimSpace(path)
	cfg, err := runtimeconfig.Load(path)
	if err != nil {
		return runtimeconfig.Config{}, paletteerrors.Configuration(err, path)
	}
	if override != nil {
		override(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return runtimeconfig.Config{}, paletteerrors.Configuration(err, path)
	}
	return cfg, nil
}

// LoggerProvider builds the provider selected by cfg. Console output goes to
// stderr so it never mixes with progress lines on stdout.
func LoggerProvider(cfg runtimeconfig.LoggingConfig, stderr io.Writer) (interfaces.LoggerProvider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		})
		if err != nil {
			return nil, paletteerrors.Configuration(err, "")
		}
		return provider, nil
	default:
		opts := console.Options{Writer: stderr}
		if level, ok := console.ParseLevel(cfg.Level); ok {
			opts.MinLevel = &level
		}
		return console.NewProvider(opts), nil
	}
}

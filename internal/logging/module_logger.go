package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-yed-palette/pkg/interfaces"
)

const (
	rootModule      = "palette"
	generatorModule = "palette.generator"
	tooltipsModule  = "palette.tooltips"
)

const (
	fieldCategory = "category"
	fieldIconPath = "icon_path"
	fieldDocument = "document"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// GeneratorLogger returns the logger namespace reserved for palette generation.
func GeneratorLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, generatorModule)
}

// TooltipsLogger returns the logger namespace reserved for tooltip injection.
func TooltipsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, tooltipsModule)
}

// WithCategoryContext enriches the logger with the category being processed
// and, when known, the icon file or output document involved. Empty values
// are ignored.
func WithCategoryContext(logger interfaces.Logger, category, iconPath, document string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(category); trimmed != "" {
		fields[fieldCategory] = trimmed
	}
	if trimmed := strings.TrimSpace(iconPath); trimmed != "" {
		fields[fieldIconPath] = trimmed
	}
	if trimmed := strings.TrimSpace(document); trimmed != "" {
		fields[fieldDocument] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every log entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}

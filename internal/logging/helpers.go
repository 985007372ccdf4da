package logging

import (
	"maps"

	"github.com/goliatone/go-yed-palette/pkg/interfaces"
)

// WithFields returns a child of logger carrying a copy of fields. Loggers
// without FieldsLogger support, and empty field sets, return logger itself.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	with, ok := logger.(interfaces.FieldsLogger)
	if !ok || len(fields) == 0 {
		return logger
	}
	return with.WithFields(maps.Clone(fields))
}

// Ensure substitutes the no-op logger for nil.
func Ensure(logger interfaces.Logger) interfaces.Logger {
	if logger == nil {
		return NoOp()
	}
	return logger
}

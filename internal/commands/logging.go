package commands

import (
	"strings"

	"github.com/goliatone/go-yed-palette/internal/logging"
	"github.com/goliatone/go-yed-palette/pkg/interfaces"
)

// CommandLogger returns the logger for a group of command handlers, named
// "palette.commands.<group>".
func CommandLogger(provider interfaces.LoggerProvider, group string) interfaces.Logger {
	group = strings.TrimSpace(group)
	if group == "" {
		group = "default"
	}
	return logging.WithFields(logging.ModuleLogger(provider, "palette.commands."+group), map[string]any{
		"component":     "command",
		"command_group": group,
	})
}

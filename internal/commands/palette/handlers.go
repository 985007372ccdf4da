package palettecmd

import (
	"context"

	command "github.com/goliatone/go-command"
	"github.com/goliatone/go-yed-palette/internal/commands"
	"github.com/goliatone/go-yed-palette/internal/logging"
	"github.com/goliatone/go-yed-palette/internal/palette"
	"github.com/goliatone/go-yed-palette/internal/tooltips"
	"github.com/goliatone/go-yed-palette/pkg/interfaces"
)

const (
	generateOperation = "palette.generate"
	injectOperation   = "palette.inject_tooltips"
)

var (
	_ command.Commander[GeneratePalettesCommand] = (*GeneratePalettesHandler)(nil)
	_ command.Commander[InjectTooltipsCommand]   = (*InjectTooltipsHandler)(nil)
)

// PaletteGenerator is satisfied by *palette.Generator.
type PaletteGenerator interface {
	Run(ctx context.Context, inputDir, outputDir string) (*palette.RunResult, error)
}

// TooltipInjector is satisfied by *tooltips.Injector.
type TooltipInjector interface {
	Inject(ctx context.Context, path string, labels []string) (*tooltips.Result, error)
}

// GeneratePalettesHandler runs the generator through the shared command handler.
type GeneratePalettesHandler struct {
	inner *commands.Handler[GeneratePalettesCommand]
}

// NewGeneratePalettesHandler creates a handler bound to the supplied generator.
// The shared command timeout is disabled; a run lasts as long as the icon tree
// takes to convert.
func NewGeneratePalettesHandler(generator PaletteGenerator, logger interfaces.Logger, opts ...commands.HandlerOption[GeneratePalettesCommand]) *GeneratePalettesHandler {
	if generator == nil {
		panic("palettecmd: generator cannot be nil")
	}
	baseLogger := logging.Ensure(logger)

	exec := func(ctx context.Context, msg GeneratePalettesCommand) error {
		result, err := generator.Run(ctx, msg.InputDir, msg.OutputDir)
		if err != nil {
			return err
		}
		if result != nil {
			logging.WithFields(baseLogger, map[string]any{
				"categories": result.Categories,
				"documents":  len(result.Documents),
				"skipped":    len(result.Skipped),
			}).Info("palette.command.generate.completed")
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[GeneratePalettesCommand]{
		commands.WithLogger[GeneratePalettesCommand](baseLogger),
		commands.WithOperation[GeneratePalettesCommand](generateOperation),
		commands.WithTimeout[GeneratePalettesCommand](0),
		commands.WithMessageFields(func(msg GeneratePalettesCommand) map[string]any {
			return map[string]any{
				"input_dir":  msg.InputDir,
				"output_dir": msg.OutputDir,
			}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[GeneratePalettesCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &GeneratePalettesHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[GeneratePalettesCommand].
func (h *GeneratePalettesHandler) Execute(ctx context.Context, msg GeneratePalettesCommand) error {
	return h.inner.Execute(ctx, msg)
}

// InjectTooltipsHandler runs the tooltip injector through the shared command handler.
type InjectTooltipsHandler struct {
	inner *commands.Handler[InjectTooltipsCommand]
}

// NewInjectTooltipsHandler creates a handler bound to the supplied injector.
func NewInjectTooltipsHandler(injector TooltipInjector, logger interfaces.Logger, opts ...commands.HandlerOption[InjectTooltipsCommand]) *InjectTooltipsHandler {
	if injector == nil {
		panic("palettecmd: injector cannot be nil")
	}
	baseLogger := logging.Ensure(logger)

	exec := func(ctx context.Context, msg InjectTooltipsCommand) error {
		result, err := injector.Inject(ctx, msg.Path, msg.Labels)
		if err != nil {
			return err
		}
		if result != nil {
			logging.WithFields(baseLogger, map[string]any{
				"nodes":       result.Nodes,
				"keys":        len(result.TooltipKeys),
				"assignments": len(result.Assignments),
			}).Info("palette.command.inject_tooltips.completed")
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[InjectTooltipsCommand]{
		commands.WithLogger[InjectTooltipsCommand](baseLogger),
		commands.WithOperation[InjectTooltipsCommand](injectOperation),
		commands.WithTimeout[InjectTooltipsCommand](0),
		commands.WithMessageFields(func(msg InjectTooltipsCommand) map[string]any {
			return map[string]any{
				"path":   msg.Path,
				"labels": len(msg.Labels),
			}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[InjectTooltipsCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &InjectTooltipsHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[InjectTooltipsCommand].
func (h *InjectTooltipsHandler) Execute(ctx context.Context, msg InjectTooltipsCommand) error {
	return h.inner.Execute(ctx, msg)
}

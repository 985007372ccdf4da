package palettecmd

import (
	"errors"

	"github.com/goliatone/go-yed-palette/internal/commands"
	"github.com/goliatone/go-yed-palette/pkg/interfaces"
)

// CommandRegistry is the minimal registration contract expected when wiring command handlers.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// HandlerSet groups the handlers produced by RegisterPaletteCommands. A
// handler is nil when its backing service was not supplied.
type HandlerSet struct {
	Generate *GeneratePalettesHandler
	Inject   *InjectTooltipsHandler
}

// Option customises handler wiring during registration.
type Option func(*options)

type options struct {
	generateHandlerOpts []commands.HandlerOption[GeneratePalettesCommand]
	injectHandlerOpts   []commands.HandlerOption[InjectTooltipsCommand]
}

// WithGenerateHandlerOptions forwards options to the GeneratePalettesHandler constructor.
func WithGenerateHandlerOptions(opts ...commands.HandlerOption[GeneratePalettesCommand]) Option {
	return func(cfg *options) {
		cfg.generateHandlerOpts = append(cfg.generateHandlerOpts, opts...)
	}
}

// WithInjectHandlerOptions forwards options to the InjectTooltipsHandler constructor.
func WithInjectHandlerOptions(opts ...commands.HandlerOption[InjectTooltipsCommand]) Option {
	return func(cfg *options) {
		cfg.injectHandlerOpts = append(cfg.injectHandlerOpts, opts...)
	}
}

// RegisterPaletteCommands builds handlers for the supplied services and
// registers them with reg when it is non-nil. Either service may be nil, but
// not both.
func RegisterPaletteCommands(reg CommandRegistry, generator PaletteGenerator, injector TooltipInjector, provider interfaces.LoggerProvider, opts ...Option) (*HandlerSet, error) {
	if generator == nil && injector == nil {
		return nil, errors.New("palette command registration: no services supplied")
	}

	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	logger := commands.CommandLogger(provider, "palette")
	set := &HandlerSet{}

	if generator != nil {
		set.Generate = NewGeneratePalettesHandler(generator, logger, cfg.generateHandlerOpts...)
		if reg != nil {
			if err := reg.RegisterCommand(set.Generate); err != nil {
				return nil, err
			}
		}
	}
	if injector != nil {
		set.Inject = NewInjectTooltipsHandler(injector, logger, cfg.injectHandlerOpts...)
		if reg != nil {
			if err := reg.RegisterCommand(set.Inject); err != nil {
				return nil, err
			}
		}
	}

	return set, nil
}

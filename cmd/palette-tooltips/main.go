package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/goliatone/go-yed-palette/cmd/internal/bootstrap"
	palettecmd "github.com/goliatone/go-yed-palette/internal/commands/palette"
	"github.com/goliatone/go-yed-palette/internal/logging"
	"github.com/goliatone/go-yed-palette/internal/runtimeconfig"
	"github.com/goliatone/go-yed-palette/internal/tooltips"
)

const usage = "usage: palette-tooltips [flags] <graphml_file> < labels.txt"

var errUsage = errors.New(usage)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Fatalf("palette-tooltips: %v", err)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("palette-tooltips", flag.ContinueOnError)
	fs.SetOutput(stderr)
	logFlags := bootstrap.RegisterLoggingFlags(fs)

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errUsage
	}
	path := fs.Arg(0)

	cfg, err := bootstrap.LoadConfig(*logFlags.Config, func(cfg *runtimeconfig.Config) {
		logFlags.Apply(fs, cfg)
	})
	if err != nil {
		return err
	}

	provider, err := bootstrap.LoggerProvider(cfg.Logging, stderr)
	if err != nil {
		return err
	}

	labels, err := tooltips.ReadLabels(stdin)
	if err != nil {
		return err
	}

	injector := tooltips.NewInjector(
		tooltips.WithLogger(logging.TooltipsLogger(provider)),
		tooltips.WithProgress(stdout),
	)

	set, err := palettecmd.RegisterPaletteCommands(nil, nil, injector, provider)
	if err != nil {
		return err
	}

	msg := palettecmd.InjectTooltipsCommand{
		Path:   path,
		Labels: labels,
	}
	if err := set.Inject.Execute(context.Background(), msg); err != nil {
		return fmt.Errorf("inject tooltips: %w", err)
	}
	return nil
}

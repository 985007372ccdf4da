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
	"github.com/goliatone/go-yed-palette/internal/palette"
	"github.com/goliatone/go-yed-palette/internal/paletteerrors"
	"github.com/goliatone/go-yed-palette/internal/render"
	"github.com/goliatone/go-yed-palette/internal/runtimeconfig"
)

const usage = "usage: palette-gen [flags] <icon_dir> <output_dir>"

var errUsage = errors.New(usage)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatalf("palette-gen: %v", err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("palette-gen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	templatePath := fs.String("template", "", "Mustache template replacing the embedded GraphML template")
	prefix := fs.String("prefix", runtimeconfig.DefaultPrefix, "Prefix prepended to every document name")
	logFlags := bootstrap.RegisterLoggingFlags(fs)

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return errUsage
	}
	inputDir, outputDir := fs.Arg(0), fs.Arg(1)

	cfg, err := bootstrap.LoadConfig(*logFlags.Config, func(cfg *runtimeconfig.Config) {
		logFlags.Apply(fs, cfg)
		bootstrap.Visited(fs, map[string]func(){
			"template": func() { cfg.Generator.TemplatePath = *templatePath },
			"prefix":   func() { cfg.Generator.Prefix = *prefix },
		})
	})
	if err != nil {
		return err
	}

	provider, err := bootstrap.LoggerProvider(cfg.Logging, stderr)
	if err != nil {
		return err
	}

	tmpl, err := render.Load(cfg.Generator.TemplatePath)
	if err != nil {
		return paletteerrors.Configuration(err, cfg.Generator.TemplatePath)
	}

	generator := palette.NewGenerator(tmpl,
		palette.WithPrefix(cfg.Generator.Prefix),
		palette.WithLogger(logging.GeneratorLogger(provider)),
		palette.WithProgress(stdout),
	)

	set, err := palettecmd.RegisterPaletteCommands(nil, generator, nil, provider)
	if err != nil {
		return err
	}

	msg := palettecmd.GeneratePalettesCommand{
		InputDir:  inputDir,
		OutputDir: outputDir,
	}
	if err := set.Generate.Execute(context.Background(), msg); err != nil {
		return fmt.Errorf("generate palettes: %w", err)
	}
	return nil
}

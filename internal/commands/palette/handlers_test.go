package palettecmd

import (
	"context"
	"errors"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-yed-palette/internal/palette"
	"github.com/goliatone/go-yed-palette/internal/paletteerrors"
	"github.com/goliatone/go-yed-palette/internal/tooltips"
	"github.com/goliatone/go-yed-palette/pkg/interfaces"
)

type runCall struct {
	input  string
	output string
}

type stubGenerator struct {
	calls  []runCall
	result *palette.RunResult
	err    error
}

func (s *stubGenerator) Run(_ context.Context, inputDir, outputDir string) (*palette.RunResult, error) {
	s.calls = append(s.calls, runCall{input: inputDir, output: outputDir})
	return s.result, s.err
}

type injectCall struct {
	path   string
	labels []string
}

type stubInjector struct {
	calls  []injectCall
	result *tooltips.Result
	err    error
}

func (s *stubInjector) Inject(_ context.Context, path string, labels []string) (*tooltips.Result, error) {
	s.calls = append(s.calls, injectCall{path: path, labels: labels})
	return s.result, s.err
}

type captureLogger struct {
	fields       []map[string]any
	infoMessages []string
	errorCount   int
}

var _ interfaces.Logger = (*captureLogger)(nil)

func (c *captureLogger) Trace(string, ...any) {}
func (c *captureLogger) Debug(string, ...any) {}
func (c *captureLogger) Info(msg string, _ ...any) {
	c.infoMessages = append(c.infoMessages, msg)
}
func (c *captureLogger) Warn(string, ...any) {}
func (c *captureLogger) Error(string, ...any) {
	c.errorCount++
}
func (c *captureLogger) Fatal(string, ...any) {}

func (c *captureLogger) WithFields(fields map[string]any) interfaces.Logger {
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	c.fields = append(c.fields, copied)
	return c
}

func (c *captureLogger) WithContext(context.Context) interfaces.Logger {
	return c
}

func (c *captureLogger) logged(msg string) bool {
	for _, m := range c.infoMessages {
		if m == msg {
			return true
		}
	}
	return false
}

func TestGeneratePalettesHandlerInvokesGenerator(t *testing.T) {
	generator := &stubGenerator{
		result: &palette.RunResult{
			Categories: 2,
			Documents:  []palette.DocumentResult{{Category: "Storage", Path: "out/AWS - Storage.graphml", Icons: 2}},
			Skipped:    []string{"Empty"},
		},
	}
	logger := &captureLogger{}
	handler := NewGeneratePalettesHandler(generator, logger)

	err := handler.Execute(context.Background(), GeneratePalettesCommand{InputDir: "icons", OutputDir: "out"})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if len(generator.calls) != 1 {
		t.Fatalf("expected one generator call, got %d", len(generator.calls))
	}
	if generator.calls[0] != (runCall{input: "icons", output: "out"}) {
		t.Fatalf("unexpected call %+v", generator.calls[0])
	}
	if !logger.logged("palette.command.generate.completed") {
		t.Fatalf("expected completion log, got %v", logger.infoMessages)
	}
	if !logger.logged("command.execute.completed") {
		t.Fatalf("expected telemetry success log, got %v", logger.infoMessages)
	}

	var summary map[string]any
	for _, fields := range logger.fields {
		if _, ok := fields["documents"]; ok {
			summary = fields
		}
	}
	if summary == nil || summary["categories"] != 2 || summary["documents"] != 1 || summary["skipped"] != 1 {
		t.Fatalf("unexpected summary fields %v", summary)
	}
}

func TestGeneratePalettesHandlerValidationSkipsGenerator(t *testing.T) {
	generator := &stubGenerator{}
	handler := NewGeneratePalettesHandler(generator, nil)

	err := handler.Execute(context.Background(), GeneratePalettesCommand{InputDir: "icons"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
	if paletteerrors.IsConfiguration(err) {
		t.Fatalf("message validation must not be reported as configuration, got %v", err)
	}
	if len(generator.calls) != 0 {
		t.Fatalf("expected generator not to run, got %d calls", len(generator.calls))
	}
}

func TestGeneratePalettesHandlerPreservesIOCategory(t *testing.T) {
	generator := &stubGenerator{
		err: paletteerrors.IO(errors.New("denied"), "read icon", "icons/Storage/s3.svg"),
	}
	logger := &captureLogger{}
	handler := NewGeneratePalettesHandler(generator, logger)

	err := handler.Execute(context.Background(), GeneratePalettesCommand{InputDir: "icons", OutputDir: "out"})
	if !paletteerrors.IsIO(err) {
		t.Fatalf("expected io error, got %v", err)
	}
	if logger.errorCount == 0 {
		t.Fatal("expected failure to be logged")
	}
}

func TestGeneratePalettesHandlerHasNoDeadline(t *testing.T) {
	var hadDeadline bool
	generator := generatorFunc(func(ctx context.Context) {
		_, hadDeadline = ctx.Deadline()
	})
	handler := NewGeneratePalettesHandler(generator, nil)

	if err := handler.Execute(context.Background(), GeneratePalettesCommand{InputDir: "icons", OutputDir: "out"}); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if hadDeadline {
		t.Fatal("expected generator context without deadline")
	}
}

type generatorFunc func(ctx context.Context)

func (f generatorFunc) Run(ctx context.Context, _, _ string) (*palette.RunResult, error) {
	f(ctx)
	return nil, nil
}

func TestInjectTooltipsHandlerInvokesInjector(t *testing.T) {
	injector := &stubInjector{
		result: &tooltips.Result{
			Nodes:       2,
			TooltipKeys: []string{"d4"},
			Assignments: []tooltips.Assignment{
				{NodeID: "n0", KeyID: "d4", Label: "S3"},
				{NodeID: "n1", KeyID: "d4", Label: "Glacier"},
			},
		},
	}
	logger := &captureLogger{}
	handler := NewInjectTooltipsHandler(injector, logger)

	labels := []string{"S3", "Glacier"}
	if err := handler.Execute(context.Background(), InjectTooltipsCommand{Path: "p.graphml", Labels: labels}); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(injector.calls) != 1 || injector.calls[0].path != "p.graphml" || len(injector.calls[0].labels) != 2 {
		t.Fatalf("unexpected injector calls %+v", injector.calls)
	}
	if !logger.logged("palette.command.inject_tooltips.completed") {
		t.Fatalf("expected completion log, got %v", logger.infoMessages)
	}
}

func TestInjectTooltipsHandlerPreservesCountMismatch(t *testing.T) {
	injector := &stubInjector{err: paletteerrors.CountMismatch(3, 2)}
	handler := NewInjectTooltipsHandler(injector, nil)

	err := handler.Execute(context.Background(), InjectTooltipsCommand{Path: "p.graphml", Labels: []string{"a", "b"}})
	if !paletteerrors.IsCountMismatch(err) {
		t.Fatalf("expected count mismatch, got %v", err)
	}
}

func TestInjectTooltipsHandlerValidationSkipsInjector(t *testing.T) {
	injector := &stubInjector{}
	handler := NewInjectTooltipsHandler(injector, nil)

	if err := handler.Execute(context.Background(), InjectTooltipsCommand{}); err == nil {
		t.Fatal("expected validation error")
	}
	if len(injector.calls) != 0 {
		t.Fatalf("expected injector not to run, got %d calls", len(injector.calls))
	}
}

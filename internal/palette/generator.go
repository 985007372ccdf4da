package palette

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goliatone/go-yed-palette/internal/logging"
	"github.com/goliatone/go-yed-palette/internal/paletteerrors"
	"github.com/goliatone/go-yed-palette/internal/runtimeconfig"
	"github.com/goliatone/go-yed-palette/pkg/interfaces"
)

const documentExtension = ".graphml"

// DocumentWriter persists rendered documents.
type DocumentWriter interface {
	WriteDocument(ctx context.Context, path string, content []byte) error
}

// FileWriter writes documents to the local filesystem, replacing existing
// files.
type FileWriter struct{}

func (FileWriter) WriteDocument(_ context.Context, path string, content []byte) error {
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return paletteerrors.IO(err, "write document", path)
	}
	return nil
}

// DocumentResult describes one written document.
type DocumentResult struct {
	Category string
	Path     string
	Icons    int
}

// RunResult summarises a generator run.
type RunResult struct {
	Categories int
	Documents  []DocumentResult
	Skipped    []string
}

// Option configures a Generator.
type Option func(*Generator)

// WithPrefix overrides the document name prefix.
func WithPrefix(prefix string) Option {
	return func(g *Generator) {
		g.prefix = prefix
	}
}

// WithNameSource replaces the random node name source.
func WithNameSource(names NameSource) Option {
	return func(g *Generator) {
		if names != nil {
			g.names = names
		}
	}
}

// WithDocumentWriter replaces the filesystem writer.
func WithDocumentWriter(writer DocumentWriter) Option {
	return func(g *Generator) {
		if writer != nil {
			g.writer = writer
		}
	}
}

// WithLogger injects the structured logger. Defaults to a no-op logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(g *Generator) {
		g.logger = logging.Ensure(logger)
	}
}

// WithProgress sets where human readable progress lines go.
func WithProgress(out io.Writer) Option {
	return func(g *Generator) {
		if out == nil {
			out = io.Discard
		}
		g.progress = out
	}
}

// Generator renders one palette document per icon category.
type Generator struct {
	renderer interfaces.TemplateRenderer
	prefix   string
	names    NameSource
	writer   DocumentWriter
	logger   interfaces.Logger
	progress io.Writer
}

// NewGenerator builds a generator rendering documents with renderer.
func NewGenerator(renderer interfaces.TemplateRenderer, opts ...Option) *Generator {
	if renderer == nil {
		panic("palette: template renderer cannot be nil")
	}
	g := &Generator{
		renderer: renderer,
		prefix:   runtimeconfig.DefaultPrefix,
		names:    UUIDNames(),
		writer:   FileWriter{},
		logger:   logging.NoOp(),
		progress: io.Discard,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// DocumentName returns the file name used for category.
func (g *Generator) DocumentName(category string) string {
	return g.prefix + category + documentExtension
}

// Run validates both directories, then renders and writes a document for
// every non-empty category under inputDir. The first failure aborts the run;
// documents written before it are kept.
func (g *Generator) Run(ctx context.Context, inputDir, outputDir string) (*RunResult, error) {
	if err := ValidateInputDir(inputDir); err != nil {
		return nil, err
	}
	if err := ValidateOutputDir(outputDir); err != nil {
		return nil, err
	}

	fsys := os.DirFS(inputDir)
	categories, err := ScanCategories(fsys)
	if err != nil {
		return nil, err
	}

	logger := g.logger.WithContext(ctx)
	result := &RunResult{Categories: len(categories)}
	fmt.Fprintf(g.progress, "Importing %d categories...\n", len(categories))
	logger.Debug("palette.run.start", "input", inputDir, "output", outputDir, "categories", len(categories))

	for _, category := range categories {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		doc, icons, err := g.renderCategory(ctx, fsys, category)
		if err != nil {
			logging.WithCategoryContext(logger, category, failedIcon(err), "").
				Error("palette.category.failed", "error", err)
			return result, err
		}
		if icons == 0 {
			fmt.Fprintf(g.progress, "No icons found in \"%s\"!\n", category)
			logging.WithCategoryContext(logger, category, "", "").Warn("palette.category.empty")
			result.Skipped = append(result.Skipped, category)
			continue
		}

		target := filepath.Join(outputDir, g.DocumentName(category))
		if err := g.writer.WriteDocument(ctx, target, doc); err != nil {
			return result, paletteerrors.IO(err, "write document", target)
		}

		fmt.Fprintf(g.progress, "Imported \"%s\" (%d icons)\n", category, icons)
		logging.WithCategoryContext(logger, category, "", target).Info("palette.category.written", "icons", icons)
		result.Documents = append(result.Documents, DocumentResult{
			Category: category,
			Path:     target,
			Icons:    icons,
		})
	}
	return result, nil
}

// renderCategory returns the rendered document and the icon count. A zero
// count means the category holds no icons and nothing was rendered.
// failedIcon returns the icon path behind a read or stat failure.
func failedIcon(err error) string {
	switch op, path := paletteerrors.FailedOperation(err); op {
	case opReadIcon, opStatIcon:
		return path
	}
	return ""
}

func (g *Generator) renderCategory(ctx context.Context, fsys fs.FS, category string) ([]byte, int, error) {
	icons, err := ScanIcons(fsys, category)
	if err != nil {
		return nil, 0, err
	}
	if len(icons) == 0 {
		return nil, 0, nil
	}

	data, err := Synthesize(ctx, fsys, icons, g.names)
	if err != nil {
		return nil, 0, err
	}

	var buf bytes.Buffer
	if err := g.renderer.Render(&buf, data.Bindings()); err != nil {
		return nil, 0, fmt.Errorf("palette: render category %s: %w", category, err)
	}
	return buf.Bytes(), len(icons), nil
}

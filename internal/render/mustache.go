// Package render adapts the mustache template engine to the
// interfaces.TemplateRenderer contract used by the palette generator.
package render

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/cbroglie/mustache"

	"github.com/goliatone/go-yed-palette/pkg/interfaces"
)

// DefaultTemplate is the GraphML palette template shipped with the binary.
// It interpolates every field with triple mustaches: values arrive escaped.
//
//go:embed templates/category.graphml.mustache
var DefaultTemplate string

// Template is a parsed mustache template.
type Template struct {
	name   string
	parsed *mustache.Template
}

var _ interfaces.TemplateRenderer = (*Template)(nil)

// Parse compiles source. name only labels errors.
func Parse(name, source string) (*Template, error) {
	parsed, err := mustache.ParseString(source)
	if err != nil {
		return nil, fmt.Errorf("render: parse template %s: %w", name, err)
	}
	return &Template{name: name, parsed: parsed}, nil
}

// Load reads and compiles the template at path. An empty path selects
// DefaultTemplate.
func Load(path string) (*Template, error) {
	if path == "" {
		return Parse("category.graphml.mustache", DefaultTemplate)
	}
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("render: read template %s: %w", path, err)
	}
	return Parse(path, string(source))
}

// Name reports the label the template was parsed with.
func (t *Template) Name() string { return t.name }

// Render writes the template expanded against data to out.
func (t *Template) Render(out io.Writer, data any) error {
	if err := t.parsed.FRender(out, data); err != nil {
		return fmt.Errorf("render: execute template %s: %w", t.name, err)
	}
	return nil
}

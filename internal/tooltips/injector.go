// Package tooltips rewrites the palette tooltips of an existing GraphML
// document. Labels are paired with graph nodes purely by position: the first
// label goes to the first node in document order, and so on.
package tooltips

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"

	"github.com/goliatone/go-yed-palette/internal/logging"
	"github.com/goliatone/go-yed-palette/internal/paletteerrors"
	"github.com/goliatone/go-yed-palette/pkg/interfaces"
)

// TooltipAttrName identifies the GraphML key declarations holding tooltips.
const TooltipAttrName = "Palette ToolTip"

// Assignment records one tooltip value written to a node.
type Assignment struct {
	NodeID string
	KeyID  string
	Label  string
}

// Result summarises an injection run.
type Result struct {
	Nodes       int
	TooltipKeys []string
	Assignments []Assignment
}

// Option configures an Injector.
type Option func(*Injector)

// WithLogger injects the structured logger. Defaults to a no-op logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(i *Injector) {
		i.logger = logging.Ensure(logger)
	}
}

// WithProgress sets where human readable progress lines go.
func WithProgress(out io.Writer) Option {
	return func(i *Injector) {
		if out == nil {
			out = io.Discard
		}
		i.progress = out
	}
}

// Injector applies label lists to GraphML documents on disk.
type Injector struct {
	logger   interfaces.Logger
	progress io.Writer
}

func NewInjector(opts ...Option) *Injector {
	i := &Injector{
		logger:   logging.NoOp(),
		progress: io.Discard,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// ReadLabels returns one label per input line with surrounding whitespace
// removed. Blank lines yield empty labels; the final newline does not.
func ReadLabels(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var labels []string
	for scanner.Scan() {
		labels = append(labels, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, paletteerrors.IO(err, "read labels", "stdin")
	}
	return labels, nil
}

// target is one located tooltip data element and the label index it takes.
type target struct {
	index int
	node  *etree.Element
	data  *etree.Element
	key   string
}

// Inject sets the tooltip data of every graph node in the document at path to
// the label at the same position and rewrites the file. When the number of
// nodes differs from len(labels) the file is left untouched.
func (i *Injector) Inject(ctx context.Context, path string, labels []string) (*Result, error) {
	fmt.Fprintf(i.progress, "Will mutate file \"%s\"\n", path)

	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, paletteerrors.IO(err, "parse document", path)
	}

	nodes := GraphNodes(doc)
	if len(nodes) != len(labels) {
		err := paletteerrors.CountMismatch(len(nodes), len(labels))
		fmt.Fprintf(i.progress, "Error: number of nodes (%d) != (%d) number of labels from STDIN\n", len(nodes), len(labels))
		return nil, err
	}

	keys := TooltipKeys(doc)
	fmt.Fprintf(i.progress, "Palette ToolTip keys: %s\n", strings.Join(keys, ", "))

	targets := locate(nodes, keys)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{Nodes: len(nodes), TooltipKeys: keys}
	for _, t := range targets {
		label := labels[t.index]
		t.data.SetText(label)
		nodeID := t.node.SelectAttrValue("id", "")
		fmt.Fprintf(i.progress, "%s: data %s set to %s\n", nodeID, t.key, label)
		result.Assignments = append(result.Assignments, Assignment{NodeID: nodeID, KeyID: t.key, Label: label})
	}

	if err := doc.WriteToFile(path); err != nil {
		return nil, paletteerrors.IO(err, "write document", path)
	}
	logging.WithFields(i.logger.WithContext(ctx), map[string]any{
		"document":    path,
		"nodes":       len(nodes),
		"assignments": len(result.Assignments),
	}).Info("palette.tooltips.injected")
	return result, nil
}

// locate collects every tooltip data element before anything is mutated.
func locate(nodes []*etree.Element, keys []string) []target {
	var targets []target
	for index, node := range nodes {
		for _, key := range keys {
			data := findData(node, key)
			if data == nil {
				continue
			}
			targets = append(targets, target{index: index, node: node, data: data, key: key})
		}
	}
	return targets
}

// GraphNodes returns the node elements that are direct children of a graph
// element, in document order.
func GraphNodes(doc *etree.Document) []*etree.Element {
	var nodes []*etree.Element
	var walk func(parent *etree.Element)
	walk = func(parent *etree.Element) {
		for _, child := range parent.ChildElements() {
			if parent.Tag == "graph" && child.Tag == "node" {
				nodes = append(nodes, child)
			}
			walk(child)
		}
	}
	if root := doc.Root(); root != nil {
		walk(root)
	}
	return nodes
}

// TooltipKeys returns the ids of the key declarations named TooltipAttrName.
func TooltipKeys(doc *etree.Document) []string {
	var ids []string
	var walk func(parent *etree.Element)
	walk = func(parent *etree.Element) {
		for _, child := range parent.ChildElements() {
			if child.Tag == "key" && child.SelectAttrValue("attr.name", "") == TooltipAttrName {
				if id := child.SelectAttrValue("id", ""); id != "" {
					ids = append(ids, id)
				}
			}
			walk(child)
		}
	}
	if root := doc.Root(); root != nil {
		walk(root)
	}
	return ids
}

// findData returns the first data element below node bound to key.
func findData(node *etree.Element, key string) *etree.Element {
	for _, child := range node.ChildElements() {
		if child.Tag == "data" && child.SelectAttrValue("key", "") == key {
			return child
		}
		if found := findData(child, key); found != nil {
			return found
		}
	}
	return nil
}

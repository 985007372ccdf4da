package palette_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/beevik/etree"

	"github.com/goliatone/go-yed-palette/internal/palette"
	"github.com/goliatone/go-yed-palette/internal/render"
)

func TestDefaultTemplateProducesLinkedGraphML(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	icons := map[string]string{
		"s3.svg":      `<svg xmlns="http://www.w3.org/2000/svg"><title>S3 & friends</title></svg>`,
		"glacier.svg": `<svg xmlns="http://www.w3.org/2000/svg"><rect width="1"/></svg>`,
	}
	if err := os.MkdirAll(filepath.Join(in, "Storage"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for name, content := range icons {
		if err := os.WriteFile(filepath.Join(in, "Storage", name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	tmpl, err := render.Load("")
	if err != nil {
		t.Fatalf("load template: %v", err)
	}
	if _, err := palette.NewGenerator(tmpl).Run(context.Background(), in, out); err != nil {
		t.Fatalf("Run: %v", err)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromFile(filepath.Join(out, "AWS - Storage.graphml")); err != nil {
		t.Fatalf("generated document is not well-formed XML: %v", err)
	}

	nodes := doc.FindElements("//graph/node")
	if len(nodes) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(nodes))
	}
	resources := doc.FindElements("//y:Resources/y:Resource")
	if len(resources) != 2 {
		t.Fatalf("expected 2 resources, got %d", len(resources))
	}

	wantTooltips := []string{"glacier", "s3"}
	for i, node := range nodes {
		if got := node.SelectAttrValue("id", ""); got != palette.NodeID(i) {
			t.Fatalf("node %d: unexpected id %q", i, got)
		}
		tooltip := node.FindElement("data[@key='d4']")
		if tooltip == nil || tooltip.Text() != wantTooltips[i] {
			t.Fatalf("node %d: unexpected tooltip element %v", i, tooltip)
		}
		ref := node.FindElement(".//y:SVGContent")
		if ref == nil {
			t.Fatalf("node %d: missing SVGContent", i)
		}
		if ref.SelectAttrValue("refid", "") != resources[i].SelectAttrValue("id", "") {
			t.Fatalf("node %d: refid %q does not match resource id %q", i,
				ref.SelectAttrValue("refid", ""), resources[i].SelectAttrValue("id", ""))
		}
	}

	// The XML parser decodes the entities once, giving back the raw SVG.
	if got := resources[1].Text(); got != icons["s3.svg"] {
		t.Fatalf("unexpected embedded content %q", got)
	}
}

package palette

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/google/uuid"
)

// NameSource yields the display names assigned to generated nodes.
type NameSource interface {
	NewName() (string, error)
}

// NameSourceFunc adapts a function to NameSource.
type NameSourceFunc func() (string, error)

func (f NameSourceFunc) NewName() (string, error) { return f() }

// UUIDNames returns the default NameSource producing random version 4 UUIDs.
func UUIDNames() NameSource {
	return NameSourceFunc(func() (string, error) {
		id, err := uuid.NewRandom()
		if err != nil {
			return "", err
		}
		return id.String(), nil
	})
}

// Synthesize builds the render context for the icons of one category. icons
// are paths relative to fsys, already in the order they should appear. Any
// read failure aborts the whole category.
func Synthesize(ctx context.Context, fsys fs.FS, icons []string, names NameSource) (RenderContext, error) {
	if names == nil {
		names = UUIDNames()
	}
	out := RenderContext{
		Nodes:     make([]NodeDescriptor, 0, len(icons)),
		Resources: make([]ResourceDescriptor, 0, len(icons)),
	}
	for index, icon := range icons {
		if err := ctx.Err(); err != nil {
			return RenderContext{}, err
		}

		content, err := ReadText(fsys, icon)
		if err != nil {
			return RenderContext{}, err
		}
		name, err := names.NewName()
		if err != nil {
			return RenderContext{}, fmt.Errorf("palette: generate node name for %s: %w", icon, err)
		}

		out.Nodes = append(out.Nodes, NodeDescriptor{
			ID:         NodeID(index),
			Name:       EscapeXML(name),
			Tooltip:    EscapeXML(BaseName(icon)),
			ResourceID: index,
		})
		out.Resources = append(out.Resources, ResourceDescriptor{
			ID:             index,
			EncodedContent: EscapeXML(content),
		})
	}
	return out, nil
}

package palette

import "strconv"

// NodeDescriptor is the visual palette entry for one icon.
type NodeDescriptor struct {
	// ID is "n" followed by the icon index.
	ID string
	// Name is a random unique label, unrelated to the file name.
	Name string
	// Tooltip is the XML-escaped icon base name.
	Tooltip string
	// ResourceID is the index of the ResourceDescriptor holding the icon.
	ResourceID int
}

// ResourceDescriptor embeds one icon payload.
type ResourceDescriptor struct {
	ID             int
	EncodedContent string
}

// RenderContext is the data handed to the template for one category.
// Nodes and Resources have equal length and Nodes[i].ResourceID ==
// Resources[i].ID == i.
type RenderContext struct {
	Nodes     []NodeDescriptor
	Resources []ResourceDescriptor
}

// NodeID builds the node identifier for an icon index.
func NodeID(index int) string {
	return "n" + strconv.Itoa(index)
}

// Bindings exposes the context under the names the template refers to:
// "nodes" with id, name, tooltip and resourceId, and "resources" with id and
// encodedContent.
func (c RenderContext) Bindings() map[string]any {
	nodes := make([]map[string]any, 0, len(c.Nodes))
	for _, node := range c.Nodes {
		nodes = append(nodes, map[string]any{
			"id":         node.ID,
			"name":       node.Name,
			"tooltip":    node.Tooltip,
			"resourceId": node.ResourceID,
		})
	}
	resources := make([]map[string]any, 0, len(c.Resources))
	for _, resource := range c.Resources {
		resources = append(resources, map[string]any{
			"id":             resource.ID,
			"encodedContent": resource.EncodedContent,
		})
	}
	return map[string]any{
		"nodes":     nodes,
		"resources": resources,
	}
}

package interfaces

import "io"

// TemplateRenderer renders a pre-parsed template against a data context.
// Implementations must not escape interpolated values; callers hand over
// data that is already encoded for the target document format.
type TemplateRenderer interface {
	Render(out io.Writer, data any) error
}

package palette

import "strings"

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// EscapeXML replaces the five XML special characters with their predefined
// entities so the value is safe both as element text and inside a quoted
// attribute.
func EscapeXML(value string) string {
	return xmlEscaper.Replace(value)
}

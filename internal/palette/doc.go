// Package palette turns a directory of icon categories into yEd palette
// documents.
//
// The input root holds one subdirectory per category, each with SVG files.
// Every non-empty category becomes one GraphML document named
// "<prefix><category>.graphml" in the output root. Within a document each
// icon contributes a node and an embedded resource that share the icon's
// zero-based index; the node references the resource through that index.
//
// Categories and icons are processed in lexical name order so repeated runs
// over the same tree produce the same documents apart from the random node
// names.
package palette

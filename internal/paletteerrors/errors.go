// Package paletteerrors defines the error taxonomy shared by the palette
// generator and the tooltip injector. Every fatal condition is a go-errors
// value carrying one of the categories below.
package paletteerrors

import (
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

const (
	// CategoryConfiguration marks invalid or unreadable input/output locations.
	CategoryConfiguration goerrors.Category = "configuration"
	// CategoryIO marks read/write failures during scanning, reading or writing.
	CategoryIO goerrors.Category = "io"
	// CategoryCountMismatch marks a label list that does not line up with the
	// nodes of a document.
	CategoryCountMismatch goerrors.Category = "count_mismatch"
)

const (
	CodeConfiguration = "PALETTE_CONFIGURATION"
	CodeIO            = "PALETTE_IO"
	CodeCountMismatch = "PALETTE_COUNT_MISMATCH"
)

const (
	metaOperation = "operation"
	metaPath      = "path"
)

var (
	ErrNotDirectory  = errors.New("not a directory")
	ErrNotReadable   = errors.New("directory is not readable")
	ErrNotWritable   = errors.New("directory is not writable")
	ErrInvalidText   = errors.New("content is not valid UTF-8 text")
	ErrCountMismatch = errors.New("label count does not match node count")
)

// Configuration wraps err as a configuration error. path names the offending
// directory or file and may be empty.
func Configuration(err error, path string) error {
	if err == nil {
		return nil
	}
	message := "invalid configuration"
	if path != "" {
		message = fmt.Sprintf("invalid configuration %q", path)
	}
	return goerrors.Wrap(err, CategoryConfiguration, message).
		WithTextCode(CodeConfiguration)
}

// IO wraps err as an I/O failure while performing op on path.
func IO(err error, op, path string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, CategoryIO, fmt.Sprintf("%s %q", op, path)).
		WithTextCode(CodeIO).
		WithMetadata(map[string]any{metaOperation: op, metaPath: path})
}

// FailedOperation returns the operation and path recorded by IO, or empty
// strings when err carries neither.
func FailedOperation(err error) (op, path string) {
	var tagged *goerrors.Error
	if !errors.As(err, &tagged) {
		return "", ""
	}
	op, _ = tagged.Metadata[metaOperation].(string)
	path, _ = tagged.Metadata[metaPath].(string)
	return op, path
}

// CountMismatch reports that nodes and labels cannot be paired.
func CountMismatch(nodes, labels int) error {
	return goerrors.Wrap(ErrCountMismatch, CategoryCountMismatch,
		fmt.Sprintf("number of nodes (%d) != (%d) number of labels", nodes, labels)).
		WithTextCode(CodeCountMismatch)
}

func IsConfiguration(err error) bool { return goerrors.IsCategory(err, CategoryConfiguration) }

func IsIO(err error) bool { return goerrors.IsCategory(err, CategoryIO) }

func IsCountMismatch(err error) bool { return goerrors.IsCategory(err, CategoryCountMismatch) }

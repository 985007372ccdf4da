package palette

import (
	"io/fs"
	"unicode/utf8"

	"github.com/goliatone/go-yed-palette/internal/paletteerrors"
)

// ReadText returns the full content of name within fsys. Content that is not
// valid UTF-8 is rejected.
func ReadText(fsys fs.FS, name string) (string, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", paletteerrors.IO(err, opReadIcon, name)
	}
	if !utf8.Valid(data) {
		return "", paletteerrors.IO(paletteerrors.ErrInvalidText, opReadIcon, name)
	}
	return string(data), nil
}

package palette

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/goliatone/go-yed-palette/internal/paletteerrors"
)

const iconExtension = ".svg"

const (
	opReadIcon = "read icon"
	opStatIcon = "stat icon"
)

// ValidateInputDir checks that dir exists, is a directory and can be listed.
func ValidateInputDir(dir string) error {
	if err := requireDir(dir); err != nil {
		return err
	}
	return requireListable(dir)
}

// ValidateOutputDir checks that dir exists, is a directory, can be listed and
// accepts new files. The probe file is removed before returning.
func ValidateOutputDir(dir string) error {
	if err := requireDir(dir); err != nil {
		return err
	}
	if err := requireListable(dir); err != nil {
		return err
	}
	probe, err := os.CreateTemp(dir, ".palette-probe-*")
	if err != nil {
		return paletteerrors.Configuration(errors.Join(paletteerrors.ErrNotWritable, err), dir)
	}
	name := probe.Name()
	probe.Close()
	_ = os.Remove(name)
	return nil
}

func requireListable(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return paletteerrors.Configuration(errors.Join(paletteerrors.ErrNotReadable, err), dir)
	}
	defer f.Close()
	if _, err := f.ReadDir(1); err != nil && !errors.Is(err, io.EOF) {
		return paletteerrors.Configuration(errors.Join(paletteerrors.ErrNotReadable, err), dir)
	}
	return nil
}

func requireDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return paletteerrors.Configuration(err, dir)
	}
	if !info.IsDir() {
		return paletteerrors.Configuration(paletteerrors.ErrNotDirectory, dir)
	}
	return nil
}

// ScanCategories lists the immediate subdirectories of the root of fsys in
// lexical order. Symlinks to directories count as categories.
func ScanCategories(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, paletteerrors.IO(err, "list categories", ".")
	}
	var categories []string
	for _, entry := range entries {
		mode, err := resolveMode(fsys, entry.Name(), entry)
		if err != nil {
			return nil, paletteerrors.IO(err, "stat category", entry.Name())
		}
		if mode.IsDir() {
			categories = append(categories, entry.Name())
		}
	}
	return categories, nil
}

// ScanIcons lists the regular files directly inside category whose name ends
// in ".svg" (any case), in lexical order. Returned paths are relative to fsys.
func ScanIcons(fsys fs.FS, category string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, category)
	if err != nil {
		return nil, paletteerrors.IO(err, "list icons", category)
	}
	var icons []string
	for _, entry := range entries {
		if !IsIconFile(entry.Name()) {
			continue
		}
		name := path.Join(category, entry.Name())
		mode, err := resolveMode(fsys, name, entry)
		if err != nil {
			return nil, paletteerrors.IO(err, opStatIcon, name)
		}
		if mode.IsRegular() {
			icons = append(icons, name)
		}
	}
	return icons, nil
}

// IsIconFile reports whether name carries the icon extension.
func IsIconFile(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), iconExtension)
}

// BaseName strips the directory and extension from an icon path.
func BaseName(name string) string {
	base := path.Base(name)
	ext := path.Ext(base)
	if strings.TrimLeft(base, ".") == strings.TrimLeft(ext, ".") {
		// only leading dots before the extension, as in ".svg" or "..svg"
		return base
	}
	return strings.TrimSuffix(base, ext)
}

func resolveMode(fsys fs.FS, name string, entry fs.DirEntry) (fs.FileMode, error) {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.Type(), nil
	}
	info, err := fs.Stat(fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return fs.ModeIrregular, nil
	}
	if err != nil {
		return 0, err
	}
	return info.Mode(), nil
}

package svg

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/teranos/iconforge/errors"
)

// ScannedFile is one SVG file found under a scanned directory, with the
// icon name derived from its relative path.
type ScannedFile struct {
	Path     string
	IconName string
}

// CollectionName extracts the collection name from a directory path:
// "/path/to/my-icons" -> "my-icons".
func CollectionName(dir string) (string, error) {
	name := filepath.Base(filepath.Clean(dir))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "", errors.Newf("cannot derive a collection name from %q", dir)
	}
	return name, nil
}

// Scan walks dir recursively (without following symlinks) and returns every
// .svg file with its derived icon name. An empty result logs a warning but
// is not an error. Result order follows directory traversal and carries no
// guarantee.
func (p *Parser) Scan(dir string) ([]ScannedFile, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, errors.Newf("not a directory: %s", dir)
	}

	var results []ScannedFile

	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".svg" {
			return nil
		}

		name, err := buildIconName(dir, path)
		if err != nil {
			return err
		}
		results = append(results, ScannedFile{Path: path, IconName: name})
		return nil
	})
	if walkErr != nil {
		return nil, errors.Wrapf(errors.ErrFilesystem, "scanning %s: %v", dir, walkErr)
	}

	if len(results) == 0 {
		p.log.Warnw("no SVG files found", "dir", dir)
	}

	return results, nil
}

// buildIconName derives an icon name from the file's path relative to the
// scanned base directory: "arrows/left.svg" -> "arrows-left".
func buildIconName(base, path string) (string, error) {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return "", errors.Wrapf(err, "SVG path %s is not under %s", path, base)
	}

	parts := strings.Split(filepath.ToSlash(rel), "/")
	last := parts[len(parts)-1]
	parts[len(parts)-1] = strings.TrimSuffix(last, filepath.Ext(last))

	name := strings.Join(parts, "-")
	if name == "" {
		return "", errors.Newf("failed to build icon name from path %s", path)
	}
	return name, nil
}

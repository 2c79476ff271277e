// Package gen owns the generated Rust artifacts: one file per icon
// collection plus the aggregating mod.rs manifest. Generated files are
// machine-owned; every write is a full parse-merge-rewrite with atomic
// replacement, so repeated runs never lose previously added icons.
package gen

import (
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"github.com/teranos/iconforge/errors"
	"github.com/teranos/iconforge/naming"
)

// Generator emits and reads back the generated icon files under one
// output directory. The on-disk files are the single source of truth for
// List, Update and skip-existing decisions.
type Generator struct {
	outputDir string
	log       *zap.SugaredLogger
}

// NewGenerator creates a Generator rooted at outputDir.
// A nil logger is replaced with a nop logger.
func NewGenerator(outputDir string, log *zap.SugaredLogger) *Generator {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Generator{outputDir: outputDir, log: log}
}

// OutputDir returns the directory the generator writes into.
func (g *Generator) OutputDir() string {
	return g.outputDir
}

func (g *Generator) join(name string) string {
	return filepath.Join(g.outputDir, name)
}

func (g *Generator) ensureOutputDir() error {
	if err := os.MkdirAll(g.outputDir, 0755); err != nil {
		return errors.Wrapf(errors.ErrFilesystem, "creating %s: %v", g.outputDir, err)
	}
	return nil
}

// List reads all collection files and returns collection -> sorted full
// names. Collections are read from entry names, not file names, so hyphens
// survive the module-name mangling.
func (g *Generator) List() (map[string][]string, error) {
	result := make(map[string][]string)

	for _, path := range g.collectionFiles() {
		parsed, err := parseCollectionFile(path)
		if err != nil {
			return nil, err
		}
		for _, entry := range parsed.entries {
			id, err := naming.Parse(entry.FullName)
			if err != nil {
				g.log.Warnw("skipping malformed entry in generated file",
					"path", path, "name", entry.FullName)
				continue
			}
			result[id.Collection] = append(result[id.Collection], entry.FullName)
		}
	}

	for _, names := range result {
		sort.Strings(names)
	}

	return result, nil
}

// AllIdentifiers returns the sorted full names of every emitted icon
// across all collection files.
func (g *Generator) AllIdentifiers() ([]string, error) {
	byCollection, err := g.List()
	if err != nil {
		return nil, err
	}

	var all []string
	for _, names := range byCollection {
		all = append(all, names...)
	}
	sort.Strings(all)
	return all, nil
}

// collectionFiles returns every generated .rs file except the manifest.
func (g *Generator) collectionFiles() []string {
	matches, err := filepath.Glob(g.join("*.rs"))
	if err != nil {
		return nil
	}

	var files []string
	for _, path := range matches {
		if filepath.Base(path) == manifestFileName {
			continue
		}
		files = append(files, path)
	}
	return files
}

// writeFileAtomic writes data via a temp file in the same directory and
// renames it into place, so an interrupted run never leaves a partial file.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.Wrapf(errors.ErrFilesystem, "creating temp file in %s: %v", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrapf(errors.ErrFilesystem, "writing %s: %v", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(errors.ErrFilesystem, "closing %s: %v", tmpName, err)
	}

	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(errors.ErrFilesystem, "chmod %s: %v", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(errors.ErrFilesystem, "replacing %s: %v", path, err)
	}

	return nil
}

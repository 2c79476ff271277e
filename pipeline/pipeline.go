// Package pipeline sequences the icon flows: classify inputs, resolve each
// through the registry or the local SVG path, name the results and hand them
// to the generator. Per-item failures are collected as diagnostics and never
// abort the remaining items.
package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/teranos/iconforge/errors"
	"github.com/teranos/iconforge/gen"
	"github.com/teranos/iconforge/naming"
	"github.com/teranos/iconforge/registry"
	"github.com/teranos/iconforge/svg"
)

// Pipeline wires the registry client, the local SVG parser and the generator
// behind the add/list/update operations the CLI exposes.
type Pipeline struct {
	gen      *gen.Generator
	registry *registry.Client
	parser   *svg.Parser
	log      *zap.SugaredLogger
}

// Options configures a Pipeline. Registry and Logger may be nil; a nil
// registry client is built with library defaults.
type Options struct {
	OutputDir string
	Registry  *registry.Client
	Logger    *zap.SugaredLogger
}

// New creates a Pipeline writing into opts.OutputDir.
func New(opts Options) *Pipeline {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop().Sugar()
	}
	if opts.Registry == nil {
		opts.Registry = registry.NewClient(registry.Options{Logger: opts.Logger})
	}

	return &Pipeline{
		gen:      gen.NewGenerator(opts.OutputDir, opts.Logger),
		registry: opts.Registry,
		parser:   svg.NewParser(opts.Logger),
		log:      opts.Logger,
	}
}

// Failure records one input that could not be processed.
type Failure struct {
	Input string
	Err   error
}

// AddReport summarizes one add run. Nothing succeeding is not an error;
// callers report it and exit cleanly.
type AddReport struct {
	Added    []string
	Skipped  []string
	Failures []Failure
}

// UpdateReport summarizes one update run.
type UpdateReport struct {
	Updated  []string
	Failures []Failure
}

// pendingEntry ties an emission entry back to the input it came from so
// collection-level emission failures can be attributed.
type pendingEntry struct {
	input        string
	entry        gen.Entry
	fromRegistry bool
}

// Init creates the output directory and the manifest if absent.
func (p *Pipeline) Init() error {
	return p.gen.EnsureInitialized()
}

// List returns collection -> sorted icon full names from the generated files.
func (p *Pipeline) List() (map[string][]string, error) {
	return p.gen.List()
}

// Add resolves each input (registry identifier, .svg file, or directory of
// SVG files) into icon records and emits them grouped by collection. With
// skipExisting, identifiers already present in the generated files are
// reported as skipped instead of re-resolved.
func (p *Pipeline) Add(ctx context.Context, inputs []string, skipExisting bool) (*AddReport, error) {
	if err := p.gen.EnsureInitialized(); err != nil {
		return nil, err
	}

	existing := map[string]bool{}
	if skipExisting {
		all, err := p.gen.AllIdentifiers()
		if err != nil {
			return nil, err
		}
		for _, name := range all {
			existing[name] = true
		}
	}

	report := &AddReport{}
	byCollection := map[string][]pendingEntry{}

	for _, input := range inputs {
		pending, err := p.resolveInput(ctx, input, existing, report)
		if err != nil {
			p.log.Warnw("skipping input", "input", input, "error", err)
			report.Failures = append(report.Failures, Failure{Input: input, Err: err})
			continue
		}
		for _, item := range pending {
			collection := collectionOf(item.entry.FullName)
			byCollection[collection] = append(byCollection[collection], item)
		}
	}

	p.emitPending(ctx, byCollection, report)
	sort.Strings(report.Added)
	sort.Strings(report.Skipped)

	return report, nil
}

// Update re-fetches every registered identifier through the registry path,
// re-emits each collection and unconditionally regenerates the manifest.
// Icons that only ever existed locally come back as not-found failures.
func (p *Pipeline) Update(ctx context.Context) (*UpdateReport, error) {
	byCollection, err := p.gen.List()
	if err != nil {
		return nil, err
	}

	report := &UpdateReport{}

	collections := make([]string, 0, len(byCollection))
	for collection := range byCollection {
		collections = append(collections, collection)
	}
	sort.Strings(collections)

	for _, collection := range collections {
		fullNames := byCollection[collection]

		iconNames := make([]string, 0, len(fullNames))
		for _, fullName := range fullNames {
			id, err := naming.Parse(fullName)
			if err != nil {
				report.Failures = append(report.Failures, Failure{Input: fullName, Err: err})
				continue
			}
			iconNames = append(iconNames, id.IconName)
		}
		if len(iconNames) == 0 {
			continue
		}

		fetched, err := p.registry.FetchIcons(ctx, collection, iconNames)
		if err != nil {
			p.log.Warnw("collection update failed", "collection", collection, "error", err)
			for _, name := range iconNames {
				report.Failures = append(report.Failures, Failure{
					Input: collection + ":" + name, Err: err,
				})
			}
			continue
		}

		var entries []gen.Entry
		for _, name := range iconNames {
			fullName := collection + ":" + name
			rec, ok := fetched[name]
			if !ok {
				report.Failures = append(report.Failures, Failure{
					Input: fullName,
					Err:   errors.Wrapf(errors.ErrNotFound, "icon %q not found in registry", fullName),
				})
				continue
			}
			id, err := naming.Parse(fullName)
			if err != nil {
				report.Failures = append(report.Failures, Failure{Input: fullName, Err: err})
				continue
			}
			entries = append(entries, gen.NewEntry(id, rec))
		}
		if len(entries) == 0 {
			continue
		}

		if err := p.gen.Emit(collection, entries, p.collectionMeta(ctx, collection)); err != nil {
			for _, entry := range entries {
				report.Failures = append(report.Failures, Failure{Input: entry.FullName, Err: err})
			}
			continue
		}
		for _, entry := range entries {
			report.Updated = append(report.Updated, entry.FullName)
		}
	}

	if err := p.gen.ForceRegenerate(); err != nil {
		return nil, err
	}

	sort.Strings(report.Updated)
	return report, nil
}

// resolveInput classifies one input and resolves it into pending entries.
// Existing paths win over identifier syntax, so a file named "a:b" is still
// treated as a file.
func (p *Pipeline) resolveInput(ctx context.Context, input string, existing map[string]bool, report *AddReport) ([]pendingEntry, error) {
	if info, err := os.Stat(input); err == nil {
		if info.IsDir() {
			return p.resolveDirectory(input, existing, report)
		}
		if strings.EqualFold(filepath.Ext(input), ".svg") {
			return p.resolveFile(input, existing, report)
		}
		return nil, errors.Newf("%s is not an SVG file", input)
	}

	return p.resolveRegistry(ctx, input, existing, report)
}

func (p *Pipeline) resolveRegistry(ctx context.Context, input string, existing map[string]bool, report *AddReport) ([]pendingEntry, error) {
	id, err := naming.Parse(input)
	if err != nil {
		return nil, err
	}
	if existing[id.FullName] {
		report.Skipped = append(report.Skipped, id.FullName)
		return nil, nil
	}

	rec, err := p.registry.FetchIcon(ctx, id.Collection, id.IconName)
	if err != nil {
		return nil, err
	}

	return []pendingEntry{{input: input, entry: gen.NewEntry(id, rec), fromRegistry: true}}, nil
}

func (p *Pipeline) resolveFile(path string, existing map[string]bool, report *AddReport) ([]pendingEntry, error) {
	collection, err := svg.CollectionName(filepath.Dir(path))
	if err != nil {
		return nil, err
	}
	base := filepath.Base(path)
	iconName := strings.TrimSuffix(base, filepath.Ext(base))

	return p.resolveLocal(path, collection, iconName, existing, report)
}

func (p *Pipeline) resolveDirectory(dir string, existing map[string]bool, report *AddReport) ([]pendingEntry, error) {
	collection, err := svg.CollectionName(dir)
	if err != nil {
		return nil, err
	}

	scanned, err := p.parser.Scan(dir)
	if err != nil {
		return nil, err
	}

	var pending []pendingEntry
	for _, file := range scanned {
		items, err := p.resolveLocal(file.Path, collection, file.IconName, existing, report)
		if err != nil {
			p.log.Warnw("skipping file", "path", file.Path, "error", err)
			report.Failures = append(report.Failures, Failure{Input: file.Path, Err: err})
			continue
		}
		pending = append(pending, items...)
	}
	return pending, nil
}

func (p *Pipeline) resolveLocal(path, collection, iconName string, existing map[string]bool, report *AddReport) ([]pendingEntry, error) {
	id, err := naming.Parse(collection + ":" + iconName)
	if err != nil {
		return nil, err
	}
	if existing[id.FullName] {
		report.Skipped = append(report.Skipped, id.FullName)
		return nil, nil
	}

	rec, err := p.parser.ParseFile(path)
	if err != nil {
		return nil, err
	}

	return []pendingEntry{{input: path, entry: gen.NewEntry(id, rec)}}, nil
}

// emitPending writes each collection's pending entries and registers the
// collection. An emission failure attributes every pending entry of that
// collection as failed.
func (p *Pipeline) emitPending(ctx context.Context, byCollection map[string][]pendingEntry, report *AddReport) {
	collections := make([]string, 0, len(byCollection))
	for collection := range byCollection {
		collections = append(collections, collection)
	}
	sort.Strings(collections)

	for _, collection := range collections {
		pending := byCollection[collection]

		entries := make([]gen.Entry, 0, len(pending))
		fromRegistry := false
		for _, item := range pending {
			entries = append(entries, item.entry)
			fromRegistry = fromRegistry || item.fromRegistry
		}

		var meta *gen.CollectionMeta
		if fromRegistry {
			meta = p.collectionMeta(ctx, collection)
		}

		if err := p.gen.Emit(collection, entries, meta); err != nil {
			p.log.Warnw("emission failed", "collection", collection, "error", err)
			for _, item := range pending {
				report.Failures = append(report.Failures, Failure{Input: item.input, Err: err})
			}
			continue
		}

		if err := p.gen.Register(collection); err != nil {
			for _, item := range pending {
				report.Failures = append(report.Failures, Failure{Input: item.input, Err: err})
			}
			continue
		}

		for _, item := range pending {
			report.Added = append(report.Added, item.entry.FullName)
		}
	}
}

// collectionMeta fetches registry metadata for doc headers. Best effort;
// failures are logged and ignored.
func (p *Pipeline) collectionMeta(ctx context.Context, collection string) *gen.CollectionMeta {
	info, err := p.registry.FetchCollectionInfo(ctx, collection)
	if err != nil {
		p.log.Debugw("no collection metadata", "collection", collection, "error", err)
		return nil
	}
	return &gen.CollectionMeta{Name: info.Name, Author: info.Author, License: info.License}
}

// collectionOf extracts the collection prefix from a full name. Callers only
// pass names that already parsed.
func collectionOf(fullName string) string {
	collection, _, _ := strings.Cut(fullName, ":")
	return collection
}

package gen

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/teranos/iconforge/errors"
	"github.com/teranos/iconforge/icon"
	"github.com/teranos/iconforge/naming"
)

// Entry is one icon pending emission into a collection file.
type Entry struct {
	ConstName string
	FullName  string
	Record    icon.Record
}

// NewEntry builds an emission entry from a parsed identifier and its record.
func NewEntry(id naming.Identifier, rec icon.Record) Entry {
	return Entry{
		ConstName: id.ConstName(),
		FullName:  id.FullName,
		Record:    rec,
	}
}

// CollectionMeta is optional registry metadata rendered as a doc header in
// the collection file.
type CollectionMeta struct {
	Name    string
	Author  string
	License string
}

// collectionFile is the parsed form of one generated collection file: an
// ordered const-name -> entry map plus its doc header lines.
type collectionFile struct {
	docHeader []string
	entries   map[string]Entry
}

// Emit writes or merges entries into the collection's generated file.
//
// The file is treated as a small persistent key-value store: existing
// entries for other constant names are preserved, an entry whose full name
// already exists is replaced in place, and the whole file is rewritten
// atomically. Two distinct icon names resolving to one constant name is an
// ambiguity error, never a silent overwrite.
func (g *Generator) Emit(collection string, entries []Entry, meta *CollectionMeta) error {
	if len(entries) == 0 {
		return nil
	}

	if err := g.ensureOutputDir(); err != nil {
		return err
	}

	path := g.collectionPath(collection)

	existing, err := parseCollectionFile(path)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if prev, ok := existing.entries[entry.ConstName]; ok && prev.FullName != entry.FullName {
			return errors.Wrapf(errors.ErrAmbiguousName,
				"%q and %q both generate constant %s in collection %q",
				prev.FullName, entry.FullName, entry.ConstName, collection)
		}
		existing.entries[entry.ConstName] = entry
	}

	if meta != nil {
		existing.docHeader = metaDocHeader(meta)
	}

	g.log.Debugw("emitting collection file",
		"collection", collection, "path", path, "icons", len(existing.entries))

	return writeFileAtomic(path, []byte(renderCollectionFile(existing)))
}

// collectionPath returns the generated file path for a collection,
// e.g. "simple-icons" -> <out>/simple_icons.rs.
func (g *Generator) collectionPath(collection string) string {
	return g.join(naming.ModuleName(collection) + ".rs")
}

// parseCollectionFile loads a generated collection file back into its
// entry map. A missing file yields an empty store.
func parseCollectionFile(path string) (*collectionFile, error) {
	parsed := &collectionFile{entries: make(map[string]Entry)}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return parsed, nil
	}
	if err != nil {
		return nil, errors.Wrapf(errors.ErrFilesystem, "reading %s: %v", path, err)
	}

	var current *Entry
	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)

		switch {
		case current == nil && strings.HasPrefix(trimmed, "//! "):
			parsed.docHeader = append(parsed.docHeader, trimmed)

		case strings.HasPrefix(trimmed, "pub const "):
			rest := strings.TrimPrefix(trimmed, "pub const ")
			name, _, ok := strings.Cut(rest, ":")
			if !ok {
				return nil, errors.Wrapf(errors.ErrFilesystem,
					"%s: malformed constant declaration %q", path, trimmed)
			}
			current = &Entry{ConstName: strings.TrimSpace(name)}

		case current != nil && trimmed == "};":
			parsed.entries[current.ConstName] = *current
			current = nil

		case current != nil:
			parseEntryField(current, trimmed)
		}
	}

	return parsed, nil
}

// parseEntryField decodes one "field: value," line inside an IconData
// literal.
func parseEntryField(entry *Entry, line string) {
	field, value, ok := strings.Cut(line, ":")
	if !ok {
		return
	}
	value = strings.TrimSuffix(strings.TrimSpace(value), ",")

	switch strings.TrimSpace(field) {
	case "name":
		entry.FullName = unescapeRustString(trimQuotes(value))
	case "body":
		entry.Record.Body = unescapeRustString(trimQuotes(value))
	case "width":
		if n, err := strconv.Atoi(value); err == nil {
			entry.Record.Width = n
		}
	case "height":
		if n, err := strconv.Atoi(value); err == nil {
			entry.Record.Height = n
		}
	case "view_box":
		entry.Record.ViewBox = unescapeRustString(trimQuotes(value))
	}
}

// trimQuotes strips exactly one pair of surrounding double quotes. The body
// itself may end in an escaped quote, so strings.Trim would eat too much.
func trimQuotes(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// renderCollectionFile serializes the whole store, sorted by constant name
// for deterministic output.
func renderCollectionFile(file *collectionFile) string {
	var sb strings.Builder

	sb.WriteString(generatedHeader + "\n")
	for _, line := range file.docHeader {
		sb.WriteString(line + "\n")
	}
	sb.WriteString("#![allow(non_upper_case_globals)]\n\n")
	sb.WriteString("use super::IconData;\n")

	names := make([]string, 0, len(file.entries))
	for name := range file.entries {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		entry := file.entries[name]
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("pub const %s: IconData = IconData {\n", entry.ConstName))
		sb.WriteString(fmt.Sprintf("    name: \"%s\",\n", escapeRustString(entry.FullName)))
		sb.WriteString(fmt.Sprintf("    body: \"%s\",\n", escapeRustString(entry.Record.Body)))
		sb.WriteString(fmt.Sprintf("    width: %d,\n", entry.Record.Width))
		sb.WriteString(fmt.Sprintf("    height: %d,\n", entry.Record.Height))
		sb.WriteString(fmt.Sprintf("    view_box: \"%s\",\n", escapeRustString(entry.Record.ViewBox)))
		sb.WriteString("};\n")
	}

	return sb.String()
}

// metaDocHeader renders registry metadata as //! doc lines.
func metaDocHeader(meta *CollectionMeta) []string {
	if meta.Name == "" {
		return nil
	}

	line := "//! " + meta.Name
	var details []string
	if meta.License != "" {
		details = append(details, meta.License)
	}
	if meta.Author != "" {
		details = append(details, "by "+meta.Author)
	}
	if len(details) > 0 {
		line += " (" + strings.Join(details, ", ") + ")"
	}
	return []string{line}
}

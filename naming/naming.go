// Package naming parses icon identifiers and derives the Rust-safe names
// used by the generated code: a module name per collection and a constant
// name per icon.
package naming

import (
	"strings"
	"unicode"

	"github.com/teranos/iconforge/errors"
)

// Identifier is a parsed "collection:icon-name" pair. Immutable once parsed.
type Identifier struct {
	Collection string
	IconName   string
	FullName   string
}

// Parse parses an icon identifier from the format "collection:icon-name".
// Both sides must be non-empty after trimming.
func Parse(input string) (Identifier, error) {
	parts := strings.Split(input, ":")
	if len(parts) != 2 {
		return Identifier{}, errors.Wrapf(errors.ErrInvalidIdentifier,
			"expected 'collection:icon-name', got %q", input)
	}

	collection := strings.TrimSpace(parts[0])
	iconName := strings.TrimSpace(parts[1])

	if collection == "" || iconName == "" {
		return Identifier{}, errors.Wrapf(errors.ErrInvalidIdentifier,
			"both collection and icon name must be non-empty in %q", input)
	}

	return Identifier{
		Collection: collection,
		IconName:   iconName,
		FullName:   input,
	}, nil
}

// ModuleName returns the Rust module name for a collection,
// e.g. "simple-icons" -> "simple_icons".
func ModuleName(collection string) string {
	return strings.ReplaceAll(collection, "-", "_")
}

// ModuleName returns the Rust module name for this identifier's collection.
func (id Identifier) ModuleName() string {
	return ModuleName(id.Collection)
}

// ConstName converts the icon name to a valid Rust constant name.
//
// The icon name is PascalCased with word boundaries at '-', '_' and
// digit/letter transitions. A leading digit gets a '_' prefix (Rust
// identifiers cannot start with a digit); a case-insensitive Rust keyword
// match gets an "Icon" suffix. Prefix before suffix; the result is stable
// under re-application.
func (id Identifier) ConstName() string {
	constName := toPascalCase(id.IconName)

	if constName != "" && unicode.IsDigit(rune(constName[0])) {
		constName = "_" + constName
	}

	if rustKeywords[strings.ToLower(constName)] {
		constName += "Icon"
	}

	return constName
}

// toPascalCase splits on '-', '_' and digit/letter transitions, then
// capitalizes the first letter of each word, preserving the rest.
func toPascalCase(s string) string {
	var words []string
	var current strings.Builder
	var prev rune

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	for _, r := range s {
		switch {
		case r == '-' || r == '_':
			flush()
			prev = 0
			continue
		case prev != 0 && unicode.IsDigit(prev) != unicode.IsDigit(r):
			flush()
		}
		current.WriteRune(r)
		prev = r
	}
	flush()

	var result strings.Builder
	for _, word := range words {
		runes := []rune(word)
		result.WriteRune(unicode.ToUpper(runes[0]))
		result.WriteString(string(runes[1:]))
	}
	return result.String()
}

// rustKeywords is the exhaustive Rust keyword set, held lowercase for
// case-insensitive matching ("Self" and "self" collapse to one entry).
var rustKeywords = map[string]bool{
	"as": true, "async": true, "await": true, "break": true, "const": true,
	"continue": true, "crate": true, "dyn": true, "else": true, "enum": true,
	"extern": true, "false": true, "fn": true, "for": true, "if": true,
	"impl": true, "in": true, "let": true, "loop": true, "match": true,
	"mod": true, "move": true, "mut": true, "pub": true, "ref": true,
	"return": true, "self": true, "static": true, "struct": true,
	"super": true, "trait": true, "true": true, "type": true, "unsafe": true,
	"use": true, "where": true, "while": true, "yield": true,
}

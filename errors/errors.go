// Package errors provides error handling for iconforge.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints and details
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "check the collection prefix spelling")
//
//	// Check errors
//	if errors.Is(err, errors.ErrNotFound) {
//	    // handle not found
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Sentinel errors for the icon pipeline.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrInvalidIdentifier indicates a malformed "collection:icon-name" string
	ErrInvalidIdentifier = New("invalid icon identifier")

	// ErrNotFound indicates the registry has no such icon
	ErrNotFound = New("icon not found")

	// ErrTransport indicates a network or HTTP failure talking to the registry
	ErrTransport = New("registry request failed")

	// ErrMalformedSource indicates invalid XML/SVG input (bad document,
	// non-svg root, unparsable viewBox)
	ErrMalformedSource = New("malformed SVG source")

	// ErrAmbiguousName indicates two distinct icons in one collection
	// resolve to the same generated constant name
	ErrAmbiguousName = New("ambiguous constant name")

	// ErrFilesystem indicates a read/write failure on generated files
	ErrFilesystem = New("filesystem failure")
)

// IsNotFound checks if an error is or wraps ErrNotFound.
func IsNotFound(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}

// IsMalformedSource checks if an error is or wraps ErrMalformedSource.
func IsMalformedSource(err error) bool {
	return err != nil && Is(err, ErrMalformedSource)
}

// Package mimedb answers bidirectional lookups between MIME types and file
// extensions, backed by the table the dataset package embeds. Both directions
// are served from shared immutable maps: the forward table is parsed on first
// use and the reverse extension index is derived from it, once, on the first
// reverse lookup. All functions are safe for concurrent use.
package mimedb

import (
	"errors"
	"fmt"
	"sync"

	"github.com/GaneshJadhavOnGitHub/mime-to-ext/dataset"
)

// ErrUnavailable is reported by [Status] when the embedded dataset could not
// be parsed. While this holds, every lookup misses for the rest of the
// process lifetime.
var ErrUnavailable = errors.New("mime dataset unavailable")

// Lookup answers MIME type and extension queries over a dataset table.
// The reverse extension index is built on the first call to
// [Lookup.TypeByExtension] and shared by every later call; it is never
// rebuilt and the forward table is never scanned per query.
// A Lookup is safe for concurrent use.
type Lookup struct {
	table *dataset.Table
	err   error

	reverseOnce sync.Once
	reverse     map[string]string
}

// New returns a Lookup over the given table. A nil table yields a Lookup for
// which every query misses and [Lookup.Status] reports [ErrUnavailable],
// matching the behavior of a dataset that failed to parse.
func New(table *dataset.Table) *Lookup {
	return &Lookup{table: table}
}

// ExtensionsByType returns the extensions registered for the given MIME type,
// in dataset order; the first entry is the preferred extension. The boolean
// is false when the MIME type is unknown or the dataset is unavailable. A
// MIME type that is present but has no extensions yields an empty, non-nil
// slice and true, so "registered with no extensions" stays distinguishable
// from "not registered".
func (l *Lookup) ExtensionsByType(mimeType string) ([]string, bool) {
	if l.err != nil || l.table == nil {
		return nil, false
	}
	return l.table.Extensions(mimeType)
}

// PreferredExtension returns the first extension registered for the given
// MIME type. The boolean is false when the MIME type is unknown, its
// extension list is empty, or the dataset is unavailable.
func (l *Lookup) PreferredExtension(mimeType string) (string, bool) {
	exts, ok := l.ExtensionsByType(mimeType)
	if !ok || len(exts) == 0 {
		return "", false
	}
	return exts[0], true
}

// TypeByExtension returns the canonical MIME type for the given extension.
// Matching is exact: the dataset stores extensions lower-case without a
// leading dot and no normalization is applied to the argument. The boolean
// is false when the extension is unknown or the dataset is unavailable.
//
// When several MIME types claim the same extension, the one appearing first
// in the dataset owns it and later claims are ignored.
func (l *Lookup) TypeByExtension(ext string) (string, bool) {
	if l.err != nil || l.table == nil {
		return "", false
	}
	l.reverseOnce.Do(func() {
		l.reverse = l.table.InvertFirstClaim()
	})
	mimeType, ok := l.reverse[ext]
	return mimeType, ok
}

// Status reports whether the dataset behind this Lookup is usable, letting a
// caller tell a broken dataset apart from an unknown key. It never builds
// the reverse index. The returned error matches [ErrUnavailable] when the
// dataset failed to parse.
func (l *Lookup) Status() error {
	switch {
	case l.err != nil:
		return fmt.Errorf("%w: %v", ErrUnavailable, l.err)
	case l.table == nil:
		return ErrUnavailable
	default:
		return nil
	}
}

var (
	stdOnce sync.Once
	std     *Lookup
)

// stdLookup wraps the embedded dataset. dataset.Load already guards the
// parse; the outer Once only keeps all package-level calls on one Lookup so
// the reverse index is also built exactly once.
func stdLookup() *Lookup {
	stdOnce.Do(func() {
		table, err := dataset.Load()
		std = &Lookup{table: table, err: err}
	})
	return std
}

// ExtensionsByType looks up the MIME type in the embedded dataset, parsing
// it on first use. See [Lookup.ExtensionsByType].
func ExtensionsByType(mimeType string) ([]string, bool) {
	return stdLookup().ExtensionsByType(mimeType)
}

// PreferredExtension looks up the MIME type in the embedded dataset, parsing
// it on first use. See [Lookup.PreferredExtension].
func PreferredExtension(mimeType string) (string, bool) {
	return stdLookup().PreferredExtension(mimeType)
}

// TypeByExtension looks up the extension in the embedded dataset, parsing it
// and building the reverse index on first use. See [Lookup.TypeByExtension].
func TypeByExtension(ext string) (string, bool) {
	return stdLookup().TypeByExtension(ext)
}

// Status reports whether the embedded dataset parsed successfully. See
// [Lookup.Status].
func Status() error {
	return stdLookup().Status()
}

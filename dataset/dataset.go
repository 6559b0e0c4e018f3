package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
)

// Table is the forward mapping from MIME type to its registered file
// extensions. The document order of the MIME type keys and of every extension
// list is preserved; the first extension of an entry is the preferred one.
// A Table is immutable once built and safe for concurrent readers.
type Table struct {
	types  []string
	byType map[string][]string
}

// MalformedDatasetError reports a document that is not a JSON object mapping
// MIME type strings to arrays of extension strings.
type MalformedDatasetError struct {
	// Offset is the byte offset in the input at which decoding stopped.
	Offset int64
	Err    error
}

func (e MalformedDatasetError) Error() string {
	return fmt.Sprintf("malformed mime dataset at offset %d: %v", e.Offset, e.Err)
}

func (e MalformedDatasetError) Unwrap() error {
	return e.Err
}

// Parse reads a JSON document of the shape
//
//	{"<mime-type>": ["<ext1>", "<ext2>", ...], ...}
//
// and returns the resulting Table. json.Unmarshal into a map would discard
// the order in which the keys appear in the document, and the reverse-lookup
// collision rule depends on that order, so the object is decoded token by
// token instead. Any document that is not a single object mapping strings to
// arrays of strings is rejected, null values and null elements included. A
// duplicate MIME type key keeps its first occurrence; later occurrences are
// ignored.
func Parse(r io.Reader) (*Table, error) {
	dec := json.NewDecoder(r)

	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	table := &Table{
		byType: make(map[string][]string),
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, MalformedDatasetError{Offset: dec.InputOffset(), Err: err}
		}
		mimeType, ok := tok.(string)
		if !ok {
			return nil, MalformedDatasetError{
				Offset: dec.InputOffset(),
				Err:    fmt.Errorf("expected string key, got %v", tok),
			}
		}

		exts, err := decodeExtensions(dec)
		if err != nil {
			return nil, err
		}

		if _, exists := table.byType[mimeType]; exists {
			continue
		}
		table.types = append(table.types, mimeType)
		table.byType[mimeType] = exts
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	switch _, err := dec.Token(); {
	case errors.Is(err, io.EOF):
	case err != nil:
		return nil, MalformedDatasetError{Offset: dec.InputOffset(), Err: err}
	default:
		return nil, MalformedDatasetError{
			Offset: dec.InputOffset(),
			Err:    errors.New("trailing data after document"),
		}
	}

	return table, nil
}

// decodeExtensions reads the next value, which must be an array of strings.
// Decoding into a []string would silently turn null into an empty list and a
// null element into "", letting the empty string leak into the reverse
// index, so the tokens are checked one by one.
func decodeExtensions(dec *json.Decoder) ([]string, error) {
	if err := expectDelim(dec, '['); err != nil {
		return nil, err
	}
	exts := []string{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, MalformedDatasetError{Offset: dec.InputOffset(), Err: err}
		}
		ext, ok := tok.(string)
		if !ok {
			return nil, MalformedDatasetError{
				Offset: dec.InputOffset(),
				Err:    fmt.Errorf("expected extension string, got %v", tok),
			}
		}
		exts = append(exts, ext)
	}
	return exts, expectDelim(dec, ']')
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return MalformedDatasetError{Offset: dec.InputOffset(), Err: err}
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return MalformedDatasetError{
			Offset: dec.InputOffset(),
			Err:    fmt.Errorf("expected %v, got %v", want, tok),
		}
	}
	return nil
}

// Extensions returns the extension list of the given MIME type in document
// order. The boolean reports whether the MIME type is present in the table.
// A present entry with no extensions yields an empty, non-nil slice. The
// returned slice is a copy; mutating it does not affect the table.
func (t *Table) Extensions(mimeType string) ([]string, bool) {
	exts, ok := t.byType[mimeType]
	switch {
	case !ok:
		return nil, false
	case len(exts) == 0:
		return []string{}, true
	default:
		return slices.Clone(exts), true
	}
}

// Types returns every MIME type in the table in document order.
func (t *Table) Types() []string {
	return slices.Clone(t.types)
}

// Len returns the number of MIME types in the table.
func (t *Table) Len() int {
	return len(t.types)
}

// InvertFirstClaim builds the reverse extension to MIME type mapping.
// Entries are visited in document order and each extension is claimed by the
// first MIME type whose list contains it; later claims are discarded. This
// first-claim-wins policy is a documented contract of the dataset and is why
// Parse preserves document order.
func (t *Table) InvertFirstClaim() map[string]string {
	inv := make(map[string]string)
	for _, mimeType := range t.types {
		for _, ext := range t.byType[mimeType] {
			if _, claimed := inv[ext]; !claimed {
				inv[ext] = mimeType
			}
		}
	}
	return inv
}

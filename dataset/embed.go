package dataset

import (
	"bytes"
	_ "embed"
	"sync"
)

//go:embed mime_db.json
var mimeDB []byte

var (
	loadOnce sync.Once
	loaded   *Table
	loadErr  error
)

// Load parses the embedded dataset. The parse runs exactly once for the
// process lifetime no matter how many goroutines call Load concurrently, and
// every caller receives the same *Table or the same error. A parse failure
// is permanent; there is no retry. The embedded document is checked before
// compilation by cmd/validate-db, so the error path should never be taken in
// a shipped binary, but callers must still handle it.
func Load() (*Table, error) {
	loadOnce.Do(func() {
		loaded, loadErr = Parse(bytes.NewReader(mimeDB))
	})
	return loaded, loadErr
}

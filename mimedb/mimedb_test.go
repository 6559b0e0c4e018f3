package mimedb_test

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/GaneshJadhavOnGitHub/mime-to-ext/dataset"
	"github.com/GaneshJadhavOnGitHub/mime-to-ext/mimedb"
	"github.com/google/go-cmp/cmp"
)

func newLookup(t *testing.T, doc string) *mimedb.Lookup {
	t.Helper()
	table, err := dataset.Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	return mimedb.New(table)
}

const sampleDoc = `{
	"image/png": ["png"],
	"audio/mpeg": ["mp3", "mp1", "mp2"],
	"application/xml": ["xml", "xsd"],
	"text/xml": ["xml"],
	"application/x-empty": []
}`

func TestLookup_ExtensionsByType(t *testing.T) {
	l := newLookup(t, sampleDoc)

	exts, ok := l.ExtensionsByType("audio/mpeg")
	if !ok {
		t.Fatal("ExtensionsByType(audio/mpeg) reported absent")
	}
	if diff := cmp.Diff([]string{"mp3", "mp1", "mp2"}, exts); diff != "" {
		t.Errorf("ExtensionsByType() mismatch (-want +got):\n%s", diff)
	}

	if _, ok := l.ExtensionsByType("foo/bar"); ok {
		t.Error("ExtensionsByType(foo/bar) reported present")
	}
}

func TestLookup_ExtensionsByType_emptyListStaysPresent(t *testing.T) {
	l := newLookup(t, sampleDoc)

	exts, ok := l.ExtensionsByType("application/x-empty")
	if !ok {
		t.Fatal("ExtensionsByType() reported absent for a present key")
	}
	if exts == nil || len(exts) != 0 {
		t.Errorf("ExtensionsByType() = %#v, want empty non-nil slice", exts)
	}
}

func TestLookup_PreferredExtension(t *testing.T) {
	l := newLookup(t, sampleDoc)

	got, ok := l.PreferredExtension("audio/mpeg")
	if !ok || got != "mp3" {
		t.Errorf("PreferredExtension(audio/mpeg) = %q, %t, want \"mp3\", true", got, ok)
	}

	if _, ok := l.PreferredExtension("foo/bar"); ok {
		t.Error("PreferredExtension(foo/bar) reported present")
	}

	// An entry with an empty list has no preferred extension even though the
	// plural form reports it as present.
	if _, ok := l.PreferredExtension("application/x-empty"); ok {
		t.Error("PreferredExtension(application/x-empty) reported present")
	}
}

func TestLookup_TypeByExtension(t *testing.T) {
	l := newLookup(t, sampleDoc)

	got, ok := l.TypeByExtension("mp1")
	if !ok || got != "audio/mpeg" {
		t.Errorf("TypeByExtension(mp1) = %q, %t, want \"audio/mpeg\", true", got, ok)
	}

	if _, ok := l.TypeByExtension("qqq"); ok {
		t.Error("TypeByExtension(qqq) reported present")
	}
}

func TestLookup_TypeByExtension_firstClaimWins(t *testing.T) {
	l := newLookup(t, sampleDoc)

	// Both application/xml and text/xml claim "xml"; the earlier dataset
	// entry owns it.
	got, ok := l.TypeByExtension("xml")
	if !ok || got != "application/xml" {
		t.Errorf("TypeByExtension(xml) = %q, %t, want \"application/xml\", true", got, ok)
	}
}

func TestLookup_TypeByExtension_exactMatchOnly(t *testing.T) {
	l := newLookup(t, sampleDoc)

	for _, ext := range []string{".png", "PNG", " png"} {
		if _, ok := l.TypeByExtension(ext); ok {
			t.Errorf("TypeByExtension(%q) reported present, want exact-match miss", ext)
		}
	}
}

func TestLookup_idempotent(t *testing.T) {
	l := newLookup(t, sampleDoc)

	first, _ := l.ExtensionsByType("audio/mpeg")
	for i := 0; i < 10; i++ {
		exts, ok := l.ExtensionsByType("audio/mpeg")
		if !ok {
			t.Fatal("ExtensionsByType() reported absent on repeat call")
		}
		if diff := cmp.Diff(first, exts); diff != "" {
			t.Fatalf("repeat call differs (-first +got):\n%s", diff)
		}

		mimeType, ok := l.TypeByExtension("png")
		if !ok || mimeType != "image/png" {
			t.Fatalf("TypeByExtension(png) = %q, %t on repeat call", mimeType, ok)
		}
	}
}

func TestLookup_unavailable(t *testing.T) {
	l := mimedb.New(nil)

	if _, ok := l.ExtensionsByType("image/png"); ok {
		t.Error("ExtensionsByType() reported present on unavailable dataset")
	}
	if _, ok := l.PreferredExtension("image/png"); ok {
		t.Error("PreferredExtension() reported present on unavailable dataset")
	}
	if _, ok := l.TypeByExtension("png"); ok {
		t.Error("TypeByExtension() reported present on unavailable dataset")
	}
	if err := l.Status(); !errors.Is(err, mimedb.ErrUnavailable) {
		t.Errorf("Status() = %v, want ErrUnavailable", err)
	}
}

func TestLookup_Status(t *testing.T) {
	l := newLookup(t, sampleDoc)
	if err := l.Status(); err != nil {
		t.Errorf("Status() = %v, want nil", err)
	}
}

func TestStatus_embeddedDataset(t *testing.T) {
	if err := mimedb.Status(); err != nil {
		t.Errorf("Status() = %v, want nil", err)
	}
}

func TestLookup_concurrentFirstCall(t *testing.T) {
	const callers = 64

	l := newLookup(t, sampleDoc)

	results := make([]string, callers)
	var start, done sync.WaitGroup
	start.Add(1)
	done.Add(callers)
	for i := 0; i < callers; i++ {
		i := i
		go func() {
			defer done.Done()
			start.Wait()
			mimeType, ok := l.TypeByExtension("mp2")
			if ok {
				results[i] = mimeType
			}
		}()
	}
	start.Done()
	done.Wait()

	for i, got := range results {
		if got != "audio/mpeg" {
			t.Fatalf("caller %d got %q, want \"audio/mpeg\"", i, got)
		}
	}
}

func ExamplePreferredExtension() {
	ext, ok := mimedb.PreferredExtension("image/png")
	fmt.Println(ext, ok)
	// Output: png true
}

func ExampleExtensionsByType() {
	exts, _ := mimedb.ExtensionsByType("audio/mpeg")
	fmt.Println(strings.Join(exts, ", "))
	// Output: mp3, mp1, mp2
}

func ExampleTypeByExtension() {
	mimeType, ok := mimedb.TypeByExtension("mp1")
	fmt.Println(mimeType, ok)
	// Output: audio/mpeg true
}

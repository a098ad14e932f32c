package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestSaveThenExists stores a visual and finds it back under the
// generated name.
func TestSaveThenExists(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore error: %v", err)
	}

	name, err := store.Save(context.Background(), strings.NewReader("png bytes"), ".png")
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if !strings.HasSuffix(name, ".png") {
		t.Fatalf("expected .png suffix, got %q", name)
	}

	ok, err := store.Exists(context.Background(), name)
	if err != nil {
		t.Fatalf("Exists error: %v", err)
	}
	if !ok {
		t.Fatalf("expected %q to exist", name)
	}
}

// TestExistsRejectsPaths never resolves names outside the store
// directory.
func TestExistsRejectsPaths(t *testing.T) {
	dir := t.TempDir()
	outside := filepath.Join(dir, "secret.png")
	if err := os.WriteFile(outside, []byte("x"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	store, err := NewLocalStore(filepath.Join(dir, "visuals"))
	if err != nil {
		t.Fatalf("NewLocalStore error: %v", err)
	}

	for _, name := range []string{"", "../secret.png", "/etc/passwd"} {
		ok, err := store.Exists(context.Background(), name)
		if err != nil {
			t.Fatalf("Exists(%q) error: %v", name, err)
		}
		if ok {
			t.Fatalf("expected Exists(%q) to be false", name)
		}
	}
}

// TestExistsMissing reports false without error for unknown names.
func TestExistsMissing(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore error: %v", err)
	}

	ok, err := store.Exists(context.Background(), "nope.png")
	if err != nil {
		t.Fatalf("Exists error: %v", err)
	}
	if ok {
		t.Fatalf("expected missing visual to report false")
	}
}

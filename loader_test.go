package markdown

import (
	"context"
	"os"
	"testing"
)

func newTestLoader(tb testing.TB, cfg LoaderConfig) *Loader {
	tb.Helper()
	if cfg.BasePath == "" {
		cfg.BasePath = "testdata"
	}
	return NewLoader(os.DirFS("testdata"), cfg)
}

func TestLoader_LoadFile(t *testing.T) {
	loader := newTestLoader(t, LoaderConfig{})

	doc, err := loader.LoadFile(context.Background(), "basic.md")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if doc.Path != "basic.md" {
		t.Fatalf("expected path basic.md, got %q", doc.Path)
	}
	if doc.FrontMatter.Title != "Sample Document" {
		t.Fatalf("expected frontmatter title, got %q", doc.FrontMatter.Title)
	}
	if len(doc.Body) == 0 {
		t.Fatalf("expected body content")
	}
	if len(doc.Checksum) != 32 {
		t.Fatalf("expected sha256 checksum, got %d bytes", len(doc.Checksum))
	}
	if doc.ModTime.IsZero() {
		t.Fatalf("expected modification time to be recorded")
	}
}

func TestLoader_DeterministicID(t *testing.T) {
	loader := newTestLoader(t, LoaderConfig{})
	ctx := context.Background()

	first, err := loader.LoadFile(ctx, "basic.md")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	second, err := loader.LoadFile(ctx, "basic.md")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected deterministic document IDs, got %s and %s", first.ID, second.ID)
	}

	other, err := loader.LoadFile(ctx, "guide.md")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if other.ID == first.ID {
		t.Fatalf("expected distinct documents to have distinct IDs")
	}
}

func TestLoader_LoadDirectory(t *testing.T) {
	loader := newTestLoader(t, LoaderConfig{Recursive: true})

	docs, err := loader.LoadDirectory(context.Background(), ".")
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}

	if len(docs) != 3 {
		t.Fatalf("expected three documents, got %d", len(docs))
	}
	// Sorted by path.
	if docs[0].Path != "basic.md" || docs[1].Path != "guide.md" || docs[2].Path != "nested/extra.md" {
		t.Fatalf("unexpected order: %q %q %q", docs[0].Path, docs[1].Path, docs[2].Path)
	}
}

func TestLoader_LoadDirectoryNonRecursive(t *testing.T) {
	loader := newTestLoader(t, LoaderConfig{})

	docs, err := loader.LoadDirectory(context.Background(), ".")
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}

	for _, doc := range docs {
		if doc.Path == "nested/extra.md" {
			t.Fatalf("expected nested documents to be skipped")
		}
	}
	if len(docs) != 2 {
		t.Fatalf("expected two documents, got %d", len(docs))
	}
}

func TestLoader_CanceledContext(t *testing.T) {
	loader := newTestLoader(t, LoaderConfig{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := loader.LoadFile(ctx, "basic.md"); err == nil {
		t.Fatalf("expected context error")
	}
	if _, err := loader.LoadDirectory(ctx, "."); err == nil {
		t.Fatalf("expected context error")
	}
}

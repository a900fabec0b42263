package markdown

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"
)

func newTestService(tb testing.TB, cfg Config) *Service {
	tb.Helper()

	fsys := fstest.MapFS{
		"docs/intro.md": &fstest.MapFile{
			Data: []byte("---\ntitle: Intro\n---\n\n# Intro\n\nWelcome paragraph.\n\n## Details\n\nMore detail here.\n"),
		},
		"docs/guide.md": &fstest.MapFile{
			Data: []byte("# Guide\n\nGuide body.\n"),
		},
		"docs/empty.md": &fstest.MapFile{
			Data: []byte(""),
		},
	}

	service, err := NewServiceFS(cfg, fsys)
	if err != nil {
		tb.Fatalf("NewServiceFS: %v", err)
	}
	return service
}

func TestService_Scan(t *testing.T) {
	service := newTestService(t, Config{Recursive: true})

	report, err := service.Scan(context.Background(), "docs/intro.md")
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if report.Document.FrontMatter.Title != "Intro" {
		t.Fatalf("expected frontmatter title, got %q", report.Document.FrontMatter.Title)
	}
	if report.Parsed == nil || report.Parsed.Title != "Intro" {
		t.Fatalf("expected parsed title, got %#v", report.Parsed)
	}
	if len(report.Sections) != 2 {
		t.Fatalf("expected two sections, got %#v", report.Sections)
	}
	if len(report.Outline) != 2 {
		t.Fatalf("expected two outline entries, got %#v", report.Outline)
	}
	if report.Outline[0].Anchor != "intro" {
		t.Fatalf("expected anchor intro, got %q", report.Outline[0].Anchor)
	}
}

func TestService_ScanEmptyDocument(t *testing.T) {
	service := newTestService(t, Config{})

	report, err := service.Scan(context.Background(), "docs/empty.md")
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if report.Document == nil {
		t.Fatalf("expected document record")
	}
	if report.Parsed != nil {
		t.Fatalf("expected no parse result for an empty body")
	}
}

func TestService_ScanDirectory(t *testing.T) {
	service := newTestService(t, Config{Recursive: true})

	reports, err := service.ScanDirectory(context.Background(), "docs")
	if err != nil {
		t.Fatalf("ScanDirectory: %v", err)
	}
	if len(reports) != 3 {
		t.Fatalf("expected three reports, got %d", len(reports))
	}
	if reports[0].Document.Path != "docs/empty.md" {
		t.Fatalf("expected reports ordered by path, got %q first", reports[0].Document.Path)
	}
}

func TestService_FrontMatterSchema(t *testing.T) {
	schema := map[string]any{
		"type":     "object",
		"required": []any{"title"},
	}
	service := newTestService(t, Config{FrontMatterSchema: schema})

	if _, err := service.Scan(context.Background(), "docs/intro.md"); err != nil {
		t.Fatalf("expected intro.md to satisfy the schema, got %v", err)
	}

	// guide.md has no frontmatter title.
	if _, err := service.Scan(context.Background(), "docs/guide.md"); err == nil {
		t.Fatalf("expected schema validation failure")
	}
}

func TestService_Render(t *testing.T) {
	service := newTestService(t, Config{})

	html, err := service.Render(context.Background(), "docs/guide.md")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(html), "Guide</h1>") {
		t.Fatalf("expected rendered heading, got %q", string(html))
	}
}

func TestConfig_Validate(t *testing.T) {
	if err := (Config{}).Validate(); err == nil {
		t.Fatalf("expected missing base path to fail validation")
	}
	if err := (Config{BasePath: "content"}).Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
	if err := (Config{BasePath: "content", FrontMatterSchema: map[string]any{"type": 12}}).Validate(); err == nil {
		t.Fatalf("expected malformed schema to fail validation")
	}
}

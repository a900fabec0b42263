package markdown

import (
	"strings"
	"testing"
)

func TestRenderer_Render(t *testing.T) {
	renderer := NewRenderer(RenderOptions{})

	html, err := renderer.Render([]byte("# Heading\n\nHello **world**"))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	got := string(html)
	if !strings.Contains(got, "<h1") || !strings.Contains(got, "Heading</h1>") {
		t.Fatalf("expected rendered HTML to include <h1>Heading</h1>, got %q", got)
	}
	if !strings.Contains(got, "<strong>world</strong>") {
		t.Fatalf("expected rendered HTML to include <strong>, got %q", got)
	}
}

func TestRenderer_RenderWithOptions(t *testing.T) {
	renderer := NewRenderer(RenderOptions{})

	html, err := renderer.RenderWithOptions([]byte("line one\nline two"), RenderOptions{
		HardWraps: true,
	})
	if err != nil {
		t.Fatalf("RenderWithOptions: %v", err)
	}

	if !strings.Contains(string(html), "line one<br>") {
		t.Fatalf("expected hard wraps in HTML output, got %q", string(html))
	}
}

func TestRenderer_UnknownExtensionsIgnored(t *testing.T) {
	renderer := NewRenderer(RenderOptions{Extensions: []string{"table", "made-up"}})

	html, err := renderer.Render([]byte("plain text"))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(html), "plain text") {
		t.Fatalf("unexpected output %q", string(html))
	}
}

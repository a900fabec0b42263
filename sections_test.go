package markdown

import (
	"reflect"
	"testing"
)

func TestSections_Basic(t *testing.T) {
	r := New()
	r.LoadString("# A\ncontent1\n## B\ncontent2")

	sections, err := r.Sections()
	if err != nil {
		t.Fatalf("Sections: %v", err)
	}

	want := []Section{
		{Level: 1, Heading: "A", Content: "content1"},
		{Level: 2, Heading: "B", Content: "content2"},
	}
	if !reflect.DeepEqual(sections, want) {
		t.Fatalf("sections mismatch: %#v", sections)
	}
}

func TestSections_PreambleDropped(t *testing.T) {
	r := New()
	r.LoadString("orphan text\nmore orphan\n\n# First\nbody")

	sections, err := r.Sections()
	if err != nil {
		t.Fatalf("Sections: %v", err)
	}

	if len(sections) != 1 {
		t.Fatalf("expected one section, got %#v", sections)
	}
	if sections[0].Heading != "First" || sections[0].Content != "body" {
		t.Fatalf("unexpected section: %#v", sections[0])
	}
}

func TestSections_BlankLinesPreserved(t *testing.T) {
	// Unlike the paragraph pass, blank lines stay inside section content;
	// only the outer edges are trimmed.
	r := New()
	r.LoadString("# A\n\nline1\n\nline2\n\n")

	sections, err := r.Sections()
	if err != nil {
		t.Fatalf("Sections: %v", err)
	}

	if len(sections) != 1 {
		t.Fatalf("expected one section, got %#v", sections)
	}
	if sections[0].Content != "line1\n\nline2" {
		t.Fatalf("expected internal blank line preserved, got %q", sections[0].Content)
	}
}

func TestSections_HeadingOnlyDocument(t *testing.T) {
	r := New()
	r.LoadString("# Solo")

	sections, err := r.Sections()
	if err != nil {
		t.Fatalf("Sections: %v", err)
	}

	want := []Section{{Level: 1, Heading: "Solo", Content: ""}}
	if !reflect.DeepEqual(sections, want) {
		t.Fatalf("sections mismatch: %#v", sections)
	}
}

func TestSections_IndependentOfParseCache(t *testing.T) {
	r := New()
	r.LoadString("# A\ncontent")

	if _, err := r.Sections(); err != nil {
		t.Fatalf("Sections before Parse: %v", err)
	}
	if _, err := r.Parse(); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	sections, err := r.Sections()
	if err != nil {
		t.Fatalf("Sections after Parse: %v", err)
	}
	if len(sections) != 1 || sections[0].Content != "content" {
		t.Fatalf("sections mismatch: %#v", sections)
	}
}

package markdown

import (
	"errors"
	"io/fs"
	"os"
	"strings"
)

// Reader holds the current raw content and a lazily computed parse
// result. Each Reader owns its state exclusively; callers sharing one
// instance across goroutines must serialise access themselves.
type Reader struct {
	path    string
	content string
	parsed  *ParsedDocument
}

// New returns an empty Reader. Content must be supplied via LoadFile or
// LoadString before Parse and the derived accessors can be used.
func New() *Reader {
	return &Reader{}
}

// NewFromFile returns a Reader with the given file already loaded.
func NewFromFile(path string) (*Reader, error) {
	r := New()
	if _, err := r.LoadFile(path); err != nil {
		return nil, err
	}
	return r, nil
}

// LoadFile reads the file at path as UTF-8 text and stores it as the
// current content, replacing any previous content and discarding any
// cached parse result. It returns ErrNotFound when the path does not
// exist and ErrInvalidInput when it is not a regular file.
func (r *Reader) LoadFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &PathError{Path: path, Err: ErrNotFound}
		}
		return "", err
	}
	if !info.Mode().IsRegular() {
		return "", &PathError{Path: path, Err: ErrInvalidInput}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	r.path = path
	r.content = string(data)
	r.parsed = nil

	return r.content, nil
}

// LoadString stores text verbatim as the current content. Any previous
// content, file association, and cached parse result are discarded.
func (r *Reader) LoadString(text string) string {
	r.path = ""
	r.content = text
	r.parsed = nil

	return r.content
}

// Content returns the current raw content, empty when nothing is loaded.
func (r *Reader) Content() string {
	return r.content
}

// Path returns the file path of the current content, empty when the
// content came from LoadString or nothing is loaded.
func (r *Reader) Path() string {
	return r.path
}

// Parse derives the structured document from the current content. The
// result is computed once and cached until the next load; repeated calls
// return the same value. Parse returns ErrNoContent when no content has
// been loaded.
func (r *Reader) Parse() (*ParsedDocument, error) {
	if r.content == "" {
		return nil, ErrNoContent
	}
	if r.parsed != nil {
		return r.parsed, nil
	}

	r.parsed = &ParsedDocument{
		Title:      extractTitle(r.content),
		Headings:   extractHeadings(r.content),
		Paragraphs: extractParagraphs(r.content),
		CodeBlocks: extractCodeBlocks(r.content),
		Links:      extractLinks(r.content),
		Images:     extractImages(r.content),
		Raw:        r.content,
	}

	return r.parsed, nil
}

// HeadingsByLevel returns the texts of all headings at the given level,
// in document order. It forces a full Parse.
func (r *Reader) HeadingsByLevel(level int) ([]string, error) {
	parsed, err := r.Parse()
	if err != nil {
		return nil, err
	}

	var texts []string
	for _, h := range parsed.Headings {
		if h.Level == level {
			texts = append(texts, h.Text)
		}
	}
	return texts, nil
}

// Sections splits the document into heading-delimited spans. Content
// before the first heading belongs to no section. Unlike the paragraph
// pass, blank lines are kept inside section content; each section is
// trimmed only once it closes. Sections re-scans the raw content and
// does not touch the parse cache.
func (r *Reader) Sections() ([]Section, error) {
	if r.content == "" {
		return nil, ErrNoContent
	}

	var sections []Section
	var current *Section
	var content []string

	closeSection := func() {
		if current != nil {
			current.Content = strings.TrimSpace(strings.Join(content, "\n"))
			sections = append(sections, *current)
		}
	}

	for _, line := range strings.Split(r.content, "\n") {
		if level, text, ok := matchHeading(line); ok {
			closeSection()
			current = &Section{Level: level, Heading: text}
			content = nil
			continue
		}
		if current != nil {
			content = append(content, line)
		}
	}
	closeSection()

	return sections, nil
}

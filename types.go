package markdown

// Heading records a single ATX heading and where it appeared.
type Heading struct {
	// Level is the number of leading # characters (1-6).
	Level int `json:"level"`
	// Text is the heading text with surrounding whitespace removed.
	Text string `json:"text"`
	// Line is the 1-based line number the heading appeared on.
	Line int `json:"line_number"`
}

// CodeBlock is a triple-backtick fenced region with the fences stripped.
type CodeBlock struct {
	// Language is the tag following the opening fence, empty when absent.
	Language string `json:"language,omitempty"`
	Code     string `json:"code"`
}

// Link is an inline link or a reference-style link definition. The two
// kinds are collected into one ordered list; reference usages are not
// resolved against their definitions.
type Link struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// Image is an inline image reference. AltText may be empty.
type Image struct {
	AltText string `json:"alt_text"`
	URL     string `json:"url"`
}

// Section is the span of content governed by one heading, up to the
// next heading of any level or the end of the document.
type Section struct {
	Level   int    `json:"level"`
	Heading string `json:"heading"`
	Content string `json:"content"`
}

// ParsedDocument aggregates every extraction pass over one document.
type ParsedDocument struct {
	// Title is the text of the first level-1 heading, empty when the
	// document has none.
	Title      string      `json:"title,omitempty"`
	Headings   []Heading   `json:"headings"`
	Paragraphs []string    `json:"paragraphs"`
	CodeBlocks []CodeBlock `json:"code_blocks"`
	Links      []Link      `json:"links"`
	Images     []Image     `json:"images"`
	Raw        string      `json:"raw"`
}

// OutlineEntry is a heading enriched with a stable anchor slug, suitable
// for building tables of contents.
type OutlineEntry struct {
	Level  int    `json:"level"`
	Text   string `json:"text"`
	Anchor string `json:"anchor"`
	Line   int    `json:"line_number"`
}

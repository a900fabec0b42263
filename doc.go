// Package markdown reads Markdown text and derives structured document
// data through independent extraction passes: title, headings,
// paragraphs, fenced code blocks, links, images, and heading-delimited
// sections. The Reader is the core entry point; Loader and Service add
// filesystem discovery, frontmatter handling, and HTML rendering on top.
//
// The extraction grammar is intentionally shallow. It recognises ATX
// headings, triple-backtick fences, inline and reference-style links,
// and image syntax, and does not attempt CommonMark compliance or
// nested construct parsing.
package markdown

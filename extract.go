package markdown

import (
	"regexp"
	"strings"
)

// The extraction grammar. Each pass is a pure function over the raw
// text; passes never feed into each other so their order is free.
var (
	headingPattern = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	codeFence      = regexp.MustCompile("(?s)```(\\w+)?\\n(.*?)```")
	inlineLink     = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	refLinkDef     = regexp.MustCompile(`^\[([^\]]+)\]:\s+(.+)$`)
	imageRef       = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)
	bulletMarker   = regexp.MustCompile(`^[-*+]\s+`)
	numberedMarker = regexp.MustCompile(`^\d+\.\s+`)
)

// matchHeading applies the heading grammar to a single line and returns
// the level and trimmed text, or ok=false when the line is not a heading.
func matchHeading(line string) (level int, text string, ok bool) {
	m := headingPattern.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return 0, "", false
	}
	return len(m[1]), strings.TrimSpace(m[2]), true
}

// extractTitle returns the text of the first level-1 heading, or "".
func extractTitle(raw string) string {
	for _, line := range strings.Split(raw, "\n") {
		if level, text, ok := matchHeading(line); ok && level == 1 {
			return text
		}
	}
	return ""
}

// extractHeadings records every heading with its 1-based line number.
func extractHeadings(raw string) []Heading {
	var headings []Heading
	for i, line := range strings.Split(raw, "\n") {
		if level, text, ok := matchHeading(line); ok {
			headings = append(headings, Heading{
				Level: level,
				Text:  text,
				Line:  i + 1,
			})
		}
	}
	return headings
}

// extractParagraphs joins runs of plain lines with single spaces. Blank
// lines flush the current run; structural lines (headings, fences, list
// markers) are skipped without flushing, so a run continues across them.
func extractParagraphs(raw string) []string {
	var paragraphs []string
	var run []string

	flush := func() {
		if len(run) > 0 {
			paragraphs = append(paragraphs, strings.Join(run, " "))
			run = nil
		}
	}

	for _, line := range strings.Split(raw, "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			flush()
			continue
		}
		if strings.HasPrefix(stripped, "#") {
			continue
		}
		if strings.HasPrefix(stripped, "```") {
			continue
		}
		if bulletMarker.MatchString(stripped) {
			continue
		}
		if numberedMarker.MatchString(stripped) {
			continue
		}
		run = append(run, stripped)
	}
	flush()

	return paragraphs
}

// extractCodeBlocks matches fenced regions non-greedily across lines.
// The opening fence may carry a language tag on the same line; captured
// code is trimmed at both ends.
func extractCodeBlocks(raw string) []CodeBlock {
	var blocks []CodeBlock
	for _, m := range codeFence.FindAllStringSubmatch(raw, -1) {
		blocks = append(blocks, CodeBlock{
			Language: m[1],
			Code:     strings.TrimSpace(m[2]),
		})
	}
	return blocks
}

// extractLinks collects inline links found anywhere in the text, then
// reference-style definitions found by a separate line scan. The two
// passes are independent; usages of the form [text][ref] are never
// resolved against their definitions.
func extractLinks(raw string) []Link {
	var links []Link

	for _, idx := range inlineLink.FindAllStringSubmatchIndex(raw, -1) {
		// [alt](url) directly preceded by ! is image syntax.
		if idx[0] > 0 && raw[idx[0]-1] == '!' {
			continue
		}
		links = append(links, Link{
			Text: raw[idx[2]:idx[3]],
			URL:  raw[idx[4]:idx[5]],
		})
	}

	for _, line := range strings.Split(raw, "\n") {
		if m := refLinkDef.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			links = append(links, Link{
				Text: m[1],
				URL:  strings.TrimSpace(m[2]),
			})
		}
	}

	return links
}

// extractImages matches ![alt](url) anywhere in the text.
func extractImages(raw string) []Image {
	var images []Image
	for _, m := range imageRef.FindAllStringSubmatch(raw, -1) {
		images = append(images, Image{
			AltText: m[1],
			URL:     m[2],
		})
	}
	return images
}

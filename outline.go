package markdown

import (
	"fmt"

	slug "github.com/goliatone/go-slug"
)

// Outline derives table-of-contents entries from the heading pass. Each
// entry carries an anchor slug; repeated headings get a numeric suffix
// so anchors stay unique within one document. Outline forces a full
// Parse.
func (r *Reader) Outline() ([]OutlineEntry, error) {
	parsed, err := r.Parse()
	if err != nil {
		return nil, err
	}

	var entries []OutlineEntry
	seen := map[string]int{}

	for _, h := range parsed.Headings {
		anchor := headingAnchor(h.Text)
		seen[anchor]++
		if n := seen[anchor]; n > 1 && anchor != "" {
			anchor = fmt.Sprintf("%s-%d", anchor, n)
		}
		entries = append(entries, OutlineEntry{
			Level:  h.Level,
			Text:   h.Text,
			Anchor: anchor,
			Line:   h.Line,
		})
	}

	return entries, nil
}

func headingAnchor(text string) string {
	normalized, err := slug.Normalize(text)
	if err != nil {
		return ""
	}
	return normalized
}

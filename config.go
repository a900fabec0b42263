package markdown

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	internalvalidation "github.com/goliatone/go-markdown/internal/validation"
	"github.com/goliatone/go-markdown/pkg/interfaces"
)

// Config controls how the Service discovers, scans, and renders
// Markdown files.
type Config struct {
	// BasePath is the content root every path is resolved against.
	BasePath string
	// Pattern limits discovery to matching files (defaults to "*.md").
	Pattern string
	// Recursive controls directory traversal during discovery.
	Recursive bool
	// Render supplies default HTML rendering options.
	Render RenderOptions
	// FrontMatterSchema optionally validates each document's
	// frontmatter payload. The map must be JSON-schema shaped.
	FrontMatterSchema map[string]any
	// Logger receives scan and render telemetry. Nil disables logging.
	Logger interfaces.Logger
}

// Validate reports configuration problems before a Service is built.
func (c Config) Validate() error {
	if err := validation.ValidateStruct(&c,
		validation.Field(&c.BasePath, validation.Required),
	); err != nil {
		return err
	}
	return internalvalidation.ValidateSchema(c.FrontMatterSchema)
}

package scancmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	scanDirectoryMessageType = "markdown.scan_directory"
	renderFileMessageType    = "markdown.render_file"
)

// ScanDirectoryCommand triggers a filesystem walk for Markdown documents
// under the provided Directory, deriving a structural report for each.
type ScanDirectoryCommand struct {
	// Directory selects the path (relative to the service base) to scan.
	Directory string `json:"directory"`
}

// Type implements command.Message.
func (ScanDirectoryCommand) Type() string { return scanDirectoryMessageType }

// Validate ensures directory input is present before handlers execute.
func (cmd ScanDirectoryCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("markdown.scan_directory.directory_required", "directory is required")
			}
			return nil
		})),
	)
}

// RenderFileCommand renders a single Markdown document into HTML.
type RenderFileCommand struct {
	// Path selects the file (relative to the service base) to render.
	Path string `json:"path"`
}

// Type implements command.Message.
func (RenderFileCommand) Type() string { return renderFileMessageType }

// Validate ensures the file path is present before handlers execute.
func (cmd RenderFileCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Path, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("markdown.render_file.path_required", "path is required")
			}
			return nil
		})),
	)
}

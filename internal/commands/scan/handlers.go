// Package scancmd exposes scan and render operations as go-command
// handlers so host applications can dispatch them through a shared
// command bus.
package scancmd

import (
	"context"

	command "github.com/goliatone/go-command"

	markdown "github.com/goliatone/go-markdown"
	"github.com/goliatone/go-markdown/internal/commands"
	"github.com/goliatone/go-markdown/internal/logging"
	"github.com/goliatone/go-markdown/pkg/interfaces"
)

const (
	scanOperation   = "markdown.scan_directory"
	renderOperation = "markdown.render_file"
)

// DocumentScanner is the service surface the handlers depend on.
type DocumentScanner interface {
	ScanDirectory(ctx context.Context, dir string) ([]*markdown.Report, error)
	Render(ctx context.Context, path string) ([]byte, error)
}

var (
	_ command.Commander[ScanDirectoryCommand] = (*ScanDirectoryHandler)(nil)
	_ command.Commander[RenderFileCommand]    = (*RenderFileHandler)(nil)
)

// ScanDirectoryHandler walks a directory and logs a structural summary
// for every document found.
type ScanDirectoryHandler struct {
	inner *commands.Handler[ScanDirectoryCommand]
}

// NewScanDirectoryHandler creates a handler bound to the supplied scanner.
func NewScanDirectoryHandler(scanner DocumentScanner, logger interfaces.Logger, opts ...commands.HandlerOption[ScanDirectoryCommand]) *ScanDirectoryHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg ScanDirectoryCommand) error {
		reports, err := scanner.ScanDirectory(ctx, msg.Directory)
		if err != nil {
			return err
		}

		headings := 0
		sections := 0
		for _, report := range reports {
			if report.Parsed != nil {
				headings += len(report.Parsed.Headings)
			}
			sections += len(report.Sections)
		}
		logging.WithFields(baseLogger, map[string]any{
			"document_count": len(reports),
			"heading_count":  headings,
			"section_count":  sections,
		}).Info("markdown.command.scan_directory.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[ScanDirectoryCommand]{
		commands.WithLogger[ScanDirectoryCommand](baseLogger),
		commands.WithOperation[ScanDirectoryCommand](scanOperation),
		commands.WithMessageFields(func(msg ScanDirectoryCommand) map[string]any {
			return map[string]any{"directory": msg.Directory}
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ScanDirectoryHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute implements command.Commander.
func (h *ScanDirectoryHandler) Execute(ctx context.Context, msg ScanDirectoryCommand) error {
	return h.inner.Execute(ctx, msg)
}

// RenderFileHandler renders one document into HTML and logs the result size.
type RenderFileHandler struct {
	inner *commands.Handler[RenderFileCommand]
}

// NewRenderFileHandler creates a handler bound to the supplied scanner.
func NewRenderFileHandler(scanner DocumentScanner, logger interfaces.Logger, opts ...commands.HandlerOption[RenderFileCommand]) *RenderFileHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg RenderFileCommand) error {
		html, err := scanner.Render(ctx, msg.Path)
		if err != nil {
			return err
		}
		logging.WithFields(baseLogger, map[string]any{
			"path":       msg.Path,
			"html_bytes": len(html),
		}).Info("markdown.command.render_file.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[RenderFileCommand]{
		commands.WithLogger[RenderFileCommand](baseLogger),
		commands.WithOperation[RenderFileCommand](renderOperation),
		commands.WithMessageFields(func(msg RenderFileCommand) map[string]any {
			return map[string]any{"path": msg.Path}
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &RenderFileHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute implements command.Commander.
func (h *RenderFileHandler) Execute(ctx context.Context, msg RenderFileCommand) error {
	return h.inner.Execute(ctx, msg)
}

package scancmd

import (
	"context"
	"errors"
	"testing"

	goerrors "github.com/goliatone/go-errors"

	markdown "github.com/goliatone/go-markdown"
)

type stubScanner struct {
	scanDirs    []string
	renderPaths []string
	reports     []*markdown.Report
	html        []byte
	err         error
}

func (s *stubScanner) ScanDirectory(ctx context.Context, dir string) ([]*markdown.Report, error) {
	s.scanDirs = append(s.scanDirs, dir)
	return s.reports, s.err
}

func (s *stubScanner) Render(ctx context.Context, path string) ([]byte, error) {
	s.renderPaths = append(s.renderPaths, path)
	return s.html, s.err
}

func TestScanDirectoryHandler_Execute(t *testing.T) {
	scanner := &stubScanner{
		reports: []*markdown.Report{
			{Parsed: &markdown.ParsedDocument{Headings: []markdown.Heading{{Level: 1, Text: "A", Line: 1}}}},
		},
	}
	handler := NewScanDirectoryHandler(scanner, nil)

	if err := handler.Execute(context.Background(), ScanDirectoryCommand{Directory: "content"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(scanner.scanDirs) != 1 || scanner.scanDirs[0] != "content" {
		t.Fatalf("expected scanner to receive the directory, got %#v", scanner.scanDirs)
	}
}

func TestScanDirectoryHandler_ValidationFailure(t *testing.T) {
	scanner := &stubScanner{}
	handler := NewScanDirectoryHandler(scanner, nil)

	err := handler.Execute(context.Background(), ScanDirectoryCommand{})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
	if len(scanner.scanDirs) != 0 {
		t.Fatalf("expected scanner not to be called")
	}
}

func TestScanDirectoryHandler_ScannerFailure(t *testing.T) {
	cause := errors.New("walk failed")
	scanner := &stubScanner{err: cause}
	handler := NewScanDirectoryHandler(scanner, nil)

	err := handler.Execute(context.Background(), ScanDirectoryCommand{Directory: "content"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause, got %v", err)
	}
}

func TestRenderFileHandler_Execute(t *testing.T) {
	scanner := &stubScanner{html: []byte("<h1>A</h1>")}
	handler := NewRenderFileHandler(scanner, nil)

	if err := handler.Execute(context.Background(), RenderFileCommand{Path: "docs/a.md"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(scanner.renderPaths) != 1 || scanner.renderPaths[0] != "docs/a.md" {
		t.Fatalf("expected scanner to receive the path, got %#v", scanner.renderPaths)
	}
}

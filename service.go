package markdown

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-markdown/internal/logging"
	internalvalidation "github.com/goliatone/go-markdown/internal/validation"
	"github.com/goliatone/go-markdown/pkg/interfaces"
)

// Report bundles everything the Service derives from one document.
type Report struct {
	Document *Document       `json:"document"`
	Parsed   *ParsedDocument `json:"parsed,omitempty"`
	Sections []Section       `json:"sections,omitempty"`
	Outline  []OutlineEntry  `json:"outline,omitempty"`
}

// Service combines the loader, the extraction passes, and the renderer
// behind one filesystem-rooted surface.
type Service struct {
	cfg      Config
	loader   *Loader
	renderer *Renderer
	logger   interfaces.Logger
}

// NewService constructs a Service rooted at cfg.BasePath.
func NewService(cfg Config) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	filesystem, err := prepareFilesystem(cfg.BasePath)
	if err != nil {
		return nil, err
	}

	return newService(cfg, filesystem), nil
}

// NewServiceFS constructs a Service over an explicit filesystem. Mostly
// useful for tests and embedded content.
func NewServiceFS(cfg Config, filesystem fs.FS) (*Service, error) {
	if err := internalvalidation.ValidateSchema(cfg.FrontMatterSchema); err != nil {
		return nil, err
	}
	return newService(cfg, filesystem), nil
}

func newService(cfg Config, filesystem fs.FS) *Service {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	return &Service{
		cfg: cfg,
		loader: NewLoader(filesystem, LoaderConfig{
			BasePath:  cfg.BasePath,
			Pattern:   cfg.Pattern,
			Recursive: cfg.Recursive,
		}),
		renderer: NewRenderer(cfg.Render),
		logger:   logger,
	}
}

// Scan loads a single document and derives its full report: parse
// result, sections, and outline. Frontmatter is validated against the
// configured schema when one is present.
func (s *Service) Scan(ctx context.Context, path string) (*Report, error) {
	doc, err := s.loader.LoadFile(ctx, s.normalizePath(path))
	if err != nil {
		return nil, err
	}
	return s.buildReport(doc)
}

// ScanDirectory loads every document under dir and derives a report for
// each, ordered by path.
func (s *Service) ScanDirectory(ctx context.Context, dir string) ([]*Report, error) {
	docs, err := s.loader.LoadDirectory(ctx, s.normalizePath(dir))
	if err != nil {
		return nil, err
	}

	reports := make([]*Report, 0, len(docs))
	for _, doc := range docs {
		report, err := s.buildReport(doc)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}

	s.logger.Info("markdown.scan_directory.completed", "directory", dir, "document_count", len(reports))
	return reports, nil
}

// Render loads a single document and converts its body into HTML using
// the configured render options.
func (s *Service) Render(ctx context.Context, path string) ([]byte, error) {
	doc, err := s.loader.LoadFile(ctx, s.normalizePath(path))
	if err != nil {
		return nil, err
	}

	html, err := s.renderer.Render(doc.Body)
	if err != nil {
		return nil, fmt.Errorf("markdown render document %s: %w", doc.Path, err)
	}
	return html, nil
}

func (s *Service) buildReport(doc *Document) (*Report, error) {
	logger := logging.WithDocumentContext(s.logger, doc.Path)

	if len(s.cfg.FrontMatterSchema) > 0 {
		if err := internalvalidation.ValidatePayload(s.cfg.FrontMatterSchema, doc.FrontMatter.Raw); err != nil {
			return nil, fmt.Errorf("markdown frontmatter %s: %w", doc.Path, err)
		}
	}

	// Empty bodies carry no structure to extract; the document record
	// alone is still worth reporting in directory scans.
	if len(doc.Body) == 0 {
		logger.Warn("markdown.scan.empty_body")
		return &Report{Document: doc}, nil
	}

	reader := New()
	reader.LoadString(string(doc.Body))

	parsed, err := reader.Parse()
	if err != nil {
		return nil, fmt.Errorf("markdown scan %s: %w", doc.Path, err)
	}
	sections, err := reader.Sections()
	if err != nil {
		return nil, fmt.Errorf("markdown scan %s: %w", doc.Path, err)
	}
	outline, err := reader.Outline()
	if err != nil {
		return nil, fmt.Errorf("markdown scan %s: %w", doc.Path, err)
	}

	logger.Debug("markdown.scan.completed",
		"heading_count", len(parsed.Headings),
		"section_count", len(sections),
	)

	return &Report{
		Document: doc,
		Parsed:   parsed,
		Sections: sections,
		Outline:  outline,
	}, nil
}

func (s *Service) normalizePath(path string) string {
	if strings.TrimSpace(path) == "" {
		return "."
	}
	clean := filepath.Clean(path)
	if filepath.IsAbs(clean) && strings.TrimSpace(s.cfg.BasePath) != "" {
		if rel, err := filepath.Rel(s.cfg.BasePath, clean); err == nil {
			return filepath.ToSlash(rel)
		}
	}
	return filepath.ToSlash(clean)
}

func prepareFilesystem(basePath string) (fs.FS, error) {
	if strings.TrimSpace(basePath) == "" {
		basePath = "."
	}
	if _, err := os.Stat(basePath); err != nil {
		return nil, fmt.Errorf("markdown service: stat base path %s: %w", basePath, err)
	}
	return os.DirFS(basePath), nil
}

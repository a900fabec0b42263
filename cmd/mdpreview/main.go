package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	markdown "github.com/goliatone/go-markdown"
	"github.com/goliatone/go-markdown/internal/logging"
	"github.com/goliatone/go-markdown/internal/logging/gologger"
)

func main() {
	var (
		basePath   = flag.String("base", ".", "Path to the markdown content root")
		filePath   = flag.String("file", "", "Markdown file to preview (relative to the content root)")
		renderHTML = flag.Bool("render-html", true, "Render the markdown body into HTML as part of the preview")
		hardWraps  = flag.Bool("hard-wraps", false, "Render single newlines as <br> elements")
		safeHTML   = flag.Bool("safe-html", false, "Suppress raw HTML passthrough in the rendered output")
		logLevel   = flag.String("log-level", "warn", "Log level (trace, debug, info, warn, error)")
	)

	flag.Parse()

	if *filePath == "" {
		log.Fatalf("--file is required")
	}

	provider, err := gologger.NewProvider(gologger.Config{
		Level:  *logLevel,
		Format: "console",
	})
	if err != nil {
		log.Fatalf("configure logging: %v", err)
	}

	service, err := markdown.NewService(markdown.Config{
		BasePath: *basePath,
		Render: markdown.RenderOptions{
			HardWraps: *hardWraps,
			SafeHTML:  *safeHTML,
		},
		Logger: logging.RenderLogger(provider),
	})
	if err != nil {
		log.Fatalf("build markdown service: %v", err)
	}

	ctx := context.Background()

	report, err := service.Scan(ctx, *filePath)
	if err != nil {
		log.Fatalf("load markdown document: %v", err)
	}
	doc := report.Document

	fmt.Fprintf(os.Stdout, "Path: %s\nID: %s\nChecksum: %x\n\n", doc.Path, doc.ID, doc.Checksum)

	if doc.FrontMatter.Raw != nil {
		frontmatter, err := json.MarshalIndent(doc.FrontMatter.Raw, "", "  ")
		if err == nil {
			fmt.Fprintf(os.Stdout, "Frontmatter:\n%s\n\n", frontmatter)
		}
	}

	if report.Parsed != nil && report.Parsed.Title != "" {
		fmt.Fprintf(os.Stdout, "Title: %s\n\n", report.Parsed.Title)
	}

	if *renderHTML {
		html, err := service.Render(ctx, *filePath)
		if err != nil {
			log.Fatalf("render markdown: %v", err)
		}
		fmt.Fprintf(os.Stdout, "Rendered HTML:\n%s\n", string(html))
	} else {
		fmt.Fprintf(os.Stdout, "Markdown Body:\n%s\n", string(doc.Body))
	}
}

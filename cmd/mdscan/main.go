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
		pattern    = flag.String("pattern", "*.md", "Glob pattern applied when discovering markdown files")
		recursive  = flag.Bool("recursive", true, "Traverse sub-directories when scanning a directory")
		filePath   = flag.String("file", "", "Markdown file to scan (relative to the content root)")
		dirPath    = flag.String("dir", "", "Directory to scan (relative to the content root)")
		schemaPath = flag.String("schema", "", "Optional JSON schema file used to validate frontmatter")
		logLevel   = flag.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
		logFormat  = flag.String("log-format", "console", "Log format (json, console, pretty)")
	)

	flag.Parse()

	if *filePath == "" && *dirPath == "" {
		log.Fatalf("either --file or --dir is required")
	}

	provider, err := gologger.NewProvider(gologger.Config{
		Level:  *logLevel,
		Format: *logFormat,
	})
	if err != nil {
		log.Fatalf("configure logging: %v", err)
	}

	cfg := markdown.Config{
		BasePath:  *basePath,
		Pattern:   *pattern,
		Recursive: *recursive,
		Logger:    logging.ScanLogger(provider),
	}

	if *schemaPath != "" {
		schema, err := readSchema(*schemaPath)
		if err != nil {
			log.Fatalf("read schema: %v", err)
		}
		cfg.FrontMatterSchema = schema
	}

	service, err := markdown.NewService(cfg)
	if err != nil {
		log.Fatalf("build markdown service: %v", err)
	}

	ctx := context.Background()

	var output any
	if *filePath != "" {
		report, err := service.Scan(ctx, *filePath)
		if err != nil {
			log.Fatalf("scan markdown document: %v", err)
		}
		output = report
	} else {
		reports, err := service.ScanDirectory(ctx, *dirPath)
		if err != nil {
			log.Fatalf("scan markdown directory: %v", err)
		}
		output = reports
	}

	encoded, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		log.Fatalf("encode report: %v", err)
	}
	fmt.Fprintln(os.Stdout, string(encoded))
}

func readSchema(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema map[string]any
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return schema, nil
}

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2site/internal/fileutil"
)

// Sentinel errors for page discovery.
var (
	ErrNoContent    = errors.New("content directory not found")
	ErrNoPages      = errors.New("no markdown pages found")
	ErrUnsafeOutput = errors.New("output directory would remove content")
)

// pageExt is the extension of generated pages, without dot.
const pageExt = "html"

// PageToBuild represents a single page to process.
type PageToBuild struct {
	InputPath  string
	OutputPath string
}

// discoverPages finds all markdown pages under contentDir. Each page keeps
// its relative location under outputDir with an .html extension.
// Pages are returned in lexical order.
func discoverPages(contentDir, outputDir string) ([]PageToBuild, error) {
	info, err := os.Stat(contentDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoContent, contentDir)
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", fileutil.ErrNotDirectory, contentDir)
	}

	var pages []PageToBuild
	err = filepath.WalkDir(contentDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !isMarkdownFile(path) {
			return nil
		}
		outPath, err := resolveOutputPath(path, contentDir, outputDir)
		if err != nil {
			return err
		}
		pages = append(pages, PageToBuild{InputPath: path, OutputPath: outPath})
		return nil
	})

	return pages, err
}

// resolveOutputPath maps content/a/b.md to output/a/b.html.
func resolveOutputPath(inputPath, contentDir, outputDir string) (string, error) {
	rel, err := filepath.Rel(contentDir, inputPath)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", inputPath, err)
	}
	rel, err = fileutil.ReplaceExt(rel, pageExt)
	if err != nil {
		return "", err
	}
	return filepath.Join(outputDir, rel), nil
}

// isMarkdownFile reports whether path has a .md or .markdown extension.
func isMarkdownFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".md" || ext == ".markdown"
}

// validateOutputDir refuses an output directory that contains the
// content or static directory, since the build wipes it first.
func validateOutputDir(outputDir string, protected ...string) error {
	out, err := filepath.Abs(outputDir)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", outputDir, err)
	}
	for _, dir := range protected {
		if dir == "" {
			continue
		}
		abs, err := filepath.Abs(dir)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", dir, err)
		}
		rel, err := filepath.Rel(out, abs)
		if err != nil {
			continue
		}
		if rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))) {
			return fmt.Errorf("%w: %s contains %s", ErrUnsafeOutput, outputDir, dir)
		}
	}
	return nil
}

package main

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/alnah/go-md2site/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestDiscoverPages - Page discovery
// ---------------------------------------------------------------------------

func TestDiscoverPages(t *testing.T) {
	t.Parallel()

	t.Run("mirrors the content tree", func(t *testing.T) {
		t.Parallel()

		root := setupTestDir(t, map[string]string{
			"content/index.md":            "# Home",
			"content/about.markdown":      "# About",
			"content/docs/guide.md":       "# Guide",
			"content/docs/deep/nested.MD": "# Nested",
			"content/docs/notes.txt":      "skip",
			"content/img/logo.png":        "skip",
		})
		content := filepath.Join(root, "content")
		out := filepath.Join(root, "public")

		pages, err := discoverPages(content, out)
		if err != nil {
			t.Fatalf("discoverPages() error: %v", err)
		}

		want := []PageToBuild{
			{filepath.Join(content, "about.markdown"), filepath.Join(out, "about.html")},
			{filepath.Join(content, "docs", "deep", "nested.MD"), filepath.Join(out, "docs", "deep", "nested.html")},
			{filepath.Join(content, "docs", "guide.md"), filepath.Join(out, "docs", "guide.html")},
			{filepath.Join(content, "index.md"), filepath.Join(out, "index.html")},
		}
		if len(pages) != len(want) {
			t.Fatalf("got %d pages, want %d: %+v", len(pages), len(want), pages)
		}
		for i := range want {
			if pages[i] != want[i] {
				t.Errorf("pages[%d] = %+v, want %+v", i, pages[i], want[i])
			}
		}
	})

	t.Run("empty content dir", func(t *testing.T) {
		t.Parallel()

		pages, err := discoverPages(t.TempDir(), "public")
		if err != nil {
			t.Fatalf("discoverPages() error: %v", err)
		}
		if len(pages) != 0 {
			t.Errorf("got %d pages, want 0", len(pages))
		}
	})

	t.Run("missing content dir", func(t *testing.T) {
		t.Parallel()

		_, err := discoverPages(filepath.Join(t.TempDir(), "nope"), "public")
		if !errors.Is(err, ErrNoContent) {
			t.Errorf("error = %v, want ErrNoContent", err)
		}
	})

	t.Run("content is a file", func(t *testing.T) {
		t.Parallel()

		root := setupTestDir(t, map[string]string{"page.md": "# Page"})
		_, err := discoverPages(filepath.Join(root, "page.md"), "public")
		if !errors.Is(err, fileutil.ErrNotDirectory) {
			t.Errorf("error = %v, want ErrNotDirectory", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestResolveOutputPath - Output path mapping
// ---------------------------------------------------------------------------

func TestResolveOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"index", "content/index.md", "public/index.html"},
		{"nested", "content/a/b.md", "public/a/b.html"},
		{"markdown extension", "content/a/b.markdown", "public/a/b.html"},
		{"dots in name", "content/v1.2.md", "public/v1.2.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := resolveOutputPath(filepath.FromSlash(tt.input), "content", "public")
			if err != nil {
				t.Fatalf("resolveOutputPath() error: %v", err)
			}
			if got != filepath.FromSlash(tt.want) {
				t.Errorf("resolveOutputPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsMarkdownFile - Extension detection
// ---------------------------------------------------------------------------

func TestIsMarkdownFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{"doc.md", true},
		{"doc.markdown", true},
		{"DOC.MD", true},
		{"doc.txt", false},
		{"doc", false},
		{"md", false},
		{"dir.md/file.html", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			if got := isMarkdownFile(tt.path); got != tt.want {
				t.Errorf("isMarkdownFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidateOutputDir - Output wipe safety
// ---------------------------------------------------------------------------

func TestValidateOutputDir(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		output    string
		protected []string
		wantErr   bool
	}{
		{"siblings", "public", []string{"content", "static"}, false},
		{"prefix sibling", "pub", []string{"public"}, false},
		{"empty protected skipped", "public", []string{"", "content"}, false},
		{"same dir", "site", []string{"site"}, true},
		{"output contains content", "site", []string{"site/content"}, true},
		{"output is parent", "site/..", []string{"content"}, true},
		{"static inside output", "public", []string{"content", "public/static"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateOutputDir(filepath.FromSlash(tt.output), tt.protected...)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsafeOutput) {
					t.Errorf("error = %v, want ErrUnsafeOutput", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

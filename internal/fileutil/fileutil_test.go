package fileutil_test

// Notes:
// - Write and close failures in WriteFileAtomic are not tested because
//   triggering disk write failures is platform-specific.

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alnah/go-md2site/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestValidateExtension - Extension validation
// ---------------------------------------------------------------------------

func TestValidateExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		extension string
		wantErr   error
	}{
		{"valid html", "html", nil},
		{"valid md", "md", nil},
		{"empty", "", fileutil.ErrExtensionEmpty},
		{"slash", "a/b", fileutil.ErrExtensionPathTraversal},
		{"backslash", `a\b`, fileutil.ErrExtensionPathTraversal},
		{"null byte", "a\x00", fileutil.ErrExtensionPathTraversal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fileutil.ValidateExtension(tt.extension)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateExtension(%q) = %v, want %v", tt.extension, err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestReplaceExt - Extension swapping
// ---------------------------------------------------------------------------

func TestReplaceExt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"index.md", "index.html"},
		{filepath.Join("blog", "post.markdown"), filepath.Join("blog", "post.html")},
		{"README", "README.html"},
		{filepath.Join("v1.2", "notes.md"), filepath.Join("v1.2", "notes.html")},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			got, err := fileutil.ReplaceExt(tt.path, "html")
			if err != nil {
				t.Fatalf("ReplaceExt() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ReplaceExt(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}

	if _, err := fileutil.ReplaceExt("a.md", ""); !errors.Is(err, fileutil.ErrExtensionEmpty) {
		t.Errorf("ReplaceExt() with empty extension error = %v, want ErrExtensionEmpty", err)
	}
}

// ---------------------------------------------------------------------------
// TestWriteFileAtomic - Page output
// ---------------------------------------------------------------------------

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deeper", "page.html")

	if err := fileutil.WriteFileAtomic(path, "<p>one</p>"); err != nil {
		t.Fatalf("WriteFileAtomic() error = %v", err)
	}
	if err := fileutil.WriteFileAtomic(path, "<p>two</p>"); err != nil {
		t.Fatalf("WriteFileAtomic() overwrite error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if string(got) != "<p>two</p>" {
		t.Errorf("content = %q, want %q", got, "<p>two</p>")
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("reading dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want only the page (temp files leaked)", len(entries))
	}
}

// ---------------------------------------------------------------------------
// TestFileExists / TestDirExists
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "a.md")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	if !fileutil.FileExists(file) {
		t.Error("FileExists(file) = false, want true")
	}
	if fileutil.FileExists(dir) {
		t.Error("FileExists(dir) = true, want false")
	}
	if fileutil.FileExists(filepath.Join(dir, "missing")) {
		t.Error("FileExists(missing) = true, want false")
	}
	if !fileutil.DirExists(dir) {
		t.Error("DirExists(dir) = false, want true")
	}
	if fileutil.DirExists(file) {
		t.Error("DirExists(file) = true, want false")
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"site", false},
		{"my-site", false},
		{"./site.yaml", true},
		{"/abs/site.yaml", true},
		{`C:\site.yaml`, true},
	}

	for _, tt := range tests {
		if got := fileutil.IsFilePath(tt.input); got != tt.want {
			t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestCleanDir - Output directory reset
// ---------------------------------------------------------------------------

func TestCleanDir(t *testing.T) {
	t.Parallel()

	t.Run("removes contents", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "public")
		if err := os.MkdirAll(filepath.Join(dir, "old"), 0o755); err != nil {
			t.Fatalf("setup: %v", err)
		}
		if err := os.WriteFile(filepath.Join(dir, "old", "stale.html"), []byte("x"), 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		if err := fileutil.CleanDir(dir); err != nil {
			t.Fatalf("CleanDir() error = %v", err)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("reading dir: %v", err)
		}
		if len(entries) != 0 {
			t.Errorf("CleanDir() left %d entries", len(entries))
		}
	})

	t.Run("creates missing directory", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "new")
		if err := fileutil.CleanDir(dir); err != nil {
			t.Fatalf("CleanDir() error = %v", err)
		}
		if !fileutil.DirExists(dir) {
			t.Error("CleanDir() should create the directory")
		}
	})

	for _, unsafe := range []string{"", ".", "./", string(filepath.Separator)} {
		t.Run("refuses "+unsafe, func(t *testing.T) {
			t.Parallel()

			if err := fileutil.CleanDir(unsafe); !errors.Is(err, fileutil.ErrUnsafeClean) {
				t.Errorf("CleanDir(%q) error = %v, want ErrUnsafeClean", unsafe, err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestCopyDir - Static asset copy
// ---------------------------------------------------------------------------

func TestCopyDir(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	files := map[string]string{
		"index.css":                           "body{}",
		filepath.Join("images", "logo.png"):   "png",
		filepath.Join("images", "a", "b.txt"): "nested",
	}
	for rel, content := range files {
		full := filepath.Join(src, rel)
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("setup: %v", err)
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}
	if err := os.MkdirAll(filepath.Join(src, "empty"), 0o755); err != nil {
		t.Fatalf("setup: %v", err)
	}

	dst := filepath.Join(t.TempDir(), "public")
	n, err := fileutil.CopyDir(context.Background(), src, dst)
	if err != nil {
		t.Fatalf("CopyDir() error = %v", err)
	}
	if n != len(files) {
		t.Errorf("CopyDir() copied %d files, want %d", n, len(files))
	}

	for rel, want := range files {
		got, err := os.ReadFile(filepath.Join(dst, rel))
		if err != nil {
			t.Errorf("missing %s: %v", rel, err)
			continue
		}
		if string(got) != want {
			t.Errorf("%s = %q, want %q", rel, got, want)
		}
	}
	if !fileutil.DirExists(filepath.Join(dst, "empty")) {
		t.Error("empty directories should be copied")
	}
}

func TestCopyDir_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing source", func(t *testing.T) {
		t.Parallel()

		_, err := fileutil.CopyDir(context.Background(), filepath.Join(t.TempDir(), "missing"), t.TempDir())
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("CopyDir() error = %v, want not-exist", err)
		}
	})

	t.Run("source is a file", func(t *testing.T) {
		t.Parallel()

		file := filepath.Join(t.TempDir(), "f")
		if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}
		_, err := fileutil.CopyDir(context.Background(), file, t.TempDir())
		if !errors.Is(err, fileutil.ErrNotDirectory) {
			t.Errorf("CopyDir() error = %v, want ErrNotDirectory", err)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fileutil.CopyDir(ctx, t.TempDir(), t.TempDir())
		if !errors.Is(err, context.Canceled) {
			t.Errorf("CopyDir() error = %v, want context.Canceled", err)
		}
	})
}

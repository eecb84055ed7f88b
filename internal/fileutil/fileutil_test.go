package fileutil_test

// Notes:
// - The Chmod and Close error branches in WriteFileAtomic are not tested
//   because triggering them is platform-specific.

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-html2haml/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestValidateFileName - Output file name validation
// ---------------------------------------------------------------------------

func TestValidateFileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "haml file", input: "index.haml"},
		{name: "html file", input: "index.html"},
		{name: "no extension", input: "layout"},
		{name: "empty", input: "", wantErr: fileutil.ErrNameEmpty},
		{name: "forward slash", input: "../index.haml", wantErr: fileutil.ErrNamePathTraversal},
		{name: "backslash", input: "..\\index.haml", wantErr: fileutil.ErrNamePathTraversal},
		{name: "null byte", input: "index\x00.haml", wantErr: fileutil.ErrNamePathTraversal},
		{name: "dot", input: ".", wantErr: fileutil.ErrNamePathTraversal},
		{name: "dot dot", input: "..", wantErr: fileutil.ErrNamePathTraversal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fileutil.ValidateFileName(tt.input)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateFileName(%q) unexpected error: %v", tt.input, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateFileName(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWriteFileAtomic - Atomic output writing
// ---------------------------------------------------------------------------

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	t.Run("writes content and creates parents", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "dist", "nested", "index.haml")
		content := "!!! 5\n%html\n"

		if err := fileutil.WriteFileAtomic(path, content); err != nil {
			t.Fatalf("WriteFileAtomic() error = %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading output: %v", err)
		}
		if string(got) != content {
			t.Errorf("content = %q, want %q", got, content)
		}
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "index.haml")
		if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
			t.Fatalf("seeding file: %v", err)
		}

		if err := fileutil.WriteFileAtomic(path, "new"); err != nil {
			t.Fatalf("WriteFileAtomic() error = %v", err)
		}

		got, _ := os.ReadFile(path)
		if string(got) != "new" {
			t.Errorf("content = %q, want %q", got, "new")
		}
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		if err := fileutil.WriteFileAtomic(filepath.Join(dir, "a.haml"), "x"); err != nil {
			t.Fatalf("WriteFileAtomic() error = %v", err)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("ReadDir() error = %v", err)
		}
		for _, e := range entries {
			if strings.HasPrefix(e.Name(), ".html2haml-") {
				t.Errorf("temp file %q left behind", e.Name())
			}
		}
		if len(entries) != 1 {
			t.Errorf("got %d entries, want 1", len(entries))
		}
	})

	t.Run("parent is a file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		blocker := filepath.Join(dir, "blocker")
		if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
			t.Fatalf("seeding file: %v", err)
		}

		if err := fileutil.WriteFileAtomic(filepath.Join(blocker, "index.haml"), "x"); err == nil {
			t.Error("WriteFileAtomic() expected error when parent is a file")
		}
	})
}

// ---------------------------------------------------------------------------
// TestFileExists - File existence check
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "exists.yaml")
	if err := os.WriteFile(file, []byte("a: 1"), 0644); err != nil {
		t.Fatalf("seeding file: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"existing file", file, true},
		{"missing file", filepath.Join(dir, "missing.yaml"), false},
		{"directory", dir, false},
		{"empty path", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsFilePath / TestExt - Path helpers
// ---------------------------------------------------------------------------

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"webpack", false},
		{"my-config", false},
		{"./haml.yaml", true},
		{"../shared/haml.yaml", true},
		{"/abs/haml.yaml", true},
		{"C:\\config\\haml.yaml", true},
		{"", false},
	}

	for _, tt := range tests {
		if got := fileutil.IsFilePath(tt.input); got != tt.want {
			t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestExt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"template.haml", ".haml"},
		{"TEMPLATE.HAML", ".haml"},
		{"dir.v2/page.Md", ".md"},
		{"noext", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := fileutil.Ext(tt.input); got != tt.want {
			t.Errorf("Ext(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "exists.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !FileExists(file) {
		t.Error("FileExists should be true for a regular file")
	}
	if FileExists(dir) {
		t.Error("FileExists should be false for a directory")
	}
	if FileExists(filepath.Join(dir, "nope.txt")) {
		t.Error("FileExists should be false for a missing path")
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"docs", false},
		{"styles/custom.css", true},
		{`styles\custom.css`, true},
		{"./local", true},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsFilePath(tt.input); got != tt.want {
			t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"https://example.com/logo.png", true},
		{"http://example.com", true},
		{"ftp://example.com", false},
		{"logo/logo.png", false},
	}

	for _, tt := range tests {
		if got := IsURL(tt.input); got != tt.want {
			t.Errorf("IsURL(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestCopyFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "src.png")
	if err := os.WriteFile(src, []byte("image bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	// Destination parent does not exist yet
	dst := filepath.Join(dir, "out", "nested", "dst.png")
	if err := CopyFile(src, dst, 0o644); err != nil {
		t.Fatalf("CopyFile() error = %v", err)
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("reading copy: %v", err)
	}
	if string(data) != "image bytes" {
		t.Errorf("copied content = %q", data)
	}
}

func TestCopyFile_MissingSource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	err := CopyFile(filepath.Join(dir, "nope.png"), filepath.Join(dir, "dst.png"), 0o644)
	if err == nil {
		t.Fatal("expected error for missing source")
	}
}

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCopyLogo(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "logo.png")
	if err := os.WriteFile(src, []byte("png bytes"), 0o644); err != nil {
		t.Fatal(err)
	}
	outDir := filepath.Join(dir, "out")
	if err := os.MkdirAll(outDir, 0o750); err != nil {
		t.Fatal(err)
	}

	env, stdout, _ := testEnv()
	copyLogo(src, outDir, env)

	copied, err := os.ReadFile(filepath.Join(outDir, "logo", "logo.png"))
	if err != nil {
		t.Fatalf("logo not copied: %v", err)
	}
	if string(copied) != "png bytes" {
		t.Errorf("copied content = %q", copied)
	}
	if !strings.Contains(stdout.String(), "Copied logo from") {
		t.Errorf("stdout missing copy notice\ngot:\n%s", stdout.String())
	}
}

func TestCopyLogo_MissingSource(t *testing.T) {
	t.Parallel()

	env, stdout, stderr := testEnv()
	copyLogo(filepath.Join(t.TempDir(), "nope.png"), t.TempDir(), env)

	if !strings.Contains(stdout.String(), "does not exist, skipping copy") {
		t.Errorf("stdout missing skip notice\ngot:\n%s", stdout.String())
	}
	if stderr.Len() != 0 {
		t.Errorf("missing logo is not an error, stderr = %q", stderr.String())
	}
}

func TestCopyLogo_EmptySource(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv()
	copyLogo("", t.TempDir(), env)

	if stdout.Len() != 0 {
		t.Errorf("empty source should be silent, got %q", stdout.String())
	}
}

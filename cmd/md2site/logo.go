package main

import (
	"fmt"
	"path/filepath"

	"github.com/alnah/go-md2site/internal/fileutil"
)

// copyLogo copies the configured logo into the output directory.
// A missing or unreadable logo is reported and skipped; the build
// continues either way.
func copyLogo(source, outputDir string, env *Environment) {
	if source == "" {
		return
	}

	if !fileutil.FileExists(source) {
		fmt.Fprintf(env.Stdout, "Logo file %s does not exist, skipping copy\n", source)
		return
	}

	dst := filepath.Join(outputDir, "logo", filepath.Base(source))
	if err := fileutil.CopyFile(source, dst, filePermissions); err != nil {
		fmt.Fprintf(env.Stderr, "Error copying logo: %v\n", err)
		return
	}

	fmt.Fprintf(env.Stdout, "Copied logo from %s to %s\n", source, dst)
}

package main

import (
	"io"
	"os"
	"time"

	"github.com/alnah/go-md2site/internal/assets"
)

// Environment holds the external dependencies of the CLI so tests can
// substitute a fixed clock, buffers, or an asset loader.
type Environment struct {
	Now         func() time.Time
	Stdout      io.Writer
	Stderr      io.Writer
	AssetLoader assets.AssetLoader
}

// DefaultEnv returns the environment used by the real binary.
func DefaultEnv() *Environment {
	return &Environment{
		Now:         time.Now,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		AssetLoader: assets.NewEmbeddedLoader(),
	}
}

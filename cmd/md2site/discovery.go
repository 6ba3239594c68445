package main

import (
	"fmt"
	"os"
	"path/filepath"

	md2site "github.com/alnah/go-md2site"
)

// FileToBuild represents a single markdown file to process.
type FileToBuild struct {
	InputPath  string
	OutputPath string
}

// discoverFiles finds the markdown files to build.
// A directory input is scanned non-recursively for *.md files; a file
// input is validated and built on its own.
func discoverFiles(inputPath, outputDir string) ([]FileToBuild, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateMarkdownExtension(inputPath); err != nil {
			return nil, err
		}
		return []FileToBuild{{
			InputPath:  inputPath,
			OutputPath: resolveOutputPath(inputPath, outputDir),
		}}, nil
	}

	matches, err := filepath.Glob(filepath.Join(inputPath, "*.md"))
	if err != nil {
		return nil, err
	}

	files := make([]FileToBuild, 0, len(matches))
	for _, path := range matches {
		if info, err := os.Stat(path); err != nil || info.IsDir() {
			continue
		}
		files = append(files, FileToBuild{
			InputPath:  path,
			OutputPath: resolveOutputPath(path, outputDir),
		})
	}

	return files, nil
}

// resolveOutputPath determines the HTML output path for a markdown file.
// README maps to index so the site root serves the repository readme.
func resolveOutputPath(inputPath, outputDir string) string {
	stem := md2site.OutputStem(filepath.Base(inputPath))
	return filepath.Join(outputDir, stem+".html")
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	ext := filepath.Ext(path)
	if ext != ".md" && ext != ".markdown" {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
	}
	return nil
}

package main

import (
	"errors"
	"os"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/dateutil"
)

// Exit codes returned to the shell.
const (
	ExitSuccess = 0 // Build completed
	ExitGeneral = 1 // Unexpected failure
	ExitUsage   = 2 // Bad flags, config, or asset selection
	ExitIO      = 3 // Filesystem read/write failure
)

// exitCodeFor maps an error to a process exit code.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, os.ErrNotExist),
		errors.Is(err, os.ErrPermission),
		errors.Is(err, ErrReadMarkdown),
		errors.Is(err, ErrWriteHTML):
		return ExitIO

	case errors.Is(err, config.ErrConfigNotFound),
		errors.Is(err, config.ErrEmptyConfigName),
		errors.Is(err, config.ErrConfigParse),
		errors.Is(err, config.ErrFieldTooLong),
		errors.Is(err, ErrInvalidExtension),
		errors.Is(err, assets.ErrStyleNotFound),
		errors.Is(err, assets.ErrTemplateNotFound),
		errors.Is(err, assets.ErrInvalidAssetName),
		errors.Is(err, assets.ErrInvalidBasePath),
		errors.Is(err, dateutil.ErrInvalidDateFormat),
		errors.Is(err, md2site.ErrTemplateParse):
		return ExitUsage

	default:
		return ExitGeneral
	}
}

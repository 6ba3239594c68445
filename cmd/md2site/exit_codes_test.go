package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/dateutil"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil error", err: nil, want: ExitSuccess},
		{name: "missing file", err: os.ErrNotExist, want: ExitIO},
		{name: "wrapped missing file", err: fmt.Errorf("discovering files: %w", os.ErrNotExist), want: ExitIO},
		{name: "permission denied", err: os.ErrPermission, want: ExitIO},
		{name: "markdown read failure", err: ErrReadMarkdown, want: ExitIO},
		{name: "html write failure", err: ErrWriteHTML, want: ExitIO},
		{name: "config not found", err: config.ErrConfigNotFound, want: ExitUsage},
		{name: "config parse failure", err: config.ErrConfigParse, want: ExitUsage},
		{name: "field too long", err: config.ErrFieldTooLong, want: ExitUsage},
		{name: "bad extension", err: ErrInvalidExtension, want: ExitUsage},
		{name: "unknown style", err: assets.ErrStyleNotFound, want: ExitUsage},
		{name: "unknown template", err: assets.ErrTemplateNotFound, want: ExitUsage},
		{name: "bad asset base path", err: assets.ErrInvalidBasePath, want: ExitUsage},
		{name: "bad date format", err: dateutil.ErrInvalidDateFormat, want: ExitUsage},
		{name: "template parse failure", err: md2site.ErrTemplateParse, want: ExitUsage},
		{name: "unexpected error", err: errors.New("boom"), want: ExitGeneral},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

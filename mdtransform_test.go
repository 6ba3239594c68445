package md2site

import (
	"context"
	"testing"
)

func TestCommonMarkPreprocessor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "CRLF normalized",
			input: "line one\r\nline two",
			want:  "line one\nline two",
		},
		{
			name:  "bare CR normalized",
			input: "line one\rline two",
			want:  "line one\nline two",
		},
		{
			name:  "blank line runs compressed",
			input: "a\n\n\n\n\nb",
			want:  "a\n\nb",
		},
		{
			name:  "single blank line kept",
			input: "a\n\nb",
			want:  "a\n\nb",
		},
		{
			name:  "unchanged content passes through",
			input: "# Title\n\nparagraph",
			want:  "# Title\n\nparagraph",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := &commonMarkPreprocessor{}
			got := p.PreprocessMarkdown(context.Background(), tt.input)
			if got != tt.want {
				t.Errorf("PreprocessMarkdown(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCommonMarkPreprocessor_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := &commonMarkPreprocessor{}
	input := "a\r\nb"
	if got := p.PreprocessMarkdown(ctx, input); got != input {
		t.Errorf("cancelled context should return content unchanged, got %q", got)
	}
}

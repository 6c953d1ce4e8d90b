package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	mdtex "github.com/alnah/go-mdtex"
	"github.com/alnah/go-mdtex/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "read failure", err: fmt.Errorf("%w: boom", ErrReadMarkdown), want: ExitIO},
		{name: "write failure", err: fmt.Errorf("%w: boom", ErrWriteHTML), want: ExitIO},
		{name: "no input", err: ErrNoInput, want: ExitIO},
		{name: "script write", err: fmt.Errorf("%w: /p", mdtex.ErrScriptWrite), want: ExitIO},
		{name: "not exist", err: os.ErrNotExist, want: ExitIO},
		{name: "config not found", err: fmt.Errorf("%w: site.yaml", config.ErrConfigNotFound), want: ExitUsage},
		{name: "config parse", err: config.ErrConfigParse, want: ExitUsage},
		{name: "bad extension", err: ErrInvalidExtension, want: ExitUsage},
		{name: "empty source", err: mdtex.ErrEmptySource, want: ExitUsage},
		{name: "relative path", err: fmt.Errorf("wrapped: %w", mdtex.ErrUnsupportedRelativePath), want: ExitUsage},
		{name: "malformed code block", err: mdtex.ErrMalformedCodeBlock, want: ExitGeneral},
		{name: "unknown math tag", err: mdtex.ErrUnknownMathTag, want: ExitGeneral},
		{name: "unknown", err: errors.New("other"), want: ExitGeneral},
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

package main

import (
	"errors"
	"os"

	mdtex "github.com/alnah/go-mdtex"
	"github.com/alnah/go-mdtex/internal/config"
)

// Exit codes for the mdtex CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom
// codes < 126.
const (
	ExitSuccess = 0 // Successful render
	ExitGeneral = 1 // General/unexpected error (including segmenter-invariant violations)
	ExitUsage   = 2 // Invalid flags, config, or document authoring errors
	ExitIO      = 3 // File not found, permission denied, write failures
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must wrap with
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWriteHTML) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, mdtex.ErrScriptWrite) {
		return ExitIO
	}

	// Usage/config/authoring errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, mdtex.ErrEmptySource) ||
		errors.Is(err, mdtex.ErrUnsupportedRelativePath) {
		return ExitUsage
	}

	return ExitGeneral
}

package mdtex

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptySource = errors.New("document source cannot be empty")

	// Segmenter-invariant violations. These indicate broken upstream
	// segmentation, not a renderable document state, so they abort the
	// document render rather than degrade silently.
	ErrUnknownMathTag     = errors.New("unknown math tag")
	ErrMalformedCodeBlock = errors.New("malformed code block")

	// Recoverable authoring errors (fatal for the block, not the document).
	ErrUnsupportedRelativePath = errors.New("relative script paths are not supported")

	// Environment errors.
	ErrScriptWrite = errors.New("failed to write script file")

	// Collaborator failures.
	ErrInlineRender  = errors.New("inline markdown rendering failed")
	ErrBlockRender   = errors.New("block markdown rendering failed")
	ErrMathTranslate = errors.New("math translation failed")
	ErrMacroResolve  = errors.New("macro resolution failed")
)

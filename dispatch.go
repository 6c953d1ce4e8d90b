package mdtex

import (
	"context"
	"fmt"
	"strings"
	"unicode"
)

// escapeFenceLen is the width of one side of a ~~~ escape fence.
const escapeFenceLen = 3

// divMarkerLen is the width of the %% div open/close marker.
const divMarkerLen = 2

// Convert renders one block to an HTML fragment. It is the single dispatch
// point of the converter: each tag maps to exactly one conversion strategy.
// A tag outside the enumerated set yields an empty fragment; the segmenter
// guarantees that path is unreachable in a correctly segmented document.
func (s *Service) Convert(ctx context.Context, b Block, rc *RenderContext) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	switch {
	case b.Tag == CodeInline:
		out, err := s.inline.RenderInline(ctx, b.Raw)
		if err != nil {
			return "", fmt.Errorf("%w: block at offset %d: %v", ErrInlineRender, b.Offset, err)
		}
		return out, nil

	case b.Tag == CodeBlockEval:
		return s.extractCode(b, rc)

	case b.Tag == CodeBlock:
		out, err := s.blocks.RenderBlocks(ctx, b.Raw)
		if err != nil {
			return "", fmt.Errorf("%w: block at offset %d: %v", ErrBlockRender, b.Offset, err)
		}
		return out, nil

	case b.Tag == Escape:
		return stripEnds(b.Raw, escapeFenceLen, escapeFenceLen), nil

	case b.Tag.isMath():
		return s.normalizeMath(ctx, b, rc)

	case b.Tag == Div:
		return s.convertDiv(ctx, b, rc)

	case b.Tag == MacroInvocation:
		out, err := s.macros.ResolveMacro(ctx, b.Raw, rc.Macros, b.Offset)
		if err != nil {
			return "", fmt.Errorf("%w: block at offset %d: %v", ErrMacroResolve, b.Offset, err)
		}
		return out, nil
	}

	return "", nil
}

// convertDiv re-renders the div body through the top-level converter with a
// child context and wraps the result in a named container element.
func (s *Service) convertDiv(ctx context.Context, b Block, rc *RenderContext) (string, error) {
	name, inner := splitDiv(b.Raw)
	sub, err := s.render(ctx, inner+eosSentinel, rc.child())
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("<div class=%q>%s</div>", name, sub), nil
}

// splitDiv separates a div block into its container name and inner content.
// The opening token is the leading run up to the first whitespace; its
// first two characters are the div marker and the remainder names the
// container, either bare or in {.name} form. The trailing marker closes
// the block.
func splitDiv(raw string) (name, inner string) {
	end := strings.IndexFunc(raw, unicode.IsSpace)
	if end < 0 {
		end = len(raw)
	}
	token := raw[:end]

	name = token[divMarkerLen:]
	name = strings.TrimPrefix(strings.Trim(name, "{}"), ".")

	inner = raw[end:]
	inner = strings.TrimSuffix(strings.TrimRightFunc(inner, unicode.IsSpace), "%%")
	inner = strings.TrimSpace(inner)
	return name, inner
}

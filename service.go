package mdtex

import (
	"context"
	"strings"

	"github.com/alnah/go-mdtex/internal/segment"
)

// InlineRenderer renders a markdown span in inline-only mode, with no
// wrapping paragraph element.
type InlineRenderer interface {
	RenderInline(ctx context.Context, span string) (string, error)
}

// BlockRenderer renders markdown content to block-level HTML.
type BlockRenderer interface {
	RenderBlocks(ctx context.Context, content string) (string, error)
}

// MathTranslator resolves LaTeX inside a math body to renderer-ready
// markup. offset is the body's position in the document source, used for
// error locality.
type MathTranslator interface {
	TranslateMath(ctx context.Context, body string, macros MacroSet, offset int) (string, error)
}

// MacroResolver expands a macro invocation against the active definition
// set.
type MacroResolver interface {
	ResolveMacro(ctx context.Context, raw string, macros MacroSet, offset int) (string, error)
}

// Service orchestrates the block-rendering stage of the markdown+LaTeX
// pipeline. It is stateless across renders; all per-document state lives in
// the RenderContext created by Render.
type Service struct {
	cfg    serviceConfig
	inline InlineRenderer
	blocks BlockRenderer
	math   MathTranslator
	macros MacroResolver
}

// New creates a Service with default collaborators: goldmark for markdown
// rendering and template-based macro handling. Use options to substitute
// the host pipeline's own collaborators.
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			paths:    DefaultPaths("."),
			execLang: defaultExecLanguage,
			execExt:  defaultExecExtension,
			warn:     defaultWarn,
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	// Default collaborators if not injected (e.g., by tests or hosts)
	if s.inline == nil || s.blocks == nil {
		g := newGoldmarkRenderer()
		if s.inline == nil {
			s.inline = g
		}
		if s.blocks == nil {
			s.blocks = g
		}
	}
	if s.math == nil {
		s.math = passthroughTranslator{}
	}
	if s.macros == nil {
		s.macros = templateResolver{}
	}

	return s
}

// eosSentinel marks end-of-stream for the re-entrant converter. Div
// sub-renders append it to their inner content; render consumes it on
// entry so the scanner never sees it.
const eosSentinel = "\x00"

// Render runs the full pipeline over input.Source: harvest page-level
// macro definitions, segment into blocks, convert each in document order,
// and splice the surrounding prose through the block markdown renderer.
func (s *Service) Render(ctx context.Context, input Input) (*Result, error) {
	if strings.TrimSpace(input.Source) == "" {
		return nil, ErrEmptySource
	}

	rc := NewRenderContext(input.Macros)
	html, err := s.render(ctx, input.Source, rc)
	if err != nil {
		return nil, err
	}

	return &Result{
		HTML:    html,
		Scripts: rc.Scripts(),
		Labels:  rc.Eqs.Labels(),
	}, nil
}

// render is the top-level document converter. Div blocks reenter it with a
// child context, so it must stay safe for recursive calls sharing one
// registry and script queue.
func (s *Service) render(ctx context.Context, src string, rc *RenderContext) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	src = strings.TrimSuffix(src, eosSentinel)
	if rc.ParseDefs {
		var defs MacroSet
		defs, src = collectDefs(src)
		for name, def := range defs {
			rc.Macros[name] = def
		}
	}

	var b strings.Builder
	for _, tok := range segment.Scan(src) {
		if tok.Kind == segment.Text {
			out, err := s.blocks.RenderBlocks(ctx, tok.Raw)
			if err != nil {
				return "", err
			}
			b.WriteString(out)
			continue
		}

		blk, ok := blockFromToken(tok)
		if !ok {
			// Unreachable with a correct segmenter.
			continue
		}
		out, err := s.Convert(ctx, blk, rc)
		if err != nil {
			return "", err
		}
		b.WriteString(out)
	}
	return b.String(), nil
}

// tokenTags maps the segmenter's vocabulary onto the dispatcher's closed
// tag set.
var tokenTags = map[segment.Kind]BlockTag{
	segment.CodeInline:  CodeInline,
	segment.CodeEval:    CodeBlockEval,
	segment.CodeFence:   CodeBlock,
	segment.Escape:      Escape,
	segment.MathA:       MathA,
	segment.MathB:       MathB,
	segment.MathC:       MathC,
	segment.MathAlign:   MathAlign,
	segment.MathEqArray: MathEqArray,
	segment.MathInline:  MathInline,
	segment.Div:         Div,
	segment.Macro:       MacroInvocation,
}

// blockFromToken converts a scanned token into a dispatchable block.
func blockFromToken(tok segment.Token) (Block, bool) {
	tag, ok := tokenTags[tok.Kind]
	if !ok {
		return Block{}, false
	}
	return Block{Tag: tag, Raw: tok.Raw, Offset: tok.Offset}, true
}

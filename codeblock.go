package mdtex

import (
	"fmt"
	"html"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/alnah/go-mdtex/internal/fileutil"
)

// codeBlockPattern splits a fenced block into its language tag, optional
// :path annotation, and body.
var codeBlockPattern = regexp.MustCompile("(?s)^```([a-z][a-z-]*)(:[\\w./\\-]+)?[ \\t]*\\n?(.*?)```\\s*$")

// extractCode converts an evaluable fenced code block. Blocks without a
// target path render as plain code fragments; blocks naming one have their
// body materialized to disk and queued for the external script runner,
// whose captured output replaces the empty fragment returned here.
func (s *Service) extractCode(b Block, rc *RenderContext) (string, error) {
	m := codeBlockPattern.FindStringSubmatch(b.Raw)
	if m == nil {
		return "", fmt.Errorf("%w: block at offset %d", ErrMalformedCodeBlock, b.Offset)
	}
	lang, target, body := m[1], m[2], m[3]

	if target == "" {
		return renderCodeFragment(lang, body), nil
	}

	if lang != s.cfg.execLang {
		s.cfg.warn("code block at offset %d: language %q is not executable, rendering without evaluation", b.Offset, lang)
		return renderCodeFragment(lang, body), nil
	}

	path, err := s.resolveScriptPath(strings.TrimPrefix(target, ":"))
	if err != nil {
		return "", fmt.Errorf("code block at offset %d: %w", b.Offset, err)
	}
	if err := fileutil.WriteScript(path, body); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrScriptWrite, path, err)
	}

	rc.enqueueScript(PendingScript{Path: path, Offset: b.Offset})
	return "", nil
}

// renderCodeFragment emits the plain display form of a code block.
func renderCodeFragment(lang, body string) string {
	return fmt.Sprintf("<pre><code class=%q>%s</code></pre>", lang, html.EscapeString(body))
}

// resolveScriptPath maps a code block's target annotation to a file path
// per the project layout: absolute targets root at Paths.Root, bare names
// at Paths.Assets. Relative targets are rejected until a sensible base
// directory for them exists.
func (s *Service) resolveScriptPath(target string) (string, error) {
	var path string
	switch {
	case strings.HasPrefix(target, "./") || strings.HasPrefix(target, "../"):
		return "", fmt.Errorf("%w: %q", ErrUnsupportedRelativePath, target)
	case strings.HasPrefix(target, "/"):
		path = filepath.Join(s.cfg.paths.Root, target)
	default:
		path = filepath.Join(s.cfg.paths.Assets, target)
	}
	return fileutil.EnsureExtension(path, s.cfg.execExt), nil
}

package mdtex

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths locates the project tree that evaluable code blocks are written
// into.
type Paths struct {
	Root   string // project file root; absolute script targets resolve under it
	Assets string // assets directory; bare script names resolve under it
}

// DefaultPaths roots the project at dir with its assets under dir/assets.
func DefaultPaths(dir string) Paths {
	return Paths{Root: dir, Assets: filepath.Join(dir, "assets")}
}

// Input contains the parameters for one document render.
type Input struct {
	Source string   // markdown+LaTeX document source (required)
	Macros MacroSet // preloaded macro definitions (optional)
}

// Result is the outcome of one document render.
type Result struct {
	HTML    string
	Scripts []PendingScript // evaluable blocks materialized to disk, in document order
	Labels  map[string]int  // anchor id -> equation number, for cross-reference resolution
}

// WarnFunc receives non-fatal diagnostics emitted during a render.
type WarnFunc func(format string, args ...any)

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	paths    Paths
	execLang string
	execExt  string
	warn     WarnFunc
}

// Defaults for the supported execution language.
const (
	defaultExecLanguage  = "julia"
	defaultExecExtension = ".jl"
)

// defaultWarn writes diagnostics to stderr.
func defaultWarn(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "mdtex: warning: "+format+"\n", args...)
}

// WithPaths sets the project layout used to resolve script targets.
func WithPaths(p Paths) Option {
	return func(s *Service) {
		s.cfg.paths = p
	}
}

// WithExecLanguage sets the execution language and source-file extension
// for evaluable code blocks. Panics on empty values (programmer error,
// similar to time.NewTicker).
func WithExecLanguage(lang, ext string) Option {
	if lang == "" || ext == "" {
		panic("mdtex: WithExecLanguage requires a language and an extension")
	}
	return func(s *Service) {
		s.cfg.execLang = lang
		s.cfg.execExt = ext
	}
}

// WithWarnHandler routes non-fatal diagnostics to fn instead of stderr.
func WithWarnHandler(fn WarnFunc) Option {
	if fn == nil {
		panic("mdtex: WithWarnHandler requires a non-nil handler")
	}
	return func(s *Service) {
		s.cfg.warn = fn
	}
}

// WithInlineRenderer replaces the default inline markdown collaborator.
func WithInlineRenderer(r InlineRenderer) Option {
	return func(s *Service) {
		s.inline = r
	}
}

// WithBlockRenderer replaces the default block markdown collaborator.
func WithBlockRenderer(r BlockRenderer) Option {
	return func(s *Service) {
		s.blocks = r
	}
}

// WithMathTranslator replaces the default math-body translator.
func WithMathTranslator(t MathTranslator) Option {
	return func(s *Service) {
		s.math = t
	}
}

// WithMacroResolver replaces the default macro-invocation resolver.
func WithMacroResolver(r MacroResolver) Option {
	return func(s *Service) {
		s.macros = r
	}
}

package mdtex

// Macro is one LaTeX command definition: a replacement template with
// #1..#9 argument placeholders and the number of arguments it consumes.
type Macro struct {
	Arity int
	Body  string
}

// MacroSet holds the macro definitions active for a document or sub-render.
// Keys are command names without the leading backslash.
type MacroSet map[string]Macro

// PendingScript identifies an evaluable code block whose body has been
// written to disk and awaits execution by the external script runner. The
// runner's captured output is spliced back at the block's position by the
// caller once the render completes.
type PendingScript struct {
	Path   string // resolved file path the body was written to
	Offset int    // source offset of the originating block
}

// RenderContext carries the state threaded through nested block
// conversions: the active macro set, the recursion flags, the per-document
// equation registry, and the pending-script queue. A div sub-render shares
// the parent's registry and queue so numbering and script ordering follow
// document order across nesting levels.
type RenderContext struct {
	Macros    MacroSet
	Recursive bool // set inside a div sub-render
	ParseDefs bool // false forbids new page-level definitions

	Eqs     *EquationRegistry
	scripts *[]PendingScript
}

// NewRenderContext creates the root context for one document render with a
// fresh equation registry and an empty script queue.
func NewRenderContext(macros MacroSet) *RenderContext {
	if macros == nil {
		macros = make(MacroSet)
	}
	return &RenderContext{
		Macros:    macros,
		ParseDefs: true,
		Eqs:       NewEquationRegistry(),
		scripts:   new([]PendingScript),
	}
}

// child derives the context for a div sub-render: same macro set, registry,
// and script queue; recursion flag set; page-level definitions disabled.
func (rc *RenderContext) child() *RenderContext {
	return &RenderContext{
		Macros:    rc.Macros,
		Recursive: true,
		ParseDefs: false,
		Eqs:       rc.Eqs,
		scripts:   rc.scripts,
	}
}

// enqueueScript records a materialized evaluable block for the external
// script runner.
func (rc *RenderContext) enqueueScript(p PendingScript) {
	*rc.scripts = append(*rc.scripts, p)
}

// Scripts returns the pending scripts recorded so far, in document order.
func (rc *RenderContext) Scripts() []PendingScript {
	return *rc.scripts
}

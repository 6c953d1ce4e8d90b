package mdtex

// BlockTag identifies the kind of a segmented block. The set is closed: the
// upstream segmenter may only emit the tags enumerated here, and the
// dispatcher switches exhaustively over them.
type BlockTag int

// Block tags, in dispatch-relevant groups: code, escape, math, div, macro.
const (
	CodeInline BlockTag = iota
	CodeBlockEval
	CodeBlock
	Escape
	MathA
	MathB
	MathC
	MathAlign
	MathEqArray
	MathInline
	Div
	MacroInvocation
)

var blockTagNames = map[BlockTag]string{
	CodeInline:      "CodeInline",
	CodeBlockEval:   "CodeBlockEval",
	CodeBlock:       "CodeBlock",
	Escape:          "Escape",
	MathA:           "MathA",
	MathB:           "MathB",
	MathC:           "MathC",
	MathAlign:       "MathAlign",
	MathEqArray:     "MathEqArray",
	MathInline:      "MathInline",
	Div:             "Div",
	MacroInvocation: "MacroInvocation",
}

// String returns the tag's name, or "Unknown" for values outside the set.
func (t BlockTag) String() string {
	if name, ok := blockTagNames[t]; ok {
		return name
	}
	return "Unknown"
}

// isMath reports whether the tag is one of the math block kinds.
func (t BlockTag) isMath() bool {
	switch t {
	case MathA, MathB, MathC, MathAlign, MathEqArray, MathInline:
		return true
	}
	return false
}

// isDisplayMath reports whether the tag is a numbered math kind. Every math
// tag except the two inline kinds participates in equation numbering.
func (t BlockTag) isDisplayMath() bool {
	return t.isMath() && t != MathA && t != MathInline
}

// Block is one delimited unit of document source, already classified by the
// upstream segmenter. Raw is the exact source substring owned by the block,
// fences included; stripping fences is the converter's responsibility.
// Offset is the byte position of the block's start in the original document,
// kept for diagnostics.
type Block struct {
	Tag    BlockTag
	Raw    string
	Offset int
}

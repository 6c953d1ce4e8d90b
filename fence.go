package mdtex

// mathFence describes how to strip a math block's source fence and which
// renderer delimiters the stripped body is wrapped in.
type mathFence struct {
	stripHead  int
	stripTail  int
	openDelim  string
	closeDelim string
}

// mathFences maps each math tag to its fence descriptor. Loaded once, never
// mutated, safe for shared reads.
var mathFences = map[BlockTag]mathFence{
	MathA:       {1, 1, `\(`, `\)`},                                     // $...$
	MathB:       {2, 2, `\[`, `\]`},                                     // $$...$$
	MathC:       {2, 2, `\[`, `\]`},                                     // \[...\]
	MathAlign:   {13, 11, `\[\begin{aligned}`, `\end{aligned}\]`},       // \begin{align}...\end{align}
	MathEqArray: {16, 14, `\[\begin{array}{c}`, `\end{array}\]`},        // \begin{eqnarray}...\end{eqnarray}
	MathInline:  {4, 4, "", ""},                                         // _$>_..._$<_, pre-resolved span
}

// stripEnds removes head bytes from the front and tail bytes from the back
// of s. Returns "" when the span is shorter than its fences, which can only
// happen on a segmenter bug.
func stripEnds(s string, head, tail int) string {
	if head+tail >= len(s) {
		return ""
	}
	return s[head : len(s)-tail]
}

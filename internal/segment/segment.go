// Package segment splits raw markdown+LaTeX source into the ordered token
// stream the block converter consumes. It classifies fenced regions (code,
// escapes, math, divs, macro invocations) and leaves everything between
// them as plain text runs for the markdown renderer.
package segment

import (
	"regexp"
	"strings"
)

// Kind classifies a scanned token.
type Kind int

const (
	Text Kind = iota
	CodeInline
	CodeEval
	CodeFence
	Escape
	MathA
	MathB
	MathC
	MathAlign
	MathEqArray
	MathInline
	Div
	Macro
)

// Token is one classified span of the source. Raw includes the token's own
// fences; Offset is its byte position in the scanned source.
type Token struct {
	Kind   Kind
	Raw    string
	Offset int
}

// Fence markers recognized by the scanner.
const (
	escapeFence     = "~~~"
	codeFence       = "```"
	mathInlineOpen  = "_$>_"
	mathInlineClose = "_$<_"
	mathDisplay     = "$$"
	mathBracketOpen = `\[`
	mathBracketEnd  = `\]`
	alignOpen       = `\begin{align}`
	alignClose      = `\end{align}`
	eqArrayOpen     = `\begin{eqnarray}`
	eqArrayClose    = `\end{eqnarray}`
	divMarker       = "%%"
)

// evalInfoPattern marks an evaluable fenced block: a language tag followed
// by a :path annotation on the opening fence.
var evalInfoPattern = regexp.MustCompile("^```[a-z][a-z-]*:")

// Scan tokenizes src into blocks and interleaved text runs, in source
// order. The scanner never fails: an unclosed fence downgrades the
// remainder of the source to text rather than erroring, leaving invariant
// enforcement to the converter.
func Scan(src string) []Token {
	s := scanner{src: src}
	s.run()
	return s.toks
}

type scanner struct {
	src       string
	pos       int
	textStart int
	toks      []Token
}

func (s *scanner) run() {
	for s.pos < len(s.src) {
		rest := s.src[s.pos:]

		switch {
		case strings.HasPrefix(rest, escapeFence):
			s.fenced(Escape, escapeFence, escapeFence)

		case strings.HasPrefix(rest, codeFence):
			s.codeBlock()

		case strings.HasPrefix(rest, mathInlineOpen):
			s.fenced(MathInline, mathInlineOpen, mathInlineClose)

		case strings.HasPrefix(rest, mathDisplay):
			s.fenced(MathB, mathDisplay, mathDisplay)

		case rest[0] == '$':
			s.fenced(MathA, "$", "$")

		case strings.HasPrefix(rest, mathBracketOpen):
			s.fenced(MathC, mathBracketOpen, mathBracketEnd)

		case strings.HasPrefix(rest, alignOpen):
			s.fenced(MathAlign, alignOpen, alignClose)

		case strings.HasPrefix(rest, eqArrayOpen):
			s.fenced(MathEqArray, eqArrayOpen, eqArrayClose)

		case rest[0] == '\\':
			s.backslash()

		case strings.HasPrefix(rest, divMarker) && isDivOpen(rest):
			s.div()

		case rest[0] == '`':
			s.fenced(CodeInline, "`", "`")

		default:
			s.pos++
		}
	}
	s.flushText(len(s.src))
}

// flushText emits the pending text run ending at end, if non-empty.
func (s *scanner) flushText(end int) {
	if end > s.textStart {
		s.toks = append(s.toks, Token{Kind: Text, Raw: s.src[s.textStart:end], Offset: s.textStart})
	}
	s.textStart = end
}

// emit records a classified token spanning [start, end) and restarts text
// accumulation after it.
func (s *scanner) emit(kind Kind, start, end int) {
	s.flushText(start)
	s.toks = append(s.toks, Token{Kind: kind, Raw: s.src[start:end], Offset: start})
	s.pos = end
	s.textStart = end
}

// fenced scans from an opening marker to its closing marker. When the
// closing marker is missing the opener is left to the current text run and
// scanning resumes past it.
func (s *scanner) fenced(kind Kind, open, closing string) {
	start := s.pos
	rel := strings.Index(s.src[start+len(open):], closing)
	if rel < 0 {
		s.pos += len(open)
		return
	}
	end := start + len(open) + rel + len(closing)
	s.emit(kind, start, end)
}

// codeBlock scans a fenced code block and classifies it as evaluable when
// the opening fence carries a :path annotation.
func (s *scanner) codeBlock() {
	start := s.pos
	rel := strings.Index(s.src[start+len(codeFence):], codeFence)
	if rel < 0 {
		s.pos += len(codeFence)
		return
	}
	end := start + len(codeFence) + rel + len(codeFence)

	kind := CodeFence
	if evalInfoPattern.MatchString(s.src[start:end]) {
		kind = CodeEval
	}
	s.emit(kind, start, end)
}

// backslash scans a macro invocation \name{arg}... . A backslash followed
// by a non-letter escapes that character: both bytes stay in the text run.
func (s *scanner) backslash() {
	start := s.pos
	i := start + 1
	for i < len(s.src) && isLetter(s.src[i]) {
		i++
	}
	if i == start+1 {
		s.pos = min(start+2, len(s.src))
		return
	}

	_, end := braceGroups(s.src, i)
	s.emit(Macro, start, end)
}

// div scans a nestable %%name ... %% container, tracking depth so inner
// divs stay inside the outer block's raw span.
func (s *scanner) div() {
	start := s.pos
	depth := 1
	pos := start + len(divMarker)

	for depth > 0 {
		rel := strings.Index(s.src[pos:], divMarker)
		if rel < 0 {
			// Unclosed div: leave the marker to the text run.
			s.pos = start + len(divMarker)
			return
		}
		pos += rel
		if isDivOpen(s.src[pos:]) {
			depth++
		} else {
			depth--
		}
		pos += len(divMarker)
	}
	s.emit(Div, start, pos)
}

// isDivOpen reports whether a %% marker opens a named container, which
// requires a name or {.class} annotation to follow immediately.
func isDivOpen(rest string) bool {
	if len(rest) <= len(divMarker) {
		return false
	}
	c := rest[len(divMarker)]
	return c == '{' || isLetter(c) || isDigit(c)
}

// braceGroups consumes consecutive balanced {...} groups starting at
// src[i], returning their count and the index past the last one.
func braceGroups(src string, i int) (int, int) {
	n := 0
	for i < len(src) && src[i] == '{' {
		depth := 1
		j := i + 1
		for j < len(src) && depth > 0 {
			switch src[j] {
			case '{':
				depth++
			case '}':
				depth--
			}
			j++
		}
		if depth != 0 {
			break
		}
		n++
		i = j
	}
	return n, i
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

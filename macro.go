package mdtex

import (
	"context"
	"regexp"
	"strconv"
	"strings"
)

// newcommandPattern matches page-level \newcommand{\name}[arity]{body}
// definitions. The body alternation allows one level of nested braces,
// which covers the definitions seen in practice; full TeX grouping is a
// non-goal.
var newcommandPattern = regexp.MustCompile(`\\newcommand\{\\([A-Za-z]+)\}(?:\[([0-9])\])?\{((?:[^{}]|\{[^{}]*\})*)\}`)

// collectDefs harvests \newcommand definitions from src, returning the
// macro set and src with the definitions removed. Later definitions of the
// same name replace earlier ones, matching plain assignment semantics.
func collectDefs(src string) (MacroSet, string) {
	matches := newcommandPattern.FindAllStringSubmatch(src, -1)
	if len(matches) == 0 {
		return nil, src
	}

	defs := make(MacroSet, len(matches))
	for _, m := range matches {
		arity := 0
		if m[2] != "" {
			arity, _ = strconv.Atoi(m[2])
		}
		defs[m[1]] = Macro{Arity: arity, Body: m[3]}
	}
	return defs, newcommandPattern.ReplaceAllString(src, "")
}

// passthroughTranslator substitutes macros in math bodies and otherwise
// hands them to the renderer untouched. Real LaTeX-to-markup translation
// is the host pipeline's concern, injected via WithMathTranslator.
type passthroughTranslator struct{}

func (passthroughTranslator) TranslateMath(ctx context.Context, body string, macros MacroSet, _ int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return substituteMacros(body, macros), nil
}

// templateResolver expands \name{arg}... invocations against the active
// macro set. An unknown macro resolves to an empty fragment so a stray
// invocation cannot abort the document render.
type templateResolver struct{}

func (templateResolver) ResolveMacro(ctx context.Context, raw string, macros MacroSet, _ int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name, args := splitInvocation(raw)
	def, ok := macros[name]
	if !ok {
		return "", nil
	}
	return expandMacro(def, args), nil
}

// splitInvocation separates \name{a}{b}... into the command name and its
// brace-group arguments.
func splitInvocation(raw string) (string, []string) {
	raw = strings.TrimPrefix(raw, `\`)
	i := 0
	for i < len(raw) && isASCIILetter(raw[i]) {
		i++
	}
	args, _ := parseBraceGroups(raw, i, maxMacroArgs)
	return raw[:i], args
}

// maxMacroArgs bounds argument parsing; #1..#9 are the only placeholders.
const maxMacroArgs = 9

// expandMacro substitutes args into the definition's #N placeholders.
// Missing arguments leave their placeholders in place.
func expandMacro(def Macro, args []string) string {
	out := def.Body
	for i := 0; i < def.Arity && i < len(args); i++ {
		out = strings.ReplaceAll(out, "#"+strconv.Itoa(i+1), args[i])
	}
	return out
}

// substituteMacros expands known \name invocations inside body in a single
// pass. Expansion is not recursive; nested definitions are expanded on the
// host side if needed.
func substituteMacros(body string, macros MacroSet) string {
	if len(macros) == 0 || !strings.Contains(body, `\`) {
		return body
	}

	var b strings.Builder
	b.Grow(len(body))
	i := 0
	for i < len(body) {
		if body[i] != '\\' {
			b.WriteByte(body[i])
			i++
			continue
		}

		j := i + 1
		for j < len(body) && isASCIILetter(body[j]) {
			j++
		}
		def, ok := macros[body[i+1:j]]
		if !ok {
			b.WriteByte(body[i])
			i++
			continue
		}

		args, end := parseBraceGroups(body, j, def.Arity)
		b.WriteString(expandMacro(def, args))
		i = end
	}
	return b.String()
}

// parseBraceGroups reads up to max consecutive balanced {...} groups
// starting at src[i], returning the group contents and the index past the
// last group consumed.
func parseBraceGroups(src string, i, max int) ([]string, int) {
	var args []string
	for len(args) < max && i < len(src) && src[i] == '{' {
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
		args = append(args, src[i+1:j-1])
		i = j
	}
	return args, i
}

func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

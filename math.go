package mdtex

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

var (
	labelPattern = regexp.MustCompile(`\\label\{(.*?)\}`)
	nonRefChars  = regexp.MustCompile(`[^a-z0-9_]+`)
)

// normalizeMath strips a math block's fence, numbers display equations,
// resolves any \label anchor, translates the body, and wraps it in the
// renderer's delimiters. Equation numbers are assigned strictly in call
// order, which the dispatcher guarantees matches source order.
func (s *Service) normalizeMath(ctx context.Context, b Block, rc *RenderContext) (string, error) {
	fence, ok := mathFences[b.Tag]
	if !ok {
		return "", fmt.Errorf("%w: %v (block at offset %d)", ErrUnknownMathTag, b.Tag, b.Offset)
	}
	inner := stripEnds(b.Raw, fence.stripHead, fence.stripTail)

	var anchor string
	if b.Tag.isDisplayMath() {
		num := rc.Eqs.Next()
		if m := labelPattern.FindStringSubmatch(inner); m != nil {
			id := refstring(m[1])
			anchor = fmt.Sprintf("<a id=%q class=\"anchor\"></a>", id)
			inner = strings.Replace(inner, m[0], "", 1)
			rc.Eqs.RecordLabel(id, num)
		}
	}

	body, err := s.math.TranslateMath(ctx, inner, rc.Macros, b.Offset)
	if err != nil {
		return "", fmt.Errorf("%w: block at offset %d: %v", ErrMathTranslate, b.Offset, err)
	}

	return anchor + fence.openDelim + body + fence.closeDelim, nil
}

// refstring derives a stable, collision-resistant anchor identifier from a
// label name: trimmed, lowercased, with runs of other characters collapsed
// to a single underscore. External cross-reference resolution depends on
// this mapping staying deterministic.
func refstring(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = nonRefChars.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

package mdtex

import (
	"context"
	"strings"
	"testing"
)

func TestConvert_Escape(t *testing.T) {
	t.Parallel()

	s := newTestService(t)
	rc := NewRenderContext(nil)

	got, err := s.Convert(context.Background(), Block{Tag: Escape, Raw: "~~~X~~~"}, rc)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if got != "X" {
		t.Errorf("Convert(escape) = %q, want %q", got, "X")
	}
}

func TestConvert_CodeInline(t *testing.T) {
	t.Parallel()

	s := newTestService(t)
	rc := NewRenderContext(nil)

	got, err := s.Convert(context.Background(), Block{Tag: CodeInline, Raw: "`x`"}, rc)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if got != "<code>x</code>" {
		t.Errorf("Convert(code inline) = %q, want inline-only fragment", got)
	}
}

func TestConvert_CodeBlock(t *testing.T) {
	t.Parallel()

	s := newTestService(t)
	rc := NewRenderContext(nil)

	got, err := s.Convert(context.Background(), Block{Tag: CodeBlock, Raw: "```go\nfmt.Println(1)\n```"}, rc)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if !strings.Contains(got, "<pre") || !strings.Contains(got, "Println") {
		t.Errorf("Convert(code block) = %q, want highlighted pre fragment", got)
	}
}

func TestConvert_Div(t *testing.T) {
	t.Parallel()

	s := newTestService(t)
	rc := NewRenderContext(nil)

	got, err := s.Convert(context.Background(), Block{Tag: Div, Raw: "%%{.note} body %%"}, rc)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if !strings.Contains(got, `<div class="note">`) {
		t.Errorf("fragment %q missing named container", got)
	}
	if !strings.Contains(got, "body") {
		t.Errorf("fragment %q missing recursively rendered body", got)
	}
}

func TestConvert_DivBareName(t *testing.T) {
	t.Parallel()

	s := newTestService(t)
	rc := NewRenderContext(nil)

	got, err := s.Convert(context.Background(), Block{Tag: Div, Raw: "%%warning\ncareful\n%%"}, rc)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if !strings.Contains(got, `<div class="warning">`) {
		t.Errorf("fragment %q missing named container", got)
	}
}

func TestConvert_DivSharesEquationNumbering(t *testing.T) {
	t.Parallel()

	s := newTestService(t)
	rc := NewRenderContext(nil)

	// One display equation outside, one inside a div: numbering continues
	// across the recursive sub-render.
	if _, err := s.Convert(context.Background(), Block{Tag: MathB, Raw: "$$a$$"}, rc); err != nil {
		t.Fatalf("Convert(math): %v", err)
	}
	if _, err := s.Convert(context.Background(), Block{Tag: Div, Raw: "%%note $$b \\label{in}$$ %%"}, rc); err != nil {
		t.Fatalf("Convert(div): %v", err)
	}

	if n, ok := rc.Eqs.Lookup("in"); !ok || n != 2 {
		t.Errorf("Lookup(in) = %d, %v; want 2, true", n, ok)
	}
}

func TestConvert_MacroInvocation(t *testing.T) {
	t.Parallel()

	s := newTestService(t)
	rc := NewRenderContext(MacroSet{"hello": {Arity: 1, Body: "Hello #1!"}})

	got, err := s.Convert(context.Background(), Block{Tag: MacroInvocation, Raw: `\hello{World}`}, rc)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if got != "Hello World!" {
		t.Errorf("Convert(macro) = %q, want %q", got, "Hello World!")
	}
}

func TestConvert_UnknownTagYieldsEmptyFragment(t *testing.T) {
	t.Parallel()

	s := newTestService(t)
	rc := NewRenderContext(nil)

	got, err := s.Convert(context.Background(), Block{Tag: BlockTag(99), Raw: "???"}, rc)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if got != "" {
		t.Errorf("Convert(unknown tag) = %q, want empty fragment", got)
	}
}

func TestConvert_CanceledContext(t *testing.T) {
	t.Parallel()

	s := newTestService(t)
	rc := NewRenderContext(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.Convert(ctx, Block{Tag: Escape, Raw: "~~~X~~~"}, rc); err == nil {
		t.Error("Convert with canceled context should fail")
	}
}

func TestSplitDiv(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		raw       string
		wantName  string
		wantInner string
	}{
		{name: "class form", raw: "%%{.note} body %%", wantName: "note", wantInner: "body"},
		{name: "bare name", raw: "%%warning\ncareful\n%%", wantName: "warning", wantInner: "careful"},
		{name: "empty body", raw: "%%x %%", wantName: "x", wantInner: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			name, inner := splitDiv(tt.raw)
			if name != tt.wantName || inner != tt.wantInner {
				t.Errorf("splitDiv(%q) = (%q, %q), want (%q, %q)", tt.raw, name, inner, tt.wantName, tt.wantInner)
			}
		})
	}
}

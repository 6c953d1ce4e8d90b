package mdtex_test

import (
	"context"
	"fmt"
	"strings"

	mdtex "github.com/alnah/go-mdtex"
)

// Example demonstrates rendering a document with display math and a label.
func Example() {
	svc := mdtex.New(mdtex.WithWarnHandler(func(string, ...any) {}))

	result, err := svc.Render(context.Background(), mdtex.Input{
		Source: "Euler's identity:\n\n$$e^{i\\pi} + 1 = 0 \\label{euler}$$",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("equation number:", result.Labels["euler"])
	fmt.Println("anchored:", strings.Contains(result.HTML, `<a id="euler" class="anchor"></a>`))
	// Output:
	// equation number: 1
	// anchored: true
}

// Example_macros demonstrates page-level macro definitions.
func Example_macros() {
	svc := mdtex.New(mdtex.WithWarnHandler(func(string, ...any) {}))

	result, err := svc.Render(context.Background(), mdtex.Input{
		Source: "\\newcommand{\\R}{\\mathbb{R}}\n\nLet $x \\in \\R$.",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(strings.Contains(result.HTML, `\(x \in \mathbb{R}\)`))
	// Output: true
}

// Package hints provides actionable error hints for common failure
// scenarios. Hints are formatted consistently as "\n  hint: <text>" for
// appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and creating a config in ~/.config/go-mdtex/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (contains .config/go-mdtex) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-mdtex") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForScriptWrite returns hints for script materialization failures.
func ForScriptWrite() string {
	hints := []string{
		"check write permissions on the project and assets directories",
		"point --root at a writable project directory",
	}
	return formatHints(hints)
}

// ForNoInput returns the usage hint when no input file was given.
func ForNoInput() string {
	return format("pass a markdown file: mdtex <input.md> [-o output.html]")
}

// format returns a single hint formatted for appending to an error message.
func format(hint string) string {
	return "\n  hint: " + hint
}

// formatHints formats multiple hints, one per line.
func formatHints(hints []string) string {
	var b strings.Builder
	for _, h := range hints {
		b.WriteString(format(h))
	}
	return b.String()
}

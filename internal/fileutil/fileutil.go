// Package fileutil provides file and path helpers for script
// materialization.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteScript writes content to path, creating parent directories and
// replacing any existing file. Writes are not transactional: a failure can
// leave a partial file behind, which the caller reports rather than cleans
// up.
func WriteScript(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating script directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil { // #nosec G306 -- project-local source files
		return fmt.Errorf("writing script file: %w", err)
	}
	return nil
}

// EnsureExtension appends ext to path unless the path already ends in it.
func EnsureExtension(path, ext string) string {
	if strings.HasSuffix(path, ext) {
		return path
	}
	return path + ext
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than
// a name. A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "site" -> false (name)
//   - "./site.yaml" -> true (relative path)
//   - "/etc/mdtex/site.yaml" -> true (absolute)
//   - "sub/dir" -> true (contains separator)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// ForConfigNotFound returns a hint for a named config that could not be
// found. userConfigDir is where named configs are searched after the
// working directory; empty skips that suggestion.
func ForConfigNotFound(name, userConfigDir string) string {
	hint := "use --config /path/to/site.yaml"
	if name != "" && userConfigDir != "" {
		hint += " or create " + filepath.Join(userConfigDir, "md2site", name+".yaml")
	}
	return format(hint)
}

// ForContentDir returns a hint for a missing content directory.
func ForContentDir(dir string) string {
	return format("create " + dir + " or pass the content directory as an argument")
}

// ForOutputDirectory returns a hint for output directory errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForTemplateNotFound lists the templates that can be used instead.
func ForTemplateNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForUnterminatedDelimiter explains the strict inline syntax of the
// basic engine.
func ForUnterminatedDelimiter() string {
	return formatHints([]string{
		"**, _ and ` must be paired within a block",
		"use --engine commonmark for lenient parsing",
	})
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}

package textutil

import "strings"

// invalidNameRunes is the superset of characters rejected by the filesystems
// this tool targets. Using the strictest (Windows) set everywhere keeps
// library layouts portable across NAS mounts.
const invalidNameRunes = `\/:*?"<>|`

// SanitizeName replaces filesystem-unsafe characters in a single path
// segment or display title with underscores and trims surrounding
// whitespace. It never returns path separators.
func SanitizeName(name string) string {
	if name == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if r < 0x20 || strings.ContainsRune(invalidNameRunes, r) {
			b.WriteByte('_')
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

// CollapseSpaces reduces runs of whitespace to single spaces and trims the
// result.
func CollapseSpaces(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

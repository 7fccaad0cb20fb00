package naming

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"telecine/internal/textutil"
)

var titleCaser = cases.Title(language.Und)

// CleanSeriesName rewrites scene-style separators into spaces and
// title-cases the result, so "the.quiet.show s01e02" parses the same as
// "The Quiet Show S01E02". Used as a retag pre-pass on raw filenames and on
// mangled series captures; the grammar itself is unchanged.
func CleanSeriesName(name string) string {
	replaced := strings.NewReplacer(".", " ", "_", " ").Replace(name)
	collapsed := textutil.CollapseSpaces(replaced)
	if collapsed == "" {
		return ""
	}
	return titleCaser.String(collapsed)
}

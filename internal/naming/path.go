package naming

import (
	"fmt"
	"path/filepath"

	"telecine/internal/textutil"
)

// OutputPath is the computed destination for an encode: where the file
// goes, what it is called, and the human-readable title embedded in its
// metadata. Computation is pure; nothing here touches the filesystem.
type OutputPath struct {
	Dir      string
	Filename string
	Title    string
}

// Full joins the directory and filename.
func (p OutputPath) Full() string {
	return filepath.Join(p.Dir, p.Filename)
}

// SeasonFolder names the folder for a season number. Season zero is the
// specials bucket.
func SeasonFolder(season int) string {
	if season == 0 {
		return "Specials"
	}
	return fmt.Sprintf("Season %02d", season)
}

// BuildOutputPath computes the destination for a filename (no extension)
// beneath base. Series files get a series/season folder layout; everything
// else gets a flat folder named after the file. Every emitted path segment
// and the title are sanitized independently.
func BuildOutputPath(base, name, container string) OutputPath {
	if info := ParseSeries(name); info != nil {
		return buildSeriesPath(base, info, container)
	}
	safe := textutil.SanitizeName(name)
	return OutputPath{
		Dir:      filepath.Join(base, safe),
		Filename: fmt.Sprintf("%s.%s", safe, container),
		Title:    safe,
	}
}

func buildSeriesPath(base string, info *SeriesInfo, container string) OutputPath {
	dir := filepath.Join(
		base,
		textutil.SanitizeName(info.Series),
		textutil.SanitizeName(SeasonFolder(info.Season)),
	)
	filename := textutil.SanitizeName(fmt.Sprintf("%s - S%02dE%02d", info.Series, info.Season, info.Episode)) + "." + container
	title := fmt.Sprintf("%s - S%02d E%03d", info.Series, info.Season, info.Episode)
	if info.EpisodeName != "" {
		title = fmt.Sprintf("%s - %s", title, info.EpisodeName)
	}
	return OutputPath{
		Dir:      dir,
		Filename: filename,
		Title:    textutil.SanitizeName(title),
	}
}

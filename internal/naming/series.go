package naming

import (
	"regexp"
	"strconv"
	"strings"
)

// SeriesInfo is the parsed identity of a series episode filename.
type SeriesInfo struct {
	Series      string
	Season      int // 0 means the specials bucket
	Episode     int
	EpisodeName string // empty when the filename carries no episode title
}

// markerPattern gates parsing: without an SxxEyy marker the filename is not
// a series file at all.
var markerPattern = regexp.MustCompile(`(?i)s\d+ ?e\d+`)

// seriesPatterns are tried in order; the first full match wins. The most
// specific (dash-delimited with episode name) pattern must come first or the
// episode name would be swallowed into the series capture. A single space is
// tolerated between the season and episode groups so serialized titles
// ("Show - S01 E005 - Name") parse back to the same identity.
var seriesPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(.+?) - s(\d+) ?e(\d+) - (.+)$`),
	regexp.MustCompile(`(?i)^(.+?) - s(\d+) ?e(\d+)$`),
	regexp.MustCompile(`(?i)^(.+?)s(\d+) ?e(\d+)\s*$`),
}

// ParseSeries extracts series identity from a filename without extension.
// It returns nil when the name does not follow the series grammar.
func ParseSeries(name string) *SeriesInfo {
	if !markerPattern.MatchString(name) {
		return nil
	}
	for _, pattern := range seriesPatterns {
		m := pattern.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		season, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		episode, err := strconv.Atoi(m[3])
		if err != nil {
			continue
		}
		info := &SeriesInfo{
			Series:  strings.TrimSpace(m[1]),
			Season:  season,
			Episode: episode,
		}
		if len(m) > 4 {
			info.EpisodeName = strings.TrimSpace(m[4])
		}
		return info
	}
	return nil
}

package naming

import (
	"fmt"
	"strings"
)

// Profile selects a media-server naming convention for the retag path.
type Profile int

const (
	ProfileStandard Profile = iota
	ProfilePlex
	ProfileEmby
	ProfileJellyfin
)

// ParseProfile maps a configuration string to a Profile.
func ParseProfile(value string) (Profile, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "standard":
		return ProfileStandard, nil
	case "plex":
		return ProfilePlex, nil
	case "emby":
		return ProfileEmby, nil
	case "jellyfin":
		return ProfileJellyfin, nil
	default:
		return ProfileStandard, fmt.Errorf("naming profile: unsupported value %q", value)
	}
}

func (p Profile) String() string {
	switch p {
	case ProfilePlex:
		return "plex"
	case ProfileEmby:
		return "emby"
	case ProfileJellyfin:
		return "jellyfin"
	default:
		return "standard"
	}
}

// FileTitle formats the container title for an episode under this profile.
func (p Profile) FileTitle(info *SeriesInfo) string {
	switch p {
	case ProfilePlex, ProfileEmby, ProfileJellyfin:
		return fmt.Sprintf("%s - s%02de%02d", info.Series, info.Season, info.Episode)
	default:
		return fmt.Sprintf("%s - S%02d E%03d", info.Series, info.Season, info.Episode)
	}
}

// FileName formats the episode filename (no extension) under this profile.
func (p Profile) FileName(info *SeriesInfo) string {
	switch p {
	case ProfilePlex, ProfileEmby, ProfileJellyfin:
		return fmt.Sprintf("%s - s%02de%02d", info.Series, info.Season, info.Episode)
	default:
		return fmt.Sprintf("%s S%02dE%03d", info.Series, info.Season, info.Episode)
	}
}

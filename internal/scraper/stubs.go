package scraper

import (
	"context"
	"fmt"

	"telecine/internal/services"
)

// The online integrations are not implemented yet. Registering them as
// stubs keeps the configuration surface stable: naming a known scraper
// degrades to filename-only metadata instead of rejecting the config.
func init() {
	Register("tvdb", func() Scraper { return stub("tvdb") })
	Register("tmdb", func() Scraper { return stub("tmdb") })
}

type stub string

func (s stub) Name() string { return string(s) }

func (s stub) EpisodeTitle(ctx context.Context, series string, season, episode int) (string, error) {
	return "", services.Wrap(services.ErrNotFound, "scraping", "episode-title",
		fmt.Sprintf("%s lookup is not implemented; using filename metadata for %s S%02dE%02d", s, series, season, episode), nil)
}

package scraper

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"telecine/internal/services"
)

// Scraper resolves episode titles from an external metadata source.
type Scraper interface {
	// Name identifies the scraper in configuration and cache keys.
	Name() string
	// EpisodeTitle returns the title for one episode, or an error
	// carrying ErrNotFound when the source has no entry.
	EpisodeTitle(ctx context.Context, series string, season, episode int) (string, error)
}

// factories holds the registered scraper constructors by identifier.
var factories = map[string]func() Scraper{}

// Register adds a scraper constructor under its identifier. Later
// registrations under the same identifier replace earlier ones.
func Register(name string, factory func() Scraper) {
	factories[strings.ToLower(strings.TrimSpace(name))] = factory
}

// New resolves a configured scraper identifier. The empty string and
// "none" disable scraping and return a nil Scraper with no error.
func New(name string) (Scraper, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" || key == "none" {
		return nil, nil
	}
	factory, ok := factories[key]
	if !ok {
		return nil, services.Wrap(services.ErrNotFound, "scraping", "new",
			fmt.Sprintf("no scraper registered as %q (available: %s)", name, strings.Join(Names(), ", ")), nil)
	}
	return factory(), nil
}

// Names lists the registered scraper identifiers, sorted.
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

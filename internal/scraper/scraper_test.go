package scraper

import (
	"context"
	"errors"
	"testing"

	"telecine/internal/services"
)

func TestNewDisabled(t *testing.T) {
	for _, name := range []string{"", "none", "  None  "} {
		s, err := New(name)
		if err != nil {
			t.Fatalf("New(%q) error = %v", name, err)
		}
		if s != nil {
			t.Fatalf("New(%q) = %v, want nil", name, s)
		}
	}
}

func TestNewUnknownIdentifier(t *testing.T) {
	_, err := New("imdb")
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("New() error = %v", err)
	}
}

func TestStubDegrades(t *testing.T) {
	s, err := New("tvdb")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if s.Name() != "tvdb" {
		t.Fatalf("Name() = %q", s.Name())
	}
	_, err = s.EpisodeTitle(context.Background(), "Show", 1, 2)
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("EpisodeTitle() error = %v", err)
	}
	if services.Fatal(err) {
		t.Fatal("stub lookup failures must be non-fatal")
	}
}

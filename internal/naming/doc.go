// Package naming turns filenames into structured series identity and back
// into library paths, filenames, and display titles.
//
// ParseSeries implements the strict season/episode grammar; BuildOutputPath
// lays files out flat or as series/season folders; Profile formats titles
// and filenames per media-server convention. The Standard profile pads
// episodes to three digits while the Plex-family profiles pad to two; that
// asymmetry is a deliberate compatibility choice, not a bug.
package naming

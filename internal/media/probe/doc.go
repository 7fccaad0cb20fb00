// Package probe runs mediainfo and decodes its JSON report into loosely
// typed track records.
//
// mediainfo's JSON output is stringly typed and uneven: numeric fields
// arrive as strings, may be missing, or may hold values like "N/A". Record
// therefore exposes total extraction helpers that degrade to zero values or
// nil instead of failing, per the normalizer's contract. Only a failed or
// unparseable mediainfo invocation is an error.
package probe

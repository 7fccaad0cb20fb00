// Package selection decides which streams of a probed container survive
// into the encode.
//
// Selection is pure policy over normalized tracks: one video track, the
// best audio track(s) per preferred language, and per-language subtitle
// pairs disambiguated into forced (signs-only) and full tracks. When no
// preferred language matches, documented best-available fallbacks keep the
// output playable rather than failing the file.
package selection

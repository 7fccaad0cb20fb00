// Package track defines the normalized stream model produced from raw
// mediainfo records.
//
// Every downstream decision (selection, argument compilation, tagging)
// operates on Track values, never on raw probe output. Index is the ffmpeg
// stream-mapping index: assigned sequentially over the non-General records,
// starting at zero. TypeOrder is the 1-based position within the track's
// own type, which is how mkvpropedit addresses tracks.
package track

// Package deps reports the availability of the external tools telecine
// shells out to: mediainfo for probing, ffmpeg for encoding, and
// mkvpropedit for container tag edits.
package deps

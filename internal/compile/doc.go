// Package compile turns selected tracks and target settings into ordered
// argument lists for ffmpeg and mkvpropedit.
//
// Each compiler returns its own immutable Params; the orchestrator
// concatenates them in a fixed order (video, audio, subtitles,
// attachments). Argument order inside a Params is significant: ffmpeg
// interprets flags positionally relative to inputs and output streams.
package compile

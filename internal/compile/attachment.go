package compile

import (
	"fmt"

	"telecine/internal/media/track"
)

// Attachments compiles mapping arguments for the selected attachments.
// Attachment indices count within the attachment elementary streams, so
// the mapping uses the t stream specifier rather than an absolute index.
func Attachments(selected []track.Track) Params {
	var out Params
	for _, t := range selected {
		out.EncoderArgs = append(out.EncoderArgs, "-map", fmt.Sprintf("0:t:%d", t.Index))
	}
	if len(selected) > 0 {
		out.EncoderArgs = append(out.EncoderArgs, "-c:t", "copy")
	}
	return out
}

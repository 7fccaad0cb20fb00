package compile

import (
	"fmt"
	"strings"

	"telecine/internal/language"
	"telecine/internal/media/track"
)

// legacyTimedTextID is the MP4 timed-text codec, which mkv cannot carry;
// it converts to SubRip. Everything else stream-copies.
const legacyTimedTextID = "tx3g"

// Subtitles compiles per-stream arguments for the selected subtitle
// tracks. forced marks indices carrying the signs-only track; exactly one
// non-forced track (the first) becomes the default.
func Subtitles(tracks []track.Track, indices []int, forced map[int]bool) Params {
	var out Params
	slot := 0
	defaultAssigned := false
	for _, index := range indices {
		t := findByIndex(tracks, index)
		if t == nil {
			continue
		}

		out.EncoderArgs = append(out.EncoderArgs, "-map", fmt.Sprintf("0:%d", t.Index))

		codec := "copy"
		if strings.EqualFold(strings.TrimSpace(t.CodecID), legacyTimedTextID) {
			codec = "srt"
		}
		out.EncoderArgs = append(out.EncoderArgs, fmt.Sprintf("-c:s:%d", slot), codec)

		out.EncoderArgs = append(out.EncoderArgs,
			fmt.Sprintf("-metadata:s:s:%d", slot), "language="+languageTag(t),
		)

		name := subtitleLanguageName(t)
		if forced[t.Index] {
			out.EncoderArgs = append(out.EncoderArgs,
				fmt.Sprintf("-metadata:s:s:%d", slot), fmt.Sprintf("title=Subtitles - %s - Forced", name),
				fmt.Sprintf("-disposition:s:%d", slot), "forced",
			)
			out.TagEditorArgs = append(out.TagEditorArgs,
				"--edit", fmt.Sprintf("track:s%d", slot+1),
				"--set", "flag-default=0",
				"--set", "flag-forced=1",
			)
		} else {
			isDefault := !defaultAssigned
			defaultAssigned = true
			disposition := "0"
			if isDefault {
				disposition = "default"
			}
			out.EncoderArgs = append(out.EncoderArgs,
				fmt.Sprintf("-metadata:s:s:%d", slot), fmt.Sprintf("title=Subtitles - %s", name),
				fmt.Sprintf("-disposition:s:%d", slot), disposition,
			)
			out.TagEditorArgs = append(out.TagEditorArgs,
				"--edit", fmt.Sprintf("track:s%d", slot+1),
				"--set", "flag-forced=0",
				"--set", fmt.Sprintf("flag-default=%d", boolBit(isDefault)),
			)
		}

		slot++
	}
	return out
}

func subtitleLanguageName(t *track.Track) string {
	if t.LanguageName != "" {
		return t.LanguageName
	}
	if name := language.DisplayName(t.Language); name != "" {
		return name
	}
	return "Unknown"
}

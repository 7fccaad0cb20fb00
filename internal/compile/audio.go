package compile

import (
	"fmt"

	"telecine/internal/media/track"
)

// audioBitrate is the fixed AAC re-encode bitrate.
const audioBitrate = "192k"

// channelLabels maps channel counts to display labels. Counts outside the
// table get no channel suffix in track titles.
var channelLabels = map[int]string{
	1: "Mono",
	2: "Stereo",
	6: "5.1",
	8: "7.1",
}

// AudioOptions carries the copy flags for the audio compiler.
type AudioOptions struct {
	Remux     bool
	CopyAudio bool
}

// Audio compiles per-stream arguments for the selected audio tracks.
// indices is the selection order and becomes the output stream order:
// position 0 is disposition slot 0 and the only default track.
func Audio(tracks []track.Track, indices []int, opts AudioOptions) Params {
	var out Params
	slot := 0
	for _, index := range indices {
		t := findByIndex(tracks, index)
		if t == nil {
			continue
		}

		out.EncoderArgs = append(out.EncoderArgs,
			"-map", fmt.Sprintf("0:%d", t.Index),
			fmt.Sprintf("-metadata:s:a:%d", slot), "language="+languageTag(t),
		)

		isDefault := slot == 0
		disposition := "0"
		if isDefault {
			disposition = "default"
		}
		out.EncoderArgs = append(out.EncoderArgs,
			fmt.Sprintf("-disposition:a:%d", slot), disposition,
		)

		out.TagEditorArgs = append(out.TagEditorArgs,
			"--edit", fmt.Sprintf("track:a%d", slot+1),
			"--set", "flag-forced=0",
			"--set", fmt.Sprintf("flag-default=%d", boolBit(isDefault)),
		)

		codecLabel := "AAC"
		if opts.Remux || opts.CopyAudio {
			out.EncoderArgs = append(out.EncoderArgs, fmt.Sprintf("-c:a:%d", slot), "copy")
			if t.Format != "" {
				codecLabel = t.Format
			}
		} else {
			out.EncoderArgs = append(out.EncoderArgs,
				fmt.Sprintf("-c:a:%d", slot), "aac",
				fmt.Sprintf("-b:a:%d", slot), audioBitrate,
			)
			if t.Format != "" {
				out.EncoderArgs = append(out.EncoderArgs,
					fmt.Sprintf("-metadata:s:a:%d", slot), "comment=Transcoded from "+t.Format,
				)
			}
		}

		title := "Audio - " + codecLabel
		if label, ok := channelLabels[t.Channels]; ok {
			title += " - " + label
		}
		out.EncoderArgs = append(out.EncoderArgs,
			fmt.Sprintf("-metadata:s:a:%d", slot), "title="+title,
		)

		slot++
	}
	return out
}

func findByIndex(tracks []track.Track, index int) *track.Track {
	for i := range tracks {
		if tracks[i].Index == index && tracks[i].Type != track.TypeGeneral {
			return &tracks[i]
		}
	}
	return nil
}

func languageTag(t *track.Track) string {
	if t.Language == "" {
		return "und"
	}
	return t.Language
}

func boolBit(b bool) int {
	if b {
		return 1
	}
	return 0
}

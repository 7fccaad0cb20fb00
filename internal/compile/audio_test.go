package compile

import (
	"slices"
	"testing"

	"telecine/internal/media/track"
)

func audioFixture() []track.Track {
	return []track.Track{
		{Type: track.TypeGeneral, Index: -1},
		{Type: track.TypeVideo, Index: 0, TypeOrder: 1},
		{Type: track.TypeAudio, Index: 1, TypeOrder: 1, Language: "en", Format: "TrueHD", Channels: 8},
		{Type: track.TypeAudio, Index: 2, TypeOrder: 2, Language: "en", Format: "AC-3", Channels: 6},
		{Type: track.TypeAudio, Index: 3, TypeOrder: 3, Format: "AAC", Channels: 2},
	}
}

func TestAudioSingleGlobalDefault(t *testing.T) {
	out := Audio(audioFixture(), []int{1, 2, 3}, AudioOptions{})
	defaults := 0
	for i := 0; i+1 < len(out.EncoderArgs); i++ {
		if out.EncoderArgs[i] == "-disposition:a:0" && out.EncoderArgs[i+1] == "default" {
			defaults++
		}
		if (out.EncoderArgs[i] == "-disposition:a:1" || out.EncoderArgs[i] == "-disposition:a:2") && out.EncoderArgs[i+1] != "0" {
			t.Fatalf("non-first stream got disposition %q", out.EncoderArgs[i+1])
		}
	}
	if defaults != 1 {
		t.Fatalf("default count = %d, args = %v", defaults, out.EncoderArgs)
	}
	set := 0
	for _, arg := range out.TagEditorArgs {
		if arg == "flag-default=1" {
			set++
		}
	}
	if set != 1 {
		t.Fatalf("tag edits set %d defaults: %v", set, out.TagEditorArgs)
	}
}

func TestAudioReencodeAnnotates(t *testing.T) {
	out := Audio(audioFixture(), []int{1}, AudioOptions{})
	if !argsContain(out.EncoderArgs, "-c:a:0", "aac") {
		t.Fatalf("args = %v", out.EncoderArgs)
	}
	if !argsContain(out.EncoderArgs, "-b:a:0", "192k") {
		t.Fatalf("args = %v", out.EncoderArgs)
	}
	if !argsContain(out.EncoderArgs, "-metadata:s:a:0", "comment=Transcoded from TrueHD") {
		t.Fatalf("args = %v", out.EncoderArgs)
	}
	if !argsContain(out.EncoderArgs, "-metadata:s:a:0", "title=Audio - AAC - 7.1") {
		t.Fatalf("args = %v", out.EncoderArgs)
	}
}

func TestAudioCopyKeepsSourceFormatLabel(t *testing.T) {
	out := Audio(audioFixture(), []int{2}, AudioOptions{CopyAudio: true})
	if !argsContain(out.EncoderArgs, "-c:a:0", "copy") {
		t.Fatalf("args = %v", out.EncoderArgs)
	}
	if !argsContain(out.EncoderArgs, "-metadata:s:a:0", "title=Audio - AC-3 - 5.1") {
		t.Fatalf("args = %v", out.EncoderArgs)
	}
	if slices.Contains(out.EncoderArgs, "-b:a:0") {
		t.Fatal("copy must not set a bitrate")
	}
}

func TestAudioUndeterminedLanguage(t *testing.T) {
	out := Audio(audioFixture(), []int{3}, AudioOptions{})
	if !argsContain(out.EncoderArgs, "-metadata:s:a:0", "language=und") {
		t.Fatalf("args = %v", out.EncoderArgs)
	}
}

func TestAudioSkipsUnknownIndices(t *testing.T) {
	out := Audio(audioFixture(), []int{99, 2}, AudioOptions{})
	if !argsContain(out.EncoderArgs, "-map", "0:2") {
		t.Fatalf("args = %v", out.EncoderArgs)
	}
	// The surviving track still lands in slot 0.
	if !argsContain(out.EncoderArgs, "-disposition:a:0", "default") {
		t.Fatalf("args = %v", out.EncoderArgs)
	}
}

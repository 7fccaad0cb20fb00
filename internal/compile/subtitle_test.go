package compile

import (
	"testing"

	"telecine/internal/media/track"
)

func subtitleFixture() []track.Track {
	return []track.Track{
		{Type: track.TypeGeneral, Index: -1},
		{Type: track.TypeVideo, Index: 0, TypeOrder: 1},
		{Type: track.TypeText, Index: 4, TypeOrder: 1, Language: "en", LanguageName: "English", CodecID: "S_TEXT/UTF8"},
		{Type: track.TypeText, Index: 5, TypeOrder: 2, Language: "en", LanguageName: "English", CodecID: "S_TEXT/UTF8"},
		{Type: track.TypeText, Index: 6, TypeOrder: 3, Language: "ja", CodecID: "tx3g"},
	}
}

func TestSubtitlesForcedAndDefault(t *testing.T) {
	out := Subtitles(subtitleFixture(), []int{4, 5}, map[int]bool{4: true})

	if !argsContain(out.EncoderArgs, "-metadata:s:s:0", "title=Subtitles - English - Forced") {
		t.Fatalf("args = %v", out.EncoderArgs)
	}
	if !argsContain(out.EncoderArgs, "-disposition:s:0", "forced") {
		t.Fatalf("args = %v", out.EncoderArgs)
	}
	// The first non-forced track is the default; the forced one never is.
	if !argsContain(out.EncoderArgs, "-disposition:s:1", "default") {
		t.Fatalf("args = %v", out.EncoderArgs)
	}
	if !argsContain(out.EncoderArgs, "-metadata:s:s:1", "title=Subtitles - English") {
		t.Fatalf("args = %v", out.EncoderArgs)
	}

	wantEdits := []string{
		"--edit", "track:s1", "--set", "flag-default=0", "--set", "flag-forced=1",
		"--edit", "track:s2", "--set", "flag-forced=0", "--set", "flag-default=1",
	}
	if len(out.TagEditorArgs) != len(wantEdits) {
		t.Fatalf("tag edits = %v", out.TagEditorArgs)
	}
	for i, want := range wantEdits {
		if out.TagEditorArgs[i] != want {
			t.Fatalf("tag edit %d = %q, want %q", i, out.TagEditorArgs[i], want)
		}
	}
}

func TestSubtitlesTimedTextConverts(t *testing.T) {
	out := Subtitles(subtitleFixture(), []int{6}, nil)
	if !argsContain(out.EncoderArgs, "-c:s:0", "srt") {
		t.Fatalf("args = %v", out.EncoderArgs)
	}
	// No display name in the report, but the code resolves.
	if !argsContain(out.EncoderArgs, "-metadata:s:s:0", "title=Subtitles - Japanese") {
		t.Fatalf("args = %v", out.EncoderArgs)
	}
}

func TestSubtitlesTextCopies(t *testing.T) {
	out := Subtitles(subtitleFixture(), []int{4}, nil)
	if !argsContain(out.EncoderArgs, "-c:s:0", "copy") {
		t.Fatalf("args = %v", out.EncoderArgs)
	}
}

func TestSubtitlesOnlyFirstNonForcedDefaults(t *testing.T) {
	out := Subtitles(subtitleFixture(), []int{4, 5, 6}, nil)
	if !argsContain(out.EncoderArgs, "-disposition:s:0", "default") {
		t.Fatalf("args = %v", out.EncoderArgs)
	}
	for _, slot := range []string{"-disposition:s:1", "-disposition:s:2"} {
		if value, ok := argValue(out.EncoderArgs, slot); !ok || value != "0" {
			t.Fatalf("%s = %q, args = %v", slot, value, out.EncoderArgs)
		}
	}
}

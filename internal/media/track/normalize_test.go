package track

import (
	"testing"

	"telecine/internal/media/probe"
)

func sampleRecords() []probe.Record {
	return []probe.Record{
		{"@type": "General", "Format": "Matroska", "Attachments": "a.ttf / b.otf"},
		{"@type": "Video", "Format": "HEVC", "CodecID": "V_MPEGH/ISO/HEVC", "Width": "3840", "Height": "2160", "FrameRate": "23.976", "ScanType": "Progressive", "BitRate": "25000000"},
		{"@type": "Audio", "@typeorder": "1", "Format": "DTS", "Language": "en", "Channels": "8", "BitRate": "1536000"},
		{"@type": "Audio", "@typeorder": "2", "Format": "AC-3", "Language": "en", "Channels": "6", "BitRate": "N/A"},
		{"@type": "Text", "Format": "PGS", "Language": "en", "StreamSize": "41000000", "Forced": "No"},
	}
}

func TestNormalizeIndexing(t *testing.T) {
	tracks := Normalize(sampleRecords())
	if len(tracks) != 5 {
		t.Fatalf("expected 5 tracks, got %d", len(tracks))
	}
	if tracks[0].Type != TypeGeneral || tracks[0].Index != -1 {
		t.Fatalf("general track must not consume an index: %+v", tracks[0])
	}
	wantIndices := []int{0, 1, 2, 3}
	for i, want := range wantIndices {
		if got := tracks[i+1].Index; got != want {
			t.Fatalf("track %d index = %d, want %d", i+1, got, want)
		}
	}
}

func TestNormalizeTypeOrder(t *testing.T) {
	tracks := Normalize(sampleRecords())
	if tracks[2].TypeOrder != 1 || tracks[3].TypeOrder != 2 {
		t.Fatalf("audio type orders = %d, %d", tracks[2].TypeOrder, tracks[3].TypeOrder)
	}
	// No @typeorder on the text track: defaults from position within type.
	if tracks[4].TypeOrder != 1 {
		t.Fatalf("text type order = %d", tracks[4].TypeOrder)
	}
}

func TestNormalizeNumericDegradation(t *testing.T) {
	tracks := Normalize(sampleRecords())
	dts := tracks[2]
	if dts.BitrateKb == nil || *dts.BitrateKb != 1536 {
		t.Fatalf("dts bitrate = %v", dts.BitrateKb)
	}
	ac3 := tracks[3]
	if ac3.BitrateKb != nil {
		t.Fatalf("N/A bitrate must normalize to nil, got %d", *ac3.BitrateKb)
	}
	pgs := tracks[4]
	if pgs.SizeMB == nil || *pgs.SizeMB != 41 {
		t.Fatalf("pgs size = %v", pgs.SizeMB)
	}
}

func TestNormalizeLanguageName(t *testing.T) {
	tracks := Normalize([]probe.Record{
		{"@type": "Audio", "Language": "ja"},
		{"@type": "Audio", "Language": "en", "Language_String": "English (US)"},
	})
	if tracks[0].LanguageName != "Japanese" {
		t.Fatalf("derived language name = %q", tracks[0].LanguageName)
	}
	if tracks[1].LanguageName != "English (US)" {
		t.Fatalf("explicit language name = %q", tracks[1].LanguageName)
	}
}

func TestTrackHelpers(t *testing.T) {
	tr := Track{ScanType: "Interlaced", FrameRate: "29.97"}
	if !tr.Interlaced() {
		t.Fatal("interlaced flag lost")
	}
	if tr.FPS() != 29.97 {
		t.Fatalf("fps = %v", tr.FPS())
	}
	if (Track{FrameRate: "unknown"}).FPS() != 0 {
		t.Fatal("malformed fps must parse to 0")
	}
	general := Track{Attachments: "a.ttf / b.otf / "}
	names := general.AttachmentNames()
	if len(names) != 2 || names[0] != "a.ttf" || names[1] != "b.otf" {
		t.Fatalf("attachments = %v", names)
	}
}

package compile

import (
	"slices"
	"strings"
	"testing"

	"telecine/internal/media/track"
)

func hevcSource(height int) *track.Track {
	return &track.Track{
		Type: track.TypeVideo, Index: 0, TypeOrder: 1,
		CodecID: "V_MPEGH/ISO/HEVC", Format: "HEVC",
		Width: height * 16 / 9, Height: height,
		FrameRate: "23.976", ScanType: "Progressive",
	}
}

func argsContain(args []string, flag, value string) bool {
	for i := 0; i+1 < len(args); i++ {
		if args[i] == flag && args[i+1] == value {
			return true
		}
	}
	return false
}

func argValue(args []string, flag string) (string, bool) {
	for i := 0; i+1 < len(args); i++ {
		if args[i] == flag {
			return args[i+1], true
		}
	}
	return "", false
}

func TestVideoSoftwareEncodeWithScaling(t *testing.T) {
	// Scenario: 2160p source, 1080p target, x265, no HDR metadata.
	out := Video(VideoRequest{
		Track:     hevcSource(2160),
		InputPath: "/media/in.mkv",
		Title:     "Show - S01 E001",
		Codec:     CodecX265,
		Format:    Format1080p,
	})
	filter, ok := argValue(out.EncoderArgs, "-vf")
	if !ok {
		t.Fatal("expected a filter chain")
	}
	if !strings.Contains(filter, "scale=-2:1080:flags=lanczos") {
		t.Fatalf("filter = %q", filter)
	}
	if _, ok := argValue(out.EncoderArgs, "-x265-params"); ok {
		t.Fatal("no HDR metadata must mean no x265-params")
	}
	if !argsContain(out.EncoderArgs, "-c:v", "libx265") {
		t.Fatalf("encoder args = %v", out.EncoderArgs)
	}
	if !argsContain(out.EncoderArgs, "-preset", "slow") {
		t.Fatal("slow preset missing")
	}
	if out.FormatLabel != "H265" {
		t.Fatalf("format label = %q", out.FormatLabel)
	}
}

func TestVideoHardwareUnmappedSourceCodec(t *testing.T) {
	// Scenario: nvenc target but a source codec with no cuvid decoder:
	// hardware output format is still requested, software decodes.
	src := hevcSource(1080)
	src.CodecID = "V_SOMETHING/EXOTIC"
	out := Video(VideoRequest{
		Track: src, InputPath: "in.mkv", Title: "t",
		Codec: CodecH264NVENC, Format: FormatNone,
	})
	if !argsContain(out.EncoderArgs, "-hwaccel_output_format", "cuda") {
		t.Fatalf("hwaccel output format missing: %v", out.EncoderArgs)
	}
	if slices.Contains(out.EncoderArgs, "-hwaccel_device") {
		t.Fatal("unmapped codec must not select a decode device")
	}
	for _, arg := range out.EncoderArgs {
		if strings.HasSuffix(arg, "_cuvid") {
			t.Fatalf("unexpected cuvid decoder in %v", out.EncoderArgs)
		}
	}
	if out.FormatLabel != "H264" {
		t.Fatalf("unrecognized codec id must label as H264, got %q", out.FormatLabel)
	}
}

func TestVideoHardwareMappedSourceCodec(t *testing.T) {
	out := Video(VideoRequest{
		Track: hevcSource(1080), InputPath: "in.mkv", Title: "t",
		Codec: CodecHEVCNVENC, Format: FormatNone,
	})
	if !argsContain(out.EncoderArgs, "-c:v", "hevc_cuvid") {
		t.Fatalf("expected hevc_cuvid decode: %v", out.EncoderArgs)
	}
	if !argsContain(out.EncoderArgs, "-hwaccel_device", "0") {
		t.Fatalf("expected decode device: %v", out.EncoderArgs)
	}
}

func TestVideoRemuxStopsAfterCopy(t *testing.T) {
	src := hevcSource(2160)
	src.ScanType = "Interlaced"
	out := Video(VideoRequest{
		Track: src, InputPath: "in.mkv", Title: "t",
		Codec: CodecX265, Format: Format1080p, Remux: true,
	})
	if !argsContain(out.EncoderArgs, "-c:v", "copy") {
		t.Fatalf("expected stream copy: %v", out.EncoderArgs)
	}
	for _, flag := range []string{"-vf", "-g", "-preset", "-x265-params"} {
		if slices.Contains(out.EncoderArgs, flag) {
			t.Fatalf("remux must not emit %s: %v", flag, out.EncoderArgs)
		}
	}
	// Copy path still clears the container flags.
	if !slices.Contains(out.TagEditorArgs, "flag-forced=0") {
		t.Fatalf("tag edits = %v", out.TagEditorArgs)
	}
}

func TestVideoGOPFromFrameRate(t *testing.T) {
	out := Video(VideoRequest{
		Track: hevcSource(1080), InputPath: "in.mkv", Title: "t",
		Codec: CodecX264, Format: FormatNone,
	})
	// 23.976 fps * 10 rounds to 240.
	if !argsContain(out.EncoderArgs, "-g", "240") {
		t.Fatalf("gop args = %v", out.EncoderArgs)
	}

	src := hevcSource(1080)
	src.FrameRate = "29.97"
	out = Video(VideoRequest{Track: src, InputPath: "in.mkv", Title: "t", Codec: CodecX264, Format: FormatNone})
	if !argsContain(out.EncoderArgs, "-g", "300") {
		t.Fatalf("gop args = %v", out.EncoderArgs)
	}

	src.FrameRate = "garbage"
	out = Video(VideoRequest{Track: src, InputPath: "in.mkv", Title: "t", Codec: CodecX264, Format: FormatNone})
	if !argsContain(out.EncoderArgs, "-g", "240") {
		t.Fatalf("fallback gop args = %v", out.EncoderArgs)
	}
}

func TestVideoInterlacedSourceEmitsTagDeletions(t *testing.T) {
	src := hevcSource(1080)
	src.ScanType = "Interlaced"
	out := Video(VideoRequest{Track: src, InputPath: "in.mkv", Title: "t", Codec: CodecX264, Format: FormatNone})
	if !slices.Contains(out.TagEditorArgs, "interlaced") || !slices.Contains(out.TagEditorArgs, "field-order") {
		t.Fatalf("tag edits = %v", out.TagEditorArgs)
	}
	filter, ok := argValue(out.EncoderArgs, "-vf")
	if !ok || !strings.Contains(filter, "yadif=0:-1:0") {
		t.Fatalf("filter = %q", filter)
	}
}

func TestVideoNilTrackProducesFileArgsOnly(t *testing.T) {
	out := Video(VideoRequest{InputPath: "in.mkv", Title: "t", Codec: CodecX264, Format: FormatNone})
	if !argsContain(out.EncoderArgs, "-i", "in.mkv") {
		t.Fatalf("input missing: %v", out.EncoderArgs)
	}
	if slices.Contains(out.EncoderArgs, "-map") {
		t.Fatal("no mapping without a video track")
	}
	if len(out.TagEditorArgs) != 0 {
		t.Fatalf("tag edits = %v", out.TagEditorArgs)
	}
}

func TestVideoHDRParamsOnlyForX265(t *testing.T) {
	src := hevcSource(2160)
	src.HDRFormat = "SMPTE ST 2086"
	src.ColorPrimaries = "BT.2020"
	src.ColorMatrix = "BT.2020 non-constant"
	src.ColorTransfer = "PQ"

	out := Video(VideoRequest{Track: src, InputPath: "in.mkv", Title: "t", Codec: CodecX265, Format: FormatNone})
	params, ok := argValue(out.EncoderArgs, "-x265-params")
	if !ok {
		t.Fatalf("expected x265 HDR params: %v", out.EncoderArgs)
	}
	for _, want := range []string{"hdr-opt=1", "repeat-headers=1", "colormatrix=bt2020nc", "colorprim=bt2020", "transfer=smpte2084"} {
		if !strings.Contains(params, want) {
			t.Fatalf("params %q missing %q", params, want)
		}
	}

	// Same source, hardware codec: HDR params never attach.
	out = Video(VideoRequest{Track: src, InputPath: "in.mkv", Title: "t", Codec: CodecHEVCNVENC, Format: FormatNone})
	if _, ok := argValue(out.EncoderArgs, "-x265-params"); ok {
		t.Fatal("x265-params must only attach to the x265 path")
	}
}

func TestVideoArgOrdering(t *testing.T) {
	out := Video(VideoRequest{
		Track: hevcSource(1080), InputPath: "in.mkv", Title: "t",
		Codec: CodecHEVCNVENC, Format: Format720p,
	})
	hwaccel := slices.Index(out.EncoderArgs, "-hwaccel")
	input := slices.Index(out.EncoderArgs, "-i")
	mapping := slices.Index(out.EncoderArgs, "-map")
	if hwaccel == -1 || input == -1 || mapping == -1 {
		t.Fatalf("args = %v", out.EncoderArgs)
	}
	// Decode options must precede the input; mapping follows it.
	if !(hwaccel < input && input < mapping) {
		t.Fatalf("ordering broken: %v", out.EncoderArgs)
	}
}

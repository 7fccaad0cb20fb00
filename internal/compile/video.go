package compile

import (
	"fmt"
	"strings"

	"telecine/internal/media/track"
)

// fallbackGOP is used when the source frame rate is unknown or malformed.
const fallbackGOP = 240

// cuvidDecoders maps source codec identifiers to their CUDA decoder.
// Sources outside this table decode in software; the GPU still encodes.
var cuvidDecoders = map[string]string{
	"V_MPEG4/ISO/AVC":       "h264_cuvid",
	"avc1":                  "h264_cuvid",
	"V_MPEGH/ISO/HEVC":      "hevc_cuvid",
	"hev1":                  "hevc_cuvid",
	"hvc1":                  "hevc_cuvid",
	"V_MPEG2":               "mpeg2_cuvid",
	"V_MPEG1":               "mpeg2_cuvid",
	"V_MS/VFW/FOURCC / WVC1": "vc1_cuvid",
}

// formatLabels maps source codec identifiers to display labels used in
// track titles. Unrecognized identifiers fall back to H264.
var formatLabels = map[string]string{
	"V_MPEG4/ISO/AVC":       "H264",
	"avc1":                  "H264",
	"V_MPEGH/ISO/HEVC":      "H265",
	"hev1":                  "H265",
	"hvc1":                  "H265",
	"V_MPEG2":               "MPEG2",
	"V_MPEG1":               "MPEG1",
	"V_MS/VFW/FOURCC / WVC1": "VC1",
}

// VideoRequest carries everything the video compiler needs.
type VideoRequest struct {
	Track     *track.Track // nil when the container has no video stream
	InputPath string
	Title     string
	Codec     Codec
	Format    Format
	Remux     bool
	CopyVideo bool
}

// VideoParams is the video compiler's output.
type VideoParams struct {
	Params
	FormatLabel string
}

// Video compiles the encoder and tag-editor arguments for the video
// stream. With a nil track only the file-level arguments are produced;
// downstream compilers still run.
func Video(req VideoRequest) VideoParams {
	out := VideoParams{FormatLabel: FormatLabel(trackCodecID(req.Track))}
	args := make([]string, 0, 32)

	if req.Track != nil && req.Codec.Hardware() {
		args = append(args, "-hwaccel", "cuda", "-hwaccel_output_format", "cuda")
		if decoder, ok := cuvidDecoders[req.Track.CodecID]; ok {
			args = append(args, "-hwaccel_device", "0", "-c:v", decoder)
		}
	}

	args = append(args, "-i", req.InputPath, "-map_metadata", "-1")

	if req.Track == nil {
		args = append(args, "-metadata", "title="+req.Title)
		out.EncoderArgs = args
		return out
	}

	args = append(args,
		"-map", fmt.Sprintf("0:%d", req.Track.Index),
		"-metadata", "title="+req.Title,
		"-metadata:s:v:0", "title=Video - "+out.FormatLabel,
	)

	edits := []string{"--edit", "track:v1", "--set", "flag-forced=0", "--set", "flag-default=0"}

	if req.Remux || req.CopyVideo {
		args = append(args, "-c:v", "copy")
		out.EncoderArgs = args
		out.TagEditorArgs = edits
		return out
	}

	args = append(args, "-c:v", req.Codec.Name(), "-preset", "slow")
	args = append(args, "-g", fmt.Sprintf("%d", gopLength(req.Track.FPS())))
	args = append(args, req.Codec.rateControl()...)

	if req.Track.Interlaced() {
		edits = append(edits, "--edit", "track:v1", "--delete", "interlaced", "--delete", "field-order")
	}

	if filter := filterChain(req.Track, req.Format, req.Codec.Hardware()); filter != "" {
		args = append(args, "-vf", filter)
	}

	if req.Codec == CodecX265 {
		if params := hdrParams(req.Track); params != "" {
			args = append(args, "-x265-params", params)
		}
	}

	out.EncoderArgs = args
	out.TagEditorArgs = edits
	return out
}

// FormatLabel resolves a codec identifier to its display label.
func FormatLabel(codecID string) string {
	if label, ok := formatLabels[strings.TrimSpace(codecID)]; ok {
		return label
	}
	return "H264"
}

func gopLength(fps float64) int {
	if fps > 0 {
		return int(fps*10 + 0.5)
	}
	return fallbackGOP
}

func trackCodecID(t *track.Track) string {
	if t == nil {
		return ""
	}
	return t.CodecID
}

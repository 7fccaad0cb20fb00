package compile

import (
	"fmt"
	"strings"
)

// Params carries the argument lists one compiler contributes.
type Params struct {
	EncoderArgs   []string
	TagEditorArgs []string
}

// Merge returns a new Params with other's arguments appended after p's.
func (p Params) Merge(other Params) Params {
	merged := Params{
		EncoderArgs:   make([]string, 0, len(p.EncoderArgs)+len(other.EncoderArgs)),
		TagEditorArgs: make([]string, 0, len(p.TagEditorArgs)+len(other.TagEditorArgs)),
	}
	merged.EncoderArgs = append(append(merged.EncoderArgs, p.EncoderArgs...), other.EncoderArgs...)
	merged.TagEditorArgs = append(append(merged.TagEditorArgs, p.TagEditorArgs...), other.TagEditorArgs...)
	return merged
}

// Codec is the closed set of supported target video codecs.
type Codec int

const (
	CodecX264 Codec = iota
	CodecX265
	CodecH264NVENC
	CodecHEVCNVENC
)

// ParseCodec maps an encoder name to a Codec.
func ParseCodec(value string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "libx264", "x264":
		return CodecX264, nil
	case "libx265", "x265":
		return CodecX265, nil
	case "h264_nvenc":
		return CodecH264NVENC, nil
	case "hevc_nvenc":
		return CodecHEVCNVENC, nil
	default:
		return CodecX264, fmt.Errorf("codec: unsupported value %q", value)
	}
}

// Name returns the ffmpeg encoder name.
func (c Codec) Name() string {
	switch c {
	case CodecX265:
		return "libx265"
	case CodecH264NVENC:
		return "h264_nvenc"
	case CodecHEVCNVENC:
		return "hevc_nvenc"
	default:
		return "libx264"
	}
}

// Hardware reports whether the codec encodes on the GPU.
func (c Codec) Hardware() bool {
	return c == CodecH264NVENC || c == CodecHEVCNVENC
}

// rateControl returns the per-codec quality arguments. Values are policy
// constants tuned per encoder, not derived from the source.
func (c Codec) rateControl() []string {
	switch c {
	case CodecX265:
		return []string{"-crf", "22"}
	case CodecH264NVENC:
		return []string{"-rc", "vbr", "-cq", "23", "-b:v", "0"}
	case CodecHEVCNVENC:
		return []string{"-rc", "vbr", "-cq", "25", "-b:v", "0"}
	default:
		return []string{"-crf", "20"}
	}
}

// Format is the closed set of target resolutions.
type Format int

const (
	FormatNone Format = iota
	Format720p
	Format1080p
)

// ParseFormat maps a configuration string to a Format.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "none":
		return FormatNone, nil
	case "720p", "720":
		return Format720p, nil
	case "1080p", "1080":
		return Format1080p, nil
	default:
		return FormatNone, fmt.Errorf("format: unsupported value %q", value)
	}
}

// TargetHeight returns the format's pixel height, or 0 for FormatNone.
func (f Format) TargetHeight() int {
	switch f {
	case Format720p:
		return 720
	case Format1080p:
		return 1080
	default:
		return 0
	}
}

func (f Format) String() string {
	switch f {
	case Format720p:
		return "720p"
	case Format1080p:
		return "1080p"
	default:
		return "none"
	}
}

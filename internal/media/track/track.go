package track

import (
	"strconv"
	"strings"
)

// Type identifies the kind of stream a Track describes.
type Type string

const (
	TypeGeneral    Type = "General"
	TypeVideo      Type = "Video"
	TypeAudio      Type = "Audio"
	TypeText       Type = "Text"
	TypeAttachment Type = "Attachment"
)

// Track is the normalized representation of one media stream. Numeric
// fields that can be absent from probe output without making the track
// useless are zero-valued; BitrateKb and SizeMB are pointers because "not
// reported" must stay distinct from a genuine small value.
type Track struct {
	Type      Type
	Index     int // ffmpeg mapping index; -1 for the General pseudo-track
	TypeOrder int // 1-based position within Type
	Title     string

	CodecID      string
	Format       string
	Language     string // ISO code as probed (may be 2- or 3-letter)
	LanguageName string

	Width     int
	Height    int
	FrameRate string
	ScanType  string
	ScanOrder string

	Channels  int
	BitrateKb *int
	SizeMB    *int

	Forced bool

	ColorPrimaries string
	ColorMatrix    string
	ColorTransfer  string
	HDRFormat      string
	HDRProfile     string

	ElementCount int
	Attachments  string // General track only: " / "-delimited names
}

// Interlaced reports whether the probe flagged this stream as interlaced.
func (t Track) Interlaced() bool {
	return strings.EqualFold(strings.TrimSpace(t.ScanType), "interlaced")
}

// FPS parses the frame rate, returning 0 when it is missing or malformed.
func (t Track) FPS() float64 {
	value := strings.TrimSpace(t.FrameRate)
	if value == "" {
		return 0
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return parsed
}

// BitrateOrZero returns the bitrate for comparisons, treating unknown as 0.
func (t Track) BitrateOrZero() int {
	if t.BitrateKb == nil {
		return 0
	}
	return *t.BitrateKb
}

// SizeOrZero returns the stream size for comparisons, treating unknown as 0.
func (t Track) SizeOrZero() int {
	if t.SizeMB == nil {
		return 0
	}
	return *t.SizeMB
}

// AttachmentNames splits the delimited attachment list carried by General
// (and occasionally video) tracks.
func (t Track) AttachmentNames() []string {
	raw := strings.TrimSpace(t.Attachments)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, " / ")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}
	return names
}

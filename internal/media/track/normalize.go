package track

import (
	"telecine/internal/language"
	"telecine/internal/media/probe"
)

const (
	bitrateDivisor = 1000.0      // bits/s -> kb/s
	sizeDivisor    = 1_000_000.0 // bytes -> MB
)

// Normalize converts raw probe records into Tracks. The General record is
// kept (it carries container metadata and the attachment list) but does not
// consume a stream index. Field extraction never fails: unknown or
// malformed values degrade to zero values or nil pointers.
func Normalize(records []probe.Record) []Track {
	tracks := make([]Track, 0, len(records))
	index := 0
	typeCounts := make(map[Type]int)

	for _, record := range records {
		t := Track{
			Type:         Type(record.TypeTag()),
			Title:        record.String("Title"),
			CodecID:      record.String("CodecID"),
			Format:       record.String("Format"),
			Language:     record.String("Language"),
			LanguageName: languageName(record),

			Width:     record.Int("Width"),
			Height:    record.Int("Height"),
			FrameRate: record.String("FrameRate"),
			ScanType:  record.String("ScanType"),
			ScanOrder: record.String("ScanOrder"),

			Channels:  record.Int("Channels"),
			BitrateKb: record.Scaled("BitRate", bitrateDivisor),
			SizeMB:    record.Scaled("StreamSize", sizeDivisor),

			Forced: record.Flag("Forced"),

			ColorPrimaries: record.String("colour_primaries"),
			ColorMatrix:    record.String("matrix_coefficients"),
			ColorTransfer:  record.String("transfer_characteristics"),
			HDRFormat:      record.String("HDR_Format"),
			HDRProfile:     record.String("HDR_Format_Profile"),

			ElementCount: record.Int("ElementCount"),
			Attachments:  record.String("Attachments"),
		}

		if t.Type == TypeGeneral {
			t.Index = -1
		} else {
			t.Index = index
			index++
		}

		typeCounts[t.Type]++
		if order := record.Int("@typeorder"); order > 0 {
			t.TypeOrder = order
		} else {
			t.TypeOrder = typeCounts[t.Type]
		}

		tracks = append(tracks, t)
	}
	return tracks
}

func languageName(record probe.Record) string {
	if name := record.String("Language_String"); name != "" {
		return name
	}
	return language.DisplayName(record.String("Language"))
}

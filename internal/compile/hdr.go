package compile

import (
	"strings"

	"telecine/internal/media/track"
)

// pqTransferLabels are the probe's spellings of the SMPTE 2084 transfer
// curve.
var pqTransferLabels = map[string]bool{
	"PQ":            true,
	"SMPTE ST 2084": true,
	"HDR10":         true,
}

// hdrParams derives the x265 parameter string preserving the source's HDR
// signaling, or "" when the source carries no HDR metadata at all.
func hdrParams(t *track.Track) string {
	if strings.TrimSpace(t.HDRFormat) == "" && strings.TrimSpace(t.HDRProfile) == "" {
		return ""
	}
	params := []string{"hdr-opt=1", "repeat-headers=1"}
	if t.ColorMatrix == "BT.2020 non-constant" {
		params = append(params, "colormatrix=bt2020nc")
	}
	if t.ColorPrimaries == "BT.2020" {
		params = append(params, "colorprim=bt2020")
	}
	if pqTransferLabels[strings.TrimSpace(t.ColorTransfer)] {
		params = append(params, "transfer=smpte2084")
	}
	return strings.Join(params, ":")
}

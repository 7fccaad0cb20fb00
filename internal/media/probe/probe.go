package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"telecine/internal/services"
)

// Record is one raw mediainfo track: a bag of loosely typed key/values.
type Record map[string]any

type document struct {
	Media struct {
		Ref    string            `json:"@ref"`
		Tracks []json.RawMessage `json:"track"`
	} `json:"media"`
}

// Inspect executes mediainfo against path and returns the raw track records.
// A non-zero exit or undecodable output is a fatal probing error naming the
// input path.
func Inspect(ctx context.Context, binary, path string) ([]Record, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "mediainfo"
	}
	cmd := exec.CommandContext(ctx, binary, "--Output=JSON", path)
	output, err := cmd.Output()
	if err != nil {
		return nil, services.Wrap(
			services.ErrExternalTool,
			"probing",
			"run mediainfo",
			fmt.Sprintf("Probe failed for %s", path),
			err,
		)
	}
	records, err := Parse(output)
	if err != nil {
		return nil, services.Wrap(
			services.ErrExternalTool,
			"probing",
			"parse mediainfo output",
			fmt.Sprintf("Probe output unreadable for %s", path),
			err,
		)
	}
	return records, nil
}

// Parse decodes a mediainfo JSON report. Exported for tests and for callers
// that capture the report themselves.
func Parse(data []byte) ([]Record, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode mediainfo json: %w", err)
	}
	records := make([]Record, 0, len(doc.Media.Tracks))
	for _, raw := range doc.Media.Tracks {
		var record Record
		if err := json.Unmarshal(raw, &record); err != nil {
			return nil, fmt.Errorf("decode track record: %w", err)
		}
		records = append(records, record)
	}
	return records, nil
}

// TypeTag returns the record's "@type" value.
func (r Record) TypeTag() string {
	return r.String("@type")
}

// String returns the trimmed string form of a field, or "" when absent.
// Non-string scalars are formatted; arrays and objects yield "".
func (r Record) String(key string) string {
	value, ok := r[key]
	if !ok || value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strings.TrimSpace(formatNumber(v))
	case bool:
		if v {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}

// Int returns the integer form of a field, or 0 when absent or non-numeric.
func (r Record) Int(key string) int {
	if n, ok := r.number(key); ok {
		return int(n + 0.5)
	}
	return 0
}

// Scaled divides a numeric field by divisor and rounds to the nearest
// integer. It returns nil, not zero, when the field is absent, empty, or
// non-numeric, so callers can tell "unknown" from "tiny".
func (r Record) Scaled(key string, divisor float64) *int {
	n, ok := r.number(key)
	if !ok || divisor == 0 {
		return nil
	}
	scaled := int(n/divisor + 0.5)
	return &scaled
}

// Flag reports whether a field holds mediainfo's affirmative marker.
func (r Record) Flag(key string) bool {
	return strings.EqualFold(r.String(key), "yes")
}

func (r Record) number(key string) (float64, bool) {
	value, ok := r[key]
	if !ok || value == nil {
		return 0, false
	}
	switch v := value.(type) {
	case float64:
		return v, true
	case string:
		v = strings.TrimSpace(v)
		if v == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}

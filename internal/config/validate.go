package config

import (
	"fmt"
	"strings"
)

var validCodecs = map[string]bool{
	"libx264":    true,
	"libx265":    true,
	"h264_nvenc": true,
	"hevc_nvenc": true,
}

var validFormats = map[string]bool{
	"none":  true,
	"720p":  true,
	"1080p": true,
}

var validProfiles = map[string]bool{
	"standard": true,
	"plex":     true,
	"emby":     true,
	"jellyfin": true,
}

var validLogFormats = map[string]bool{
	"console": true,
	"json":    true,
}

// Validate reports the first unusable setting.
func (c *Config) Validate() error {
	if !validCodecs[c.Encoding.Codec] {
		return fmt.Errorf("encoding.codec: unsupported value %q (want libx264, libx265, h264_nvenc, or hevc_nvenc)", c.Encoding.Codec)
	}
	if !validFormats[c.Encoding.Format] {
		return fmt.Errorf("encoding.format: unsupported value %q (want none, 720p, or 1080p)", c.Encoding.Format)
	}
	if len(c.Encoding.Languages) == 0 {
		return fmt.Errorf("encoding.languages: at least one preferred language is required")
	}
	if !validProfiles[c.Naming.Profile] {
		return fmt.Errorf("naming.profile: unsupported value %q (want standard, plex, emby, or jellyfin)", c.Naming.Profile)
	}
	if c.LogFormat != "" && !validLogFormats[strings.ToLower(c.LogFormat)] {
		return fmt.Errorf("log_format: unsupported value %q", c.LogFormat)
	}
	return nil
}

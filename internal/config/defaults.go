package config

import (
	"os"
	"path/filepath"
)

const (
	defaultCodec     = "libx265"
	defaultFormat    = "none"
	defaultProfile   = "standard"
	defaultLogLevel  = "info"
	defaultLogFormat = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	cache := defaultCacheDir()
	return Config{
		Paths: Paths{
			OutputDir:  ".",
			LibraryDir: "",
			CacheDir:   cache,
		},
		Encoding: Encoding{
			Codec:     defaultCodec,
			Format:    defaultFormat,
			Languages: []string{"en"},
		},
		Naming: Naming{
			Profile: defaultProfile,
		},
		Tools: Tools{
			FFmpeg:      "ffmpeg",
			MediaInfo:   "mediainfo",
			MKVPropEdit: "mkvpropedit",
		},
		Scraper: Scraper{
			Name:      "",
			CachePath: filepath.Join(cache, "episodes.db"),
		},
		LogLevel:  defaultLogLevel,
		LogFormat: defaultLogFormat,
	}
}

func defaultCacheDir() string {
	if dir, err := os.UserCacheDir(); err == nil && dir != "" {
		return filepath.Join(dir, "telecine")
	}
	return ".telecine-cache"
}

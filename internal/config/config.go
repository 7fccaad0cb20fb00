package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	OutputDir  string `toml:"output_dir"`
	LibraryDir string `toml:"library_dir"`
	CacheDir   string `toml:"cache_dir"`
}

// Encoding contains default encode parameters. CLI flags override these
// per invocation.
type Encoding struct {
	Codec       string   `toml:"codec"`
	Format      string   `toml:"format"`
	HighQuality bool     `toml:"high_quality"`
	Languages   []string `toml:"languages"`
}

// Naming selects the library naming profile.
type Naming struct {
	Profile string `toml:"profile"`
}

// Tools overrides the external binaries telecine invokes.
type Tools struct {
	FFmpeg      string `toml:"ffmpeg"`
	MediaInfo   string `toml:"mediainfo"`
	MKVPropEdit string `toml:"mkvpropedit"`
}

// Scraper selects the episode metadata scraper and its cache location.
type Scraper struct {
	Name      string `toml:"name"`
	CachePath string `toml:"cache_path"`
}

// Config is the root configuration document.
type Config struct {
	Paths    Paths    `toml:"paths"`
	Encoding Encoding `toml:"encoding"`
	Naming   Naming   `toml:"naming"`
	Tools    Tools    `toml:"tools"`
	Scraper  Scraper  `toml:"scraper"`

	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	if dir, err := os.UserConfigDir(); err == nil && dir != "" {
		return filepath.Join(dir, "telecine", "config.toml")
	}
	return "telecine.toml"
}

// Load reads the configuration file at path, or the default location when
// path is empty. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = DefaultPath()
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return &cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

// WriteSample writes the embedded sample configuration to path, refusing to
// clobber an existing file.
func WriteSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	return os.WriteFile(path, []byte(sampleConfig), 0o644)
}

func (c *Config) normalize() {
	c.Encoding.Codec = strings.ToLower(strings.TrimSpace(c.Encoding.Codec))
	c.Encoding.Format = strings.ToLower(strings.TrimSpace(c.Encoding.Format))
	c.Naming.Profile = strings.ToLower(strings.TrimSpace(c.Naming.Profile))
	c.Scraper.Name = strings.ToLower(strings.TrimSpace(c.Scraper.Name))
	languages := make([]string, 0, len(c.Encoding.Languages))
	for _, lang := range c.Encoding.Languages {
		lang = strings.ToLower(strings.TrimSpace(lang))
		if lang != "" {
			languages = append(languages, lang)
		}
	}
	c.Encoding.Languages = languages
	for _, dir := range []*string{&c.Paths.OutputDir, &c.Paths.LibraryDir, &c.Paths.CacheDir, &c.Scraper.CachePath} {
		*dir = expandHome(strings.TrimSpace(*dir))
	}
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

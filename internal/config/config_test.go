package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestLoadMissingExplicitPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("explicit missing path must fail")
	}
}

func TestLoadDecodesAndNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
log_level = "debug"

[encoding]
codec = "HEVC_NVENC"
format = "1080p"
languages = ["EN", " ja ", ""]

[naming]
profile = "Plex"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Encoding.Codec != "hevc_nvenc" {
		t.Fatalf("codec = %q", cfg.Encoding.Codec)
	}
	if len(cfg.Encoding.Languages) != 2 || cfg.Encoding.Languages[0] != "en" || cfg.Encoding.Languages[1] != "ja" {
		t.Fatalf("languages = %v", cfg.Encoding.Languages)
	}
	if cfg.Naming.Profile != "plex" {
		t.Fatalf("profile = %q", cfg.Naming.Profile)
	}
	// Defaults survive partial files.
	if cfg.Tools.FFmpeg != "ffmpeg" {
		t.Fatalf("ffmpeg tool default lost: %q", cfg.Tools.FFmpeg)
	}
}

func TestValidateRejectsBadCodec(t *testing.T) {
	cfg := Default()
	cfg.Encoding.Codec = "mpeg2"
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "encoding.codec") {
		t.Fatalf("expected codec error, got %v", err)
	}
}

func TestValidateRejectsEmptyLanguages(t *testing.T) {
	cfg := Default()
	cfg.Encoding.Languages = nil
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected languages error")
	}
}

func TestWriteSampleRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := WriteSample(path); err != nil {
		t.Fatalf("WriteSample: %v", err)
	}
	if err := WriteSample(path); err == nil {
		t.Fatal("expected overwrite refusal")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[encoding]") {
		t.Fatal("sample missing encoding section")
	}
}

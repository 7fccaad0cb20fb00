// Package config loads and validates telecine's TOML configuration.
//
// Defaults come from Default(), the user file is decoded over them, and
// Validate() rejects unusable combinations before any subprocess runs.
// A documented sample configuration is embedded for `telecine config init`.
package config

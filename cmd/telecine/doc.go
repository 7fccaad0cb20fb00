// Package main hosts the telecine CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into the
// internal pipeline: encode jobs, retag-and-relocate jobs, stream
// inspection, dependency checks, and configuration scaffolding. It
// centralizes configuration resolution and structured logging setup so
// subcommands can focus on flag binding and output.
//
// Keep this package lean: add new functionality by extending the
// internal packages first, then surface it through dedicated commands
// or flags here.
package main

// Package logging constructs the slog loggers used across telecine.
//
// Two handler formats are supported: a human-oriented console handler that
// colorizes levels when stderr is a terminal, and a line-delimited JSON
// handler for log capture. Attr helpers (String, Int, Bool, Error, ...)
// keep call sites terse and uniform.
package logging

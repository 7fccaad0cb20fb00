// Package workflow sequences the pipeline stages for one file at a
// time: probe, select, compile, encode, tag for the encode mode, and
// tag-and-relocate for the retag mode.
package workflow

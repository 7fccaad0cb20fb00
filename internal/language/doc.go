// Package language maps between ISO 639 language codes and display names.
//
// Probe output is inconsistent about language tagging: the same track may
// carry "en", "eng", or "English" depending on the muxer. Everything here
// normalizes through a single static table so selection and labeling agree.
package language

// Package services defines the shared error taxonomy used by every pipeline
// stage.
//
// Errors are tagged with sentinel markers (ErrExternalTool, ErrValidation,
// and friends) via Wrap so callers can classify a failure without parsing
// message text. Wrap also folds the stage and operation names into the
// message, which keeps "which file, which stage" visible in every fatal
// error the CLI prints.
package services

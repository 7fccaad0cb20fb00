package encoder

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"telecine/internal/logging"
	"telecine/internal/services"
)

// commandRunner executes an external tool, returning its combined output
// on failure so the error carries the tool's own diagnostics.
type commandRunner func(ctx context.Context, name string, args ...string) error

// Runner drives ffmpeg and mkvpropedit for one prepared file.
type Runner struct {
	ffmpeg      string
	mkvpropedit string
	logger      *slog.Logger
	run         commandRunner
}

// New constructs a Runner around the configured tool paths.
func New(ffmpeg, mkvpropedit string, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{
		ffmpeg:      ffmpeg,
		mkvpropedit: mkvpropedit,
		logger:      logger,
		run:         defaultCommandRunner,
	}
}

// WithCommandRunner injects a custom command runner for tests.
func (r *Runner) WithCommandRunner(run commandRunner) {
	if r != nil && run != nil {
		r.run = run
	}
}

// Encode runs ffmpeg with the compiled arguments plus the output path.
// The output is written to a temporary sibling first and renamed into
// place so an interrupted encode never leaves a half-written target.
func (r *Runner) Encode(ctx context.Context, args []string, outputPath string) error {
	if len(args) == 0 {
		return services.Wrap(services.ErrValidation, "encoding", "encode", "no encoder arguments compiled", nil)
	}

	tmpPath := partialPath(outputPath)
	full := make([]string, 0, len(args)+3)
	full = append(full, "-y", "-hide_banner")
	full = append(full, args...)
	full = append(full, tmpPath)

	r.logger.Info("starting encode",
		logging.String("output", outputPath),
		logging.Int("arg_count", len(full)),
	)
	r.logger.Debug("encoder command",
		logging.String("binary", r.ffmpeg),
		logging.String("args", strings.Join(full, " ")),
	)

	started := time.Now()
	if err := r.run(ctx, r.ffmpeg, full...); err != nil {
		_ = os.Remove(tmpPath)
		return services.Wrap(services.ErrExternalTool, "encoding", "encode",
			fmt.Sprintf("ffmpeg failed for %s", outputPath), err)
	}
	if _, err := os.Stat(tmpPath); err != nil {
		return services.Wrap(services.ErrExternalTool, "encoding", "encode",
			fmt.Sprintf("ffmpeg produced no output for %s", outputPath), err)
	}
	if err := os.Rename(tmpPath, outputPath); err != nil {
		_ = os.Remove(tmpPath)
		return services.Wrap(services.ErrExternalTool, "encoding", "encode",
			fmt.Sprintf("could not move encode into place at %s", outputPath), err)
	}

	r.logger.Info("encode complete",
		logging.String("output", outputPath),
		logging.Duration("elapsed", time.Since(started)),
	)
	return nil
}

// Tag runs mkvpropedit against the encoded file with the compiled edits.
// Tagging only applies to Matroska output.
func (r *Runner) Tag(ctx context.Context, path string, args []string) error {
	if len(args) == 0 {
		return nil
	}
	if strings.TrimSpace(r.mkvpropedit) == "" {
		return services.Wrap(services.ErrConfiguration, "tagging", "tag",
			"mkvpropedit is not configured", nil)
	}

	full := make([]string, 0, len(args)+1)
	full = append(full, path)
	full = append(full, args...)

	r.logger.Debug("tag editor command",
		logging.String("binary", r.mkvpropedit),
		logging.String("args", strings.Join(full, " ")),
	)

	if err := r.run(ctx, r.mkvpropedit, full...); err != nil {
		return services.Wrap(services.ErrExternalTool, "tagging", "tag",
			fmt.Sprintf("mkvpropedit failed for %s", path), err)
	}
	return nil
}

// partialPath names the in-progress sibling of outputPath. The container
// extension stays last: ffmpeg picks its muxer from it.
func partialPath(outputPath string) string {
	ext := filepath.Ext(outputPath)
	return strings.TrimSuffix(outputPath, ext) + ".part" + ext
}

func defaultCommandRunner(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}

package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"telecine/internal/compile"
	"telecine/internal/config"
	"telecine/internal/logging"
	"telecine/internal/media/probe"
	"telecine/internal/media/track"
	"telecine/internal/naming"
	"telecine/internal/selection"
	"telecine/internal/services"
)

// State names the orchestrator's position in one invocation. No state is
// re-entered within a single run.
type State string

const (
	StateIdle      State = "idle"
	StateProbing   State = "probing"
	StateSelecting State = "selecting"
	StateCompiling State = "compiling"
	StateEncoding  State = "encoding"
	StateTagging   State = "tagging"
	StateDone      State = "done"
	StateFailed    State = "failed"
)

// ToolRunner executes the external encoder and tag editor.
type ToolRunner interface {
	Encode(ctx context.Context, args []string, outputPath string) error
	Tag(ctx context.Context, path string, args []string) error
}

// probeFunc matches probe.Inspect and allows test injection.
type probeFunc func(ctx context.Context, binary, path string) ([]probe.Record, error)

// Encoder sequences probe, selection, compilation, encode, and tag for
// one input file at a time.
type Encoder struct {
	cfg    *config.Config
	logger *slog.Logger
	runner ToolRunner
	probe  probeFunc
	state  State
}

// NewEncoder constructs the orchestrator.
func NewEncoder(cfg *config.Config, runner ToolRunner, logger *slog.Logger) *Encoder {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Encoder{
		cfg:    cfg,
		logger: logger,
		runner: runner,
		probe:  probe.Inspect,
		state:  StateIdle,
	}
}

// WithProbe injects a probe function for tests.
func (e *Encoder) WithProbe(fn probeFunc) {
	if e != nil && fn != nil {
		e.probe = fn
	}
}

// State returns the orchestrator's current state.
func (e *Encoder) State() State {
	return e.state
}

// EncodeRequest describes one encode job.
type EncodeRequest struct {
	InputPath   string
	OutputDir   string
	Container   string // "mkv" or "mp4"
	Codec       compile.Codec
	Format      compile.Format
	Remux       bool
	CopyVideo   bool
	CopyAudio   bool
	HighQuality bool
	Languages   []string
}

// EncodeResult reports one finished job.
type EncodeResult struct {
	JobID      string
	OutputPath string
	Tagged     bool
	TagWarning error // post-encode tag failure; the encoded file is kept
}

// Run drives one input through the full pipeline. Validation happens
// before any subprocess starts; probe and encoder failures are fatal for
// the file, a tag-editor failure after a successful encode is not.
func (e *Encoder) Run(ctx context.Context, req EncodeRequest) (EncodeResult, error) {
	jobID := uuid.NewString()
	result := EncodeResult{JobID: jobID}
	logger := e.logger.With(logging.String("job_id", jobID), logging.String("input", req.InputPath))

	if err := e.validate(req); err != nil {
		e.state = StateFailed
		return result, err
	}

	e.transition(logger, StateProbing)
	records, err := e.probe(ctx, e.cfg.Tools.MediaInfo, req.InputPath)
	if err != nil {
		e.state = StateFailed
		return result, err
	}
	tracks := track.Normalize(records)

	e.transition(logger, StateSelecting)
	languages := req.Languages
	if len(languages) == 0 {
		languages = e.cfg.Encoding.Languages
	}
	sel := selection.Select(tracks, languages, req.HighQuality)
	logger.Info("streams selected",
		logging.Bool("video", sel.Video != nil),
		logging.Int("audio", len(sel.Audio)),
		logging.Int("subtitles", len(sel.Subtitles)),
		logging.Int("attachments", len(sel.Attachments)),
	)

	e.transition(logger, StateCompiling)
	base := strings.TrimSuffix(filepath.Base(req.InputPath), filepath.Ext(req.InputPath))
	target := naming.BuildOutputPath(req.OutputDir, base, req.Container)

	video := compile.Video(compile.VideoRequest{
		Track:     sel.Video,
		InputPath: req.InputPath,
		Title:     target.Title,
		Codec:     req.Codec,
		Format:    req.Format,
		Remux:     req.Remux,
		CopyVideo: req.CopyVideo,
	})
	params := video.Params.
		Merge(compile.Audio(tracks, sel.AudioIndices(), compile.AudioOptions{Remux: req.Remux, CopyAudio: req.CopyAudio})).
		Merge(compile.Subtitles(tracks, sel.SubtitleIndices(), sel.ForcedSubtitles)).
		Merge(compile.Attachments(sel.Attachments))

	if err := os.MkdirAll(target.Dir, 0o755); err != nil {
		e.state = StateFailed
		return result, services.Wrap(services.ErrValidation, "compiling", "output-dir",
			fmt.Sprintf("could not create %s", target.Dir), err)
	}
	result.OutputPath = target.Full()

	e.transition(logger, StateEncoding)
	if err := e.runner.Encode(ctx, params.EncoderArgs, result.OutputPath); err != nil {
		e.state = StateFailed
		return result, err
	}

	if req.Container == "mkv" && len(params.TagEditorArgs) > 0 {
		e.transition(logger, StateTagging)
		if err := e.runner.Tag(ctx, result.OutputPath, params.TagEditorArgs); err != nil {
			// The encode succeeded; keep the file and surface a warning.
			logger.Warn("tag edits failed; encoded file kept without container flags",
				logging.Error(err),
			)
			result.TagWarning = err
		} else {
			result.Tagged = true
		}
	}

	e.transition(logger, StateDone)
	logger.Info("encode job finished", logging.String("output", result.OutputPath))
	return result, nil
}

// BatchResult pairs one input with its outcome.
type BatchResult struct {
	InputPath string
	Result    EncodeResult
	Err       error
}

// RunBatch encodes each input independently. One file's failure never
// stops the rest of the batch.
func (e *Encoder) RunBatch(ctx context.Context, inputs []string, template EncodeRequest) []BatchResult {
	results := make([]BatchResult, 0, len(inputs))
	for _, input := range inputs {
		req := template
		req.InputPath = input
		res, err := e.Run(ctx, req)
		if err != nil {
			e.logger.Error("encode job failed",
				logging.String("input", input),
				logging.Error(err),
			)
		}
		results = append(results, BatchResult{InputPath: input, Result: res, Err: err})
		e.state = StateIdle
	}
	return results
}

func (e *Encoder) validate(req EncodeRequest) error {
	if strings.TrimSpace(req.InputPath) == "" {
		return services.Wrap(services.ErrValidation, "validating", "encode", "input path is empty", nil)
	}
	if _, err := os.Stat(req.InputPath); err != nil {
		return services.Wrap(services.ErrValidation, "validating", "encode",
			fmt.Sprintf("input %s is not readable", req.InputPath), err)
	}
	if strings.TrimSpace(req.OutputDir) == "" {
		return services.Wrap(services.ErrValidation, "validating", "encode",
			fmt.Sprintf("no output directory configured for %s", req.InputPath), nil)
	}
	if req.Container != "mkv" && req.Container != "mp4" {
		return services.Wrap(services.ErrValidation, "validating", "encode",
			fmt.Sprintf("unsupported container %q for %s", req.Container, req.InputPath), nil)
	}
	if req.Remux && (req.CopyVideo || req.CopyAudio) {
		return services.Wrap(services.ErrValidation, "validating", "encode",
			fmt.Sprintf("remux already copies every stream; drop the per-stream copy flags for %s", req.InputPath), nil)
	}
	return nil
}

func (e *Encoder) transition(logger *slog.Logger, next State) {
	logger.Debug("state transition",
		logging.String("from", string(e.state)),
		logging.String("to", string(next)),
	)
	e.state = next
}

package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"telecine/internal/compile"
	"telecine/internal/config"
	"telecine/internal/language"
	"telecine/internal/logging"
	"telecine/internal/media/probe"
	"telecine/internal/media/track"
	"telecine/internal/naming"
	"telecine/internal/organizer"
	"telecine/internal/scrapecache"
	"telecine/internal/scraper"
	"telecine/internal/services"
	"telecine/internal/textutil"
)

// Retagger rewrites an existing container's metadata and relocates it
// into the library layout.
type Retagger struct {
	cfg       *config.Config
	logger    *slog.Logger
	runner    ToolRunner
	probe     probeFunc
	organizer *organizer.Organizer
	scraper   scraper.Scraper
	cache     *scrapecache.Store
}

// NewRetagger constructs the retag flow. scraper and cache may be nil;
// naming then relies on the filename alone.
func NewRetagger(cfg *config.Config, runner ToolRunner, logger *slog.Logger) *Retagger {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Retagger{
		cfg:       cfg,
		logger:    logger,
		runner:    runner,
		probe:     probe.Inspect,
		organizer: organizer.New(logger),
	}
}

// WithProbe injects a probe function for tests.
func (r *Retagger) WithProbe(fn probeFunc) {
	if r != nil && fn != nil {
		r.probe = fn
	}
}

// WithScraper attaches the episode metadata source and its cache.
func (r *Retagger) WithScraper(s scraper.Scraper, cache *scrapecache.Store) {
	r.scraper = s
	r.cache = cache
}

// RetagRequest describes one retag-and-relocate job.
type RetagRequest struct {
	InputPath  string
	LibraryDir string
	Profile    naming.Profile
	Copy       bool // keep the source in place
	Overwrite  bool
}

// RetagResult reports one finished retag job.
type RetagResult struct {
	JobID     string
	FinalPath string
	Title     string
	Series    bool // placed into a series/season layout
}

// Retag rewrites the container title and track names, then moves (or
// copies) the file into the library. Unlike post-encode tagging, a tag
// editor failure here is fatal: the rewrite is the point of the run.
func (r *Retagger) Retag(ctx context.Context, req RetagRequest) (RetagResult, error) {
	jobID := uuid.NewString()
	result := RetagResult{JobID: jobID}
	logger := r.logger.With(logging.String("job_id", jobID), logging.String("input", req.InputPath))

	if strings.TrimSpace(req.InputPath) == "" {
		return result, services.Wrap(services.ErrValidation, "validating", "retag", "input path is empty", nil)
	}
	if _, err := os.Stat(req.InputPath); err != nil {
		return result, services.Wrap(services.ErrValidation, "validating", "retag",
			fmt.Sprintf("input %s is not readable", req.InputPath), err)
	}
	if strings.TrimSpace(req.LibraryDir) == "" {
		return result, services.Wrap(services.ErrValidation, "validating", "retag",
			fmt.Sprintf("no library directory configured for %s", req.InputPath), nil)
	}

	ext := strings.TrimPrefix(filepath.Ext(req.InputPath), ".")
	base := strings.TrimSuffix(filepath.Base(req.InputPath), filepath.Ext(req.InputPath))

	info := naming.ParseSeries(base)
	if info == nil {
		// Dot- and underscore-mangled names get one cleanup pass before
		// falling back to flat naming.
		if cleaned := naming.CleanSeriesName(base); cleaned != base {
			info = naming.ParseSeries(cleaned)
		}
	} else if strings.ContainsAny(info.Series, "._") {
		info.Series = naming.CleanSeriesName(info.Series)
	}

	var target naming.OutputPath
	if info != nil {
		r.fillEpisodeName(ctx, logger, info)
		title := req.Profile.FileTitle(info)
		if info.EpisodeName != "" {
			title += " - " + info.EpisodeName
		}
		target = naming.OutputPath{
			Dir: filepath.Join(req.LibraryDir,
				textutil.SanitizeName(info.Series),
				textutil.SanitizeName(naming.SeasonFolder(info.Season))),
			Filename: textutil.SanitizeName(req.Profile.FileName(info)) + "." + ext,
			Title:    textutil.SanitizeName(title),
		}
		result.Series = true
	} else {
		target = naming.BuildOutputPath(req.LibraryDir, base, ext)
	}
	result.Title = target.Title

	if strings.EqualFold(ext, "mkv") {
		records, err := r.probe(ctx, r.cfg.Tools.MediaInfo, req.InputPath)
		if err != nil {
			return result, err
		}
		edits := retagEdits(target.Title, track.Normalize(records))
		if err := r.runner.Tag(ctx, req.InputPath, edits); err != nil {
			return result, err
		}
	} else {
		logger.Warn("container does not support tag editing; relocating only",
			logging.String("extension", ext),
		)
	}

	final, err := r.organizer.Place(ctx, organizer.Request{
		SourcePath: req.InputPath,
		Target:     target,
		Copy:       req.Copy,
		Overwrite:  req.Overwrite,
	})
	if err != nil {
		return result, err
	}
	result.FinalPath = final

	logger.Info("retag job finished",
		logging.String("final", final),
		logging.String("title", result.Title),
	)
	return result, nil
}

// fillEpisodeName substitutes a scraped title when the filename carries
// none. Lookup failures degrade to filename-only naming.
func (r *Retagger) fillEpisodeName(ctx context.Context, logger *slog.Logger, info *naming.SeriesInfo) {
	if info.EpisodeName != "" || r.scraper == nil {
		return
	}

	if r.cache != nil {
		title, found, err := r.cache.Get(ctx, r.scraper.Name(), info.Series, info.Season, info.Episode)
		if err != nil {
			logger.Warn("scrape cache read failed", logging.Error(err))
		} else if found {
			info.EpisodeName = title
			return
		}
	}

	title, err := r.scraper.EpisodeTitle(ctx, info.Series, info.Season, info.Episode)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			logger.Warn("episode title lookup degraded to filename metadata", logging.Error(err))
		} else {
			logger.Warn("episode title lookup failed", logging.Error(err))
		}
		return
	}
	info.EpisodeName = title

	if r.cache != nil {
		if err := r.cache.Put(ctx, r.scraper.Name(), info.Series, info.Season, info.Episode, title); err != nil {
			logger.Warn("scrape cache write failed", logging.Error(err))
		}
	}
}

// retagEdits builds the tag-editor argument list: the container title
// plus a descriptive name per stream, addressed by type order.
func retagEdits(title string, tracks []track.Track) []string {
	args := []string{"--edit", "info", "--set", "title=" + title}
	for _, t := range tracks {
		switch t.Type {
		case track.TypeVideo:
			args = append(args,
				"--edit", fmt.Sprintf("track:v%d", t.TypeOrder),
				"--set", "name=Video - "+compile.FormatLabel(t.CodecID),
			)
		case track.TypeAudio:
			name := "Audio"
			if t.Format != "" {
				name += " - " + t.Format
			}
			args = append(args,
				"--edit", fmt.Sprintf("track:a%d", t.TypeOrder),
				"--set", "name="+name,
			)
		case track.TypeText:
			name := t.LanguageName
			if name == "" {
				name = language.DisplayName(t.Language)
			}
			if name == "" {
				name = "Unknown"
			}
			args = append(args,
				"--edit", fmt.Sprintf("track:s%d", t.TypeOrder),
				"--set", "name=Subtitles - "+name,
			)
		}
	}
	return args
}

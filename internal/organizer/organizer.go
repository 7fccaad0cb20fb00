package organizer

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/gofrs/flock"

	"telecine/internal/logging"
	"telecine/internal/naming"
	"telecine/internal/services"
)

// lockFileName guards a destination directory against concurrent
// placements from parallel invocations.
const lockFileName = ".telecine.lock"

// Request describes one file placement.
type Request struct {
	SourcePath string
	Target     naming.OutputPath
	Copy       bool // keep the source instead of moving it
	Overwrite  bool
}

// Organizer relocates finished files into the library layout.
type Organizer struct {
	logger *slog.Logger
}

// New constructs an Organizer.
func New(logger *slog.Logger) *Organizer {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Organizer{logger: logger}
}

// Place moves or copies the source into the target location, creating
// the directory hierarchy as needed. The destination directory is
// flock-guarded so concurrent runs cannot interleave placements.
func (o *Organizer) Place(ctx context.Context, req Request) (string, error) {
	if strings.TrimSpace(req.SourcePath) == "" {
		return "", services.Wrap(services.ErrValidation, "organizing", "place", "source path is empty", nil)
	}
	if _, err := os.Stat(req.SourcePath); err != nil {
		return "", services.Wrap(services.ErrValidation, "organizing", "place",
			fmt.Sprintf("source %s is not readable", req.SourcePath), err)
	}

	if err := os.MkdirAll(req.Target.Dir, 0o755); err != nil {
		return "", services.Wrap(services.ErrValidation, "organizing", "place",
			fmt.Sprintf("could not create %s", req.Target.Dir), err)
	}

	lock := flock.New(filepath.Join(req.Target.Dir, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return "", services.Wrap(services.ErrTransient, "organizing", "place",
			fmt.Sprintf("could not lock %s", req.Target.Dir), err)
	}
	if !locked {
		return "", services.Wrap(services.ErrTransient, "organizing", "place",
			fmt.Sprintf("destination %s is locked by another run", req.Target.Dir), nil)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	finalPath := req.Target.Full()
	if !req.Overwrite {
		if _, statErr := os.Stat(finalPath); statErr == nil {
			return "", services.Wrap(services.ErrValidation, "organizing", "place",
				fmt.Sprintf("destination %s already exists", finalPath), nil)
		}
	}

	if req.Copy {
		if err := copyFile(req.SourcePath, finalPath); err != nil {
			return "", services.Wrap(services.ErrTransient, "organizing", "place",
				fmt.Sprintf("copy to %s failed", finalPath), err)
		}
	} else if err := moveFile(req.SourcePath, finalPath); err != nil {
		return "", services.Wrap(services.ErrTransient, "organizing", "place",
			fmt.Sprintf("move to %s failed", finalPath), err)
	}

	o.logger.Info("file placed",
		logging.String("source", req.SourcePath),
		logging.String("destination", finalPath),
		logging.Bool("copied", req.Copy),
	)
	return finalPath, nil
}

// moveFile renames when source and destination share a filesystem and
// falls back to a verified copy plus source removal when they do not.
func moveFile(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !errors.Is(err, syscall.EXDEV) {
		return err
	}
	if err := copyFile(src, dst); err != nil {
		return err
	}
	return os.Remove(src)
}

// copyFile copies src to dst, verifying size and content hash.
func copyFile(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		_ = out.Close()
	}()

	srcHasher := sha256.New()
	dstHasher := sha256.New()
	written, err := io.Copy(io.MultiWriter(out, dstHasher), io.TeeReader(in, srcHasher))
	if err != nil {
		_ = os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return err
	}

	if written != srcInfo.Size() {
		_ = os.Remove(dst)
		return fmt.Errorf("copy size mismatch: source %d bytes, copied %d bytes", srcInfo.Size(), written)
	}
	if !bytes.Equal(srcHasher.Sum(nil), dstHasher.Sum(nil)) {
		_ = os.Remove(dst)
		return fmt.Errorf("copy hash mismatch: file corrupted during copy")
	}
	return nil
}

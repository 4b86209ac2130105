package output

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	apperrors "audio-transcriber/internal/app/errors"
	"audio-transcriber/internal/app/model"
	"audio-transcriber/internal/app/util/files"
)

// ManifestName is the file name of the combined (Kaldi-style) manifest.
const ManifestName = "transcription.txt"

const filePerm = 0644

// WriteError reports one output file that could not be persisted.
type WriteError struct {
	Path     string
	Identity string
	Err      error
}

func (e *WriteError) Error() string {
	if e.Identity == "" {
		return fmt.Sprintf("%v: %s: %v", apperrors.ErrFileWriteFailed, e.Path, e.Err)
	}
	return fmt.Sprintf("%v: %s (%s): %v", apperrors.ErrFileWriteFailed, e.Path, e.Identity, e.Err)
}

// Unwrap exposes both the sentinel and the underlying cause to errors.Is.
func (e *WriteError) Unwrap() []error {
	return []error{apperrors.ErrFileWriteFailed, e.Err}
}

// Writer persists a BatchResult in one output mode.
type Writer struct {
	mode        model.OutputMode
	manifestDir string
	logger      *zap.Logger
}

// NewWriter creates a writer. manifestDir is where Combined mode places
// transcription.txt; an empty value means the working directory.
func NewWriter(mode model.OutputMode, manifestDir string, logger *zap.Logger) *Writer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Writer{mode: mode, manifestDir: manifestDir, logger: logger}
}

func (w *Writer) Mode() model.OutputMode { return w.mode }

// ManifestPath is the path of the combined manifest.
func (w *Writer) ManifestPath() string {
	return filepath.Join(w.manifestDir, ManifestName)
}

// Write persists result and returns the paths it wrote. Write failures are
// returned as WriteErrors combined with multierr; in PerItem mode a failing
// file does not stop the remaining ones and nothing already written is removed.
func (w *Writer) Write(jobs model.JobSet, result *model.BatchResult) ([]string, error) {
	switch w.mode {
	case model.PerItem:
		return w.writePerItem(jobs, result)
	case model.Combined:
		return w.writeCombined(result)
	default:
		return nil, apperrors.InvalidField("output mode", w.mode.String())
	}
}

func (w *Writer) writePerItem(jobs model.JobSet, result *model.BatchResult) ([]string, error) {
	var written []string
	var errs error
	for _, job := range jobs {
		outcome, ok := result.Get(job.Identity)
		if !ok || !outcome.IsSuccess() {
			continue
		}
		path, err := w.WriteItem(job, outcome)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		written = append(written, path)
	}
	return written, errs
}

// WriteItem writes the sidecar file of a single successful outcome.
func (w *Writer) WriteItem(job model.Job, outcome model.Outcome) (string, error) {
	path := files.SidecarPath(job.SourcePath)
	if err := files.WriteFileAtomic(path, []byte(outcome.Text()), filePerm); err != nil {
		w.logger.Error("failed to write transcription",
			zap.String("identity", job.Identity), zap.String("path", path), zap.Error(err))
		return "", &WriteError{Path: path, Identity: job.Identity, Err: err}
	}
	w.logger.Debug("wrote transcription", zap.String("identity", job.Identity), zap.String("path", path))
	return path, nil
}

// writeCombined always writes the manifest, even when no job succeeded, so a
// run leaves a predictable artefact behind.
func (w *Writer) writeCombined(result *model.BatchResult) ([]string, error) {
	path := w.ManifestPath()
	content := Manifest(result)
	if err := files.WriteFileAtomic(path, []byte(content), filePerm); err != nil {
		w.logger.Error("failed to write manifest", zap.String("path", path), zap.Error(err))
		return nil, &WriteError{Path: path, Err: err}
	}
	w.logger.Info("wrote manifest",
		zap.String("path", path), zap.Int("lines", len(result.Successes())))
	return []string{path}, nil
}

// lineBreaks folds multi-line transcriptions onto their manifest line.
var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// Manifest renders the "<identity> <text>" lines of every success in result
// order, joined by newlines with no trailing separator. Line breaks inside a
// text become spaces so every success stays on exactly one line.
func Manifest(result *model.BatchResult) string {
	successes := result.Successes()
	lines := make([]string, len(successes))
	for i, o := range successes {
		lines[i] = o.Identity() + " " + lineBreaks.Replace(o.Text())
	}
	return strings.Join(lines, "\n")
}

// ItemStreamer writes per-item sidecars as soon as each job finishes. It
// satisfies batch.Observer and is safe for concurrent use.
type ItemStreamer struct {
	writer *Writer

	mu      sync.Mutex
	written []string
	errs    error
}

// NewItemStreamer wraps a PerItem writer.
func NewItemStreamer(w *Writer) *ItemStreamer {
	return &ItemStreamer{writer: w}
}

func (s *ItemStreamer) JobDone(job model.Job, outcome model.Outcome, _ time.Duration) {
	if !outcome.IsSuccess() {
		return
	}
	path, err := s.writer.WriteItem(job, outcome)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.errs = multierr.Append(s.errs, err)
		return
	}
	s.written = append(s.written, path)
}

// Result returns the files written so far and the accumulated write errors.
func (s *ItemStreamer) Result() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	written := make([]string, len(s.written))
	copy(written, s.written)
	return written, s.errs
}

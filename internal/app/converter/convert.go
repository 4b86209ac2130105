package converter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"audio-transcriber/internal/app/api"
	"audio-transcriber/internal/app/batch"
	"audio-transcriber/internal/app/model"
	"audio-transcriber/internal/app/output"
)

// Options configure a Converter.
type Options struct {
	// Workers caps the Concurrent strategy; zero means one worker per job.
	Workers int
	// OutputDir receives the Combined manifest; empty means the working directory.
	OutputDir string
	// StreamPerItem writes PerItem sidecars as each job finishes instead of after the batch.
	StreamPerItem bool
	Progress      ProgressConfig
}

// Converter runs batches of audio files through a transcriber and persists the results.
type Converter struct {
	transcriber api.Transcriber
	logger      *zap.Logger
	metrics     *Metrics
	opts        Options
}

// Report describes one finished batch run.
type Report struct {
	RunID    string
	Strategy model.Strategy
	Mode     model.OutputMode
	Result   *model.BatchResult
	Written  []string
	Elapsed  time.Duration
}

func NewConverter(transcriber api.Transcriber, logger *zap.Logger, metrics *Metrics, opts Options) *Converter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Converter{
		transcriber: transcriber,
		logger:      logger,
		metrics:     metrics,
		opts:        opts,
	}
}

// RunBatch transcribes jobs with the chosen strategy, writes the output in
// the chosen mode and returns the ordered result. A write failure is returned
// together with the result so callers can still show every outcome.
func (c *Converter) RunBatch(ctx context.Context, jobs model.JobSet, strategy model.Strategy, mode model.OutputMode, language string) (*model.BatchResult, error) {
	report, err := c.Run(ctx, jobs, strategy, mode, language)
	if report == nil {
		return nil, err
	}
	return report.Result, err
}

// Run is RunBatch with run metadata.
func (c *Converter) Run(ctx context.Context, jobs model.JobSet, strategy model.Strategy, mode model.OutputMode, language string) (*Report, error) {
	if err := batch.ValidateJobSet(jobs); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	logger := c.logger.With(zap.String("run_id", runID))
	writer := output.NewWriter(mode, c.opts.OutputDir, logger)

	progress := NewProgressManager(c.opts.Progress)
	defer progress.Shutdown()
	bar := progress.CreateBar(len(jobs), FormatProgressDescription("Transcribing", language))

	observers := batch.Observers{bar, logObserver(logger)}
	if c.metrics != nil {
		observers = append(observers, c.metrics.Observer(strategy))
	}
	var streamer *output.ItemStreamer
	if mode == model.PerItem && c.opts.StreamPerItem {
		streamer = output.NewItemStreamer(writer)
		observers = append(observers, streamer)
	}

	driver, err := batch.NewDriver(strategy, c.opts.Workers, observers)
	if err != nil {
		return nil, err
	}

	logger.Info("starting batch",
		zap.Int("jobs", len(jobs)),
		zap.Stringer("strategy", strategy),
		zap.Stringer("mode", mode),
		zap.String("language", language),
		zap.Int("workers", c.opts.Workers))

	start := time.Now()
	result, err := batch.Execute(ctx, driver, c.transcriber, jobs, language)
	if err != nil {
		logger.Error("batch aggregation failed", zap.Error(err))
		return nil, err
	}
	bar.Complete()
	progress.Wait()

	var written []string
	var writeErr error
	if streamer != nil {
		written, writeErr = streamer.Result()
	} else {
		written, writeErr = writer.Write(jobs, result)
	}

	report := &Report{
		RunID:    runID,
		Strategy: strategy,
		Mode:     mode,
		Result:   result,
		Written:  written,
		Elapsed:  time.Since(start),
	}
	if c.metrics != nil {
		c.metrics.ObserveBatch(strategy, result, report.Elapsed)
	}

	logger.Info("batch finished",
		zap.Int("succeeded", len(result.Successes())),
		zap.Int("failed", len(result.Failures())),
		zap.Int("files_written", len(written)),
		zap.Duration("elapsed", report.Elapsed))
	if writeErr != nil {
		logger.Error("some transcriptions could not be written", zap.Error(writeErr))
	}

	return report, writeErr
}

func logObserver(logger *zap.Logger) batch.Observer {
	return batch.ObserverFunc(func(job model.Job, outcome model.Outcome, elapsed time.Duration) {
		if outcome.IsSuccess() {
			logger.Debug("transcribed file",
				zap.String("identity", job.Identity),
				zap.String("path", job.SourcePath),
				zap.Duration("elapsed", elapsed))
			return
		}
		logger.Warn("failed to transcribe file",
			zap.String("identity", job.Identity),
			zap.String("path", job.SourcePath),
			zap.Duration("elapsed", elapsed),
			zap.Error(outcome.Cause()))
	})
}

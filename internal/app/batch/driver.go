package batch

import (
	"context"
	"fmt"
	"time"

	"audio-transcriber/internal/app/api"
	apperrors "audio-transcriber/internal/app/errors"
	"audio-transcriber/internal/app/model"
)

// Driver runs every job of a set through a transcriber and returns exactly one
// outcome per job. The order of the returned slice is driver-specific; use
// Aggregate to obtain a result ordered by submission.
type Driver interface {
	Run(ctx context.Context, port api.Transcriber, jobs model.JobSet, language string) []model.Outcome
}

// NewDriver returns the driver for the given strategy. workers caps the
// Concurrent driver; zero means one worker per job.
func NewDriver(strategy model.Strategy, workers int, observer Observer) (Driver, error) {
	if workers < 0 {
		return nil, &ConfigError{Reason: apperrors.OutOfRange("workers", 0, "number of jobs")}
	}
	switch strategy {
	case model.Sequential:
		return &Sequential{Observer: observer}, nil
	case model.Concurrent:
		return &Concurrent{Workers: workers, Observer: observer}, nil
	default:
		return nil, &ConfigError{Reason: apperrors.InvalidField("strategy", strategy.String())}
	}
}

// transcribeOne converts every way a single job can go wrong, including a
// panicking transcriber and a cancelled context, into a Failure outcome.
func transcribeOne(ctx context.Context, port api.Transcriber, job model.Job, language string) (outcome model.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = model.Failed(job.Identity,
				apperrors.Wrap(fmt.Errorf("%v", r), apperrors.ErrTranscriberPanic.Error()))
		}
	}()

	if err := ctx.Err(); err != nil {
		return model.Failed(job.Identity, apperrors.Wrap(err, "batch cancelled before dispatch"))
	}

	text, err := port.Transcript(ctx, job.SourcePath, language)
	if err != nil {
		return model.Failed(job.Identity, err)
	}
	return model.Succeeded(job.Identity, text)
}

func runJob(ctx context.Context, port api.Transcriber, job model.Job, language string, observer Observer) model.Outcome {
	start := time.Now()
	outcome := transcribeOne(ctx, port, job, language)
	notify(observer, job, outcome, time.Since(start))
	return outcome
}

// notify delivers a completion to observer. A panicking observer is contained
// here so it can neither crash a worker nor alter the outcome.
func notify(observer Observer, job model.Job, outcome model.Outcome, elapsed time.Duration) {
	if observer == nil {
		return
	}
	defer func() { _ = recover() }()
	observer.JobDone(job, outcome, elapsed)
}

package batch

import (
	"context"

	"audio-transcriber/internal/app/api"
	apperrors "audio-transcriber/internal/app/errors"
	"audio-transcriber/internal/app/model"
)

// Aggregate rebuilds a BatchResult ordered by the original job sequence from
// outcomes in any order. An outcome for an unknown identity, a second outcome
// for the same job, or a job left without an outcome is an AggregationError.
func Aggregate(jobs model.JobSet, outcomes []model.Outcome) (*model.BatchResult, error) {
	index := make(map[string]int, len(jobs))
	for i, job := range jobs {
		if _, exists := index[job.Identity]; exists {
			return nil, &AggregationError{Reason: apperrors.ErrDuplicateIdentity, Identity: job.Identity}
		}
		index[job.Identity] = i
	}

	slots := make([]*model.Outcome, len(jobs))
	for _, o := range outcomes {
		i, ok := index[o.Identity()]
		if !ok {
			return nil, &AggregationError{Reason: apperrors.ErrUnknownOutcome, Identity: o.Identity()}
		}
		if slots[i] != nil {
			return nil, &AggregationError{Reason: apperrors.ErrDuplicateOutcome, Identity: o.Identity()}
		}
		o := o
		slots[i] = &o
	}

	result := model.NewBatchResult(len(jobs))
	for i, job := range jobs {
		if slots[i] == nil {
			return nil, &AggregationError{Reason: apperrors.ErrMissingOutcome, Identity: job.Identity}
		}
		result.Put(*slots[i])
	}
	return result, nil
}

// Execute drives jobs with d and aggregates the outcomes.
func Execute(ctx context.Context, d Driver, port api.Transcriber, jobs model.JobSet, language string) (*model.BatchResult, error) {
	return Aggregate(jobs, d.Run(ctx, port, jobs, language))
}

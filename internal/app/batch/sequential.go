package batch

import (
	"context"

	"audio-transcriber/internal/app/api"
	"audio-transcriber/internal/app/model"
)

// Sequential transcribes jobs one at a time in submission order.
type Sequential struct {
	Observer Observer
}

func (s *Sequential) Run(ctx context.Context, port api.Transcriber, jobs model.JobSet, language string) []model.Outcome {
	outcomes := make([]model.Outcome, 0, len(jobs))
	for _, job := range jobs {
		outcomes = append(outcomes, runJob(ctx, port, job, language, s.Observer))
	}
	return outcomes
}

package batch

import (
	"context"
	"sync"

	"audio-transcriber/internal/app/api"
	"audio-transcriber/internal/app/model"
)

// Concurrent transcribes jobs in parallel on at most Workers goroutines.
//
// Every worker writes only its own slot of the outcome slice, indexed by the
// job's position, so the slots need no locking; wg.Wait is the single barrier.
type Concurrent struct {
	// Workers caps the number of in-flight transcriptions. Zero means one per job.
	Workers  int
	Observer Observer
}

func (c *Concurrent) Run(ctx context.Context, port api.Transcriber, jobs model.JobSet, language string) []model.Outcome {
	slots := make([]model.Outcome, len(jobs))
	if len(jobs) == 0 {
		return slots
	}

	workers := c.Workers
	if workers <= 0 || workers > len(jobs) {
		workers = len(jobs)
	}

	var wg sync.WaitGroup
	sem := make(chan bool, workers)

	for i, job := range jobs {
		sem <- true
		wg.Add(1)
		go func(i int, job model.Job) {
			defer wg.Done()
			defer func() { <-sem }()

			slots[i] = runJob(ctx, port, job, language, c.Observer)
		}(i, job)
	}
	wg.Wait()

	return slots
}

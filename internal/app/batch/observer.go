package batch

import (
	"time"

	"audio-transcriber/internal/app/model"
)

// Observer is notified once per finished job, from the goroutine that ran it.
// Implementations used with the Concurrent driver must be safe for concurrent use.
// Observers never influence outcomes.
type Observer interface {
	JobDone(job model.Job, outcome model.Outcome, elapsed time.Duration)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(job model.Job, outcome model.Outcome, elapsed time.Duration)

func (f ObserverFunc) JobDone(job model.Job, outcome model.Outcome, elapsed time.Duration) {
	f(job, outcome, elapsed)
}

// Observers fans a notification out to several observers in order; one
// panicking observer does not keep the others from being notified.
type Observers []Observer

func (obs Observers) JobDone(job model.Job, outcome model.Outcome, elapsed time.Duration) {
	for _, o := range obs {
		notify(o, job, outcome, elapsed)
	}
}

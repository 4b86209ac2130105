package model

import apperrors "audio-transcriber/internal/app/errors"

// Outcome is the result of attempting to transcribe one Job: either a success
// carrying the text or a failure carrying its cause. Outcomes are immutable.
type Outcome struct {
	identity string
	text     string
	cause    error
}

// Succeeded creates a success outcome.
func Succeeded(identity, text string) Outcome {
	return Outcome{identity: identity, text: text}
}

// Failed creates a failure outcome. A nil cause is replaced by apperrors.ErrUnknownCause so
// that a failure is never mistaken for a success.
func Failed(identity string, cause error) Outcome {
	if cause == nil {
		cause = apperrors.ErrUnknownCause
	}
	return Outcome{identity: identity, cause: cause}
}

func (o Outcome) Identity() string { return o.identity }

// Text is empty for failures.
func (o Outcome) Text() string { return o.text }

// Cause is nil for successes.
func (o Outcome) Cause() error { return o.cause }

func (o Outcome) IsSuccess() bool { return o.cause == nil }

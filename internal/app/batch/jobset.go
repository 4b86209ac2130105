package batch

import (
	"path/filepath"
	"strings"

	"github.com/samber/lo"

	apperrors "audio-transcriber/internal/app/errors"
	"audio-transcriber/internal/app/model"
)

// NewJobSet validates the source paths of one run and builds its jobs in the
// given order. Identities are the base names without extension; two inputs
// sharing one, e.g. the same file name in two subfolders, are rejected in
// every output mode since results are keyed by identity.
func NewJobSet(paths []string) (model.JobSet, error) {
	if len(paths) == 0 {
		return nil, &ConfigError{Reason: apperrors.ErrEmptyJobSet}
	}

	cleaned := make([]string, len(paths))
	for i, p := range paths {
		if strings.TrimSpace(p) == "" {
			return nil, &ConfigError{Reason: apperrors.ErrEmptySourcePath}
		}
		cleaned[i] = filepath.Clean(p)
	}

	if dups := lo.FindDuplicates(cleaned); len(dups) > 0 {
		return nil, &ConfigError{Reason: apperrors.ErrDuplicateSource, Details: dups}
	}

	jobs := model.JobSet(lo.Map(cleaned, func(p string, _ int) model.Job {
		return model.NewJob(p)
	}))

	if collisions := lo.FindDuplicates(jobs.Identities()); len(collisions) > 0 {
		return nil, &ConfigError{Reason: apperrors.ErrDuplicateIdentity, Details: collisions}
	}
	return jobs, nil
}

// ValidateJobSet re-checks a job set that may not have been built by NewJobSet.
func ValidateJobSet(jobs model.JobSet) error {
	if len(jobs) == 0 {
		return &ConfigError{Reason: apperrors.ErrEmptyJobSet}
	}
	for _, job := range jobs {
		if strings.TrimSpace(job.SourcePath) == "" || job.Identity == "" {
			return &ConfigError{Reason: apperrors.ErrEmptySourcePath, Details: []string{job.Identity}}
		}
	}
	if dups := lo.FindDuplicates(jobs.Identities()); len(dups) > 0 {
		return &ConfigError{Reason: apperrors.ErrDuplicateIdentity, Details: dups}
	}
	return nil
}

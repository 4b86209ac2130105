package model

import (
	"path/filepath"
	"strings"
)

// Job is one audio input of a batch run.
type Job struct {
	Identity   string
	SourcePath string
}

// NewJob builds a Job whose identity is the base name of sourcePath without extension.
func NewJob(sourcePath string) Job {
	return Job{
		Identity:   IdentityOf(sourcePath),
		SourcePath: sourcePath,
	}
}

// IdentityOf returns the file name of path with its extension stripped.
func IdentityOf(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// JobSet is the ordered, validated list of jobs for one batch run.
// Build it with batch.NewJobSet.
type JobSet []Job

// Identities returns the identities in submission order.
func (js JobSet) Identities() []string {
	ids := make([]string, len(js))
	for i, j := range js {
		ids[i] = j.Identity
	}
	return ids
}

package batch

import (
	"fmt"
	"strings"
)

// ConfigError reports a job set or run configuration that was rejected before
// any job was dispatched.
type ConfigError struct {
	Reason error
	// Details names the offending paths or identities, if any.
	Details []string
}

func (e *ConfigError) Error() string {
	if len(e.Details) == 0 {
		return fmt.Sprintf("invalid batch configuration: %v", e.Reason)
	}
	return fmt.Sprintf("invalid batch configuration: %v: %s", e.Reason, strings.Join(e.Details, ", "))
}

func (e *ConfigError) Unwrap() error { return e.Reason }

// AggregationError reports a mismatch between the submitted jobs and the
// outcomes a driver produced. It always indicates a driver defect.
type AggregationError struct {
	Reason   error
	Identity string
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("aggregate batch result: %v: %q", e.Reason, e.Identity)
}

func (e *AggregationError) Unwrap() error { return e.Reason }

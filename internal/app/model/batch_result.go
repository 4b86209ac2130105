package model

// BatchResult is an insertion-ordered mapping from identity to Outcome.
// It is built by the aggregator and is read-only afterwards.
type BatchResult struct {
	order    []string
	outcomes map[string]Outcome
}

// NewBatchResult returns an empty result sized for n outcomes.
func NewBatchResult(n int) *BatchResult {
	return &BatchResult{
		order:    make([]string, 0, n),
		outcomes: make(map[string]Outcome, n),
	}
}

// Put appends an outcome and reports false if its identity is already present.
func (r *BatchResult) Put(o Outcome) bool {
	if _, exists := r.outcomes[o.Identity()]; exists {
		return false
	}
	r.order = append(r.order, o.Identity())
	r.outcomes[o.Identity()] = o
	return true
}

func (r *BatchResult) Len() int {
	return len(r.order)
}

// Get looks up the outcome for identity.
func (r *BatchResult) Get(identity string) (Outcome, bool) {
	o, ok := r.outcomes[identity]
	return o, ok
}

// Identities returns the keys in insertion order.
func (r *BatchResult) Identities() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}

// Outcomes returns every outcome in insertion order.
func (r *BatchResult) Outcomes() []Outcome {
	out := make([]Outcome, len(r.order))
	for i, id := range r.order {
		out[i] = r.outcomes[id]
	}
	return out
}

// Successes returns the successful outcomes in insertion order.
func (r *BatchResult) Successes() []Outcome {
	return r.filter(true)
}

// Failures returns the failed outcomes in insertion order.
func (r *BatchResult) Failures() []Outcome {
	return r.filter(false)
}

func (r *BatchResult) filter(success bool) []Outcome {
	var out []Outcome
	for _, id := range r.order {
		if o := r.outcomes[id]; o.IsSuccess() == success {
			out = append(out, o)
		}
	}
	return out
}

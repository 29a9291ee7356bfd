package tagrm

import "fmt"

// Status is the final state of one tag in a deletion run.
type Status uint8

const (
	// StatusDeleted means both remote and local refs are gone.
	StatusDeleted Status = iota
	// StatusFailed means the tag could not be resolved (e.g. the prompt failed).
	StatusFailed
	// StatusAborted means the user aborted while this tag was failing.
	StatusAborted
)

// String returns a stable textual representation for Status.
func (s Status) String() string {
	switch s {
	case StatusFailed:
		return "failed"
	case StatusAborted:
		return "aborted"
	default:
		return "deleted"
	}
}

// Outcome is the result for a single tag.
type Outcome struct {
	Err    error
	Tag    string
	Status Status
}

// Report lists outcomes in the order tags were processed.
// Tags never attempted have no outcome.
type Report struct {
	Outcomes []Outcome
}

func (r *Report) add(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
}

// Deleted returns the names of the tags that were deleted.
func (r *Report) Deleted() []string {
	if r == nil {
		return nil
	}

	out := make([]string, 0, len(r.Outcomes))
	for _, o := range r.Outcomes {
		if o.Status == StatusDeleted {
			out = append(out, o.Tag)
		}
	}

	return out
}

// Summary is a one-line description such as "deleted 2 of 3 tags".
func (r *Report) Summary(requested int) string {
	return fmt.Sprintf("deleted %d of %d tags", len(r.Deleted()), requested)
}

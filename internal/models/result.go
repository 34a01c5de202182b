package models

// RunResult accumulates the outcome of one commit or remove run.
type RunResult struct {
	Attempted int
	Succeeded int
	Failed    []string // paths in attempt order
	Skipped   []string // remove flow only: neither tracked nor on disk
	Pushed    bool
	PushErr   error
}

func (r *RunResult) RecordSuccess() {
	r.Attempted++
	r.Succeeded++
}

func (r *RunResult) RecordFailure(path string) {
	r.Attempted++
	r.Failed = append(r.Failed, path)
}

func (r *RunResult) RecordSkip(path string) {
	r.Skipped = append(r.Skipped, path)
}

// OK reports whether every attempted item and the push (if any) succeeded.
func (r *RunResult) OK() bool {
	return len(r.Failed) == 0 && r.PushErr == nil
}

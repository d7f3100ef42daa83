package sinks

import (
	"context"
	"sync"

	"github.com/ib-77/fallible/pkg/fallible"
)

// Recorder keeps every diagnostic it receives. Safe for concurrent use.
type Recorder struct {
	mu          sync.Mutex
	diagnostics []fallible.Diagnostic
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Warn(_ context.Context, d fallible.Diagnostic) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.diagnostics = append(r.diagnostics, d)
}

// Diagnostics returns a copy of what has been recorded so far.
func (r *Recorder) Diagnostics() []fallible.Diagnostic {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]fallible.Diagnostic, len(r.diagnostics))
	copy(out, r.diagnostics)
	return out
}

// Messages returns the recorded messages in arrival order.
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.diagnostics))
	for i, d := range r.diagnostics {
		out[i] = d.Message
	}
	return out
}

func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.diagnostics)
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.diagnostics = nil
}

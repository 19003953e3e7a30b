package chartinfo

import (
	"context"
	"sync"
)

// Workspace holds the current Session for a long-running front end.
//
// It is the only mutable piece of the package. Drops may overlap: each one
// reads its files without holding the lock and then applies itself to
// whatever Session is current when its reads complete, so the last drop to
// finish classification wins. A failed drop leaves the Session unchanged.
//
// Workspace is safe for concurrent use.
type Workspace struct {
	mu      sync.Mutex
	session Session
}

// NewWorkspace returns a Workspace holding an empty Session.
func NewWorkspace(opts ...Option) *Workspace {
	return &Workspace{session: NewSession(opts...)}
}

// Session returns the current Session.
func (w *Workspace) Session() Session {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.session
}

// Drop applies documents that are already in memory.
func (w *Workspace) Drop(docs ...Document) (*Result, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	next, res, err := w.session.Drop(docs...)
	if err != nil {
		return nil, err
	}
	w.session = next
	return res, nil
}

// DropFiles reads the given paths concurrently and applies them as one drop.
func (w *Workspace) DropFiles(ctx context.Context, paths ...string) (*Result, error) {
	if len(paths) == 0 || len(paths) > 2 {
		return nil, &FileCountError{Count: len(paths)}
	}

	docs, err := ReadFiles(ctx, paths...)
	if err != nil {
		return nil, err
	}
	return w.Drop(docs...)
}

// SetMultiplier parses input as the new score multiplier and recomputes the
// summary of the cached chart. It returns ErrNoChart when nothing is loaded.
func (w *Workspace) SetMultiplier(input string) (*Result, error) {
	multiplier, err := ParseMultiplier(input)
	if err != nil {
		return nil, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.session.State() == StateEmpty {
		return nil, ErrNoChart
	}

	next, err := w.session.WithMultiplier(multiplier)
	if err != nil {
		return nil, err
	}
	summary, err := next.Summary()
	if err != nil {
		return nil, err
	}
	w.session = next

	chart, _ := next.Chart()
	return &Result{
		Action:  ActionRecomputed,
		Kinds:   []FileKind{chart.Kind},
		Summary: summary,
		Output:  Render(summary),
	}, nil
}

// Package selection implements stale-result suppression for overlapping
// fetches. Each fetch is tagged with a ticket for the selection it serves.
// When the fetch completes, its result is kept only if no newer selection
// was started in the same scope. The fetch itself is never cancelled.
package selection

import (
	"sync"

	"github.com/google/uuid"
)

// Ticket identifies one outstanding selection.
type Ticket struct {
	Scope string
	Key   string
	ID    string
}

// Tracker remembers the latest selection per scope. Safe for concurrent use.
type Tracker struct {
	mu      sync.Mutex
	current map[string]Ticket
}

func NewTracker() *Tracker {
	return &Tracker{current: make(map[string]Ticket)}
}

// Begin registers a new selection in scope, superseding any earlier one.
// An empty scope is not tracked and its tickets are always current.
func (t *Tracker) Begin(scope, key string) Ticket {
	tk := Ticket{Scope: scope, Key: key, ID: uuid.NewString()}
	if scope == "" {
		return tk
	}

	t.mu.Lock()
	t.current[scope] = tk
	t.mu.Unlock()
	return tk
}

// IsCurrent reports whether tk is still the latest selection of its scope.
func (t *Tracker) IsCurrent(tk Ticket) bool {
	if tk.Scope == "" {
		return true
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current[tk.Scope].ID == tk.ID
}

// Finish completes tk. It returns false when a newer selection superseded
// it, in which case the caller discards the result.
func (t *Tracker) Finish(tk Ticket) bool {
	if tk.Scope == "" {
		return true
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.current[tk.Scope].ID != tk.ID {
		return false
	}
	delete(t.current, tk.Scope)
	return true
}

// Pending returns the number of scopes with an unfinished selection.
func (t *Tracker) Pending() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.current)
}

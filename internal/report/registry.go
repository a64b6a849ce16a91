package report

import (
	"errors"
	"fmt"
	"sync"
)

// ErrTableNotFound is returned when a handle is zero, was never allocated
// or references a deleted table.
var ErrTableNotFound = errors.New("table not found")

// Registry hands out integer handles for tables built during report
// computation, so large intermediate results travel by handle instead of
// by value. Handles start at 1 and are never reused within a registry
// lifetime; deleting a table leaves a tombstone behind so stale handles
// fail deterministically. The host decides the registry's unit of work:
// construct one per computation run, or share one and roll back to a
// checkpoint with DeleteAllAbove. A single mutex serializes access since
// the web layer computes reports concurrently.
type Registry struct {
	mu     sync.Mutex
	tables map[int]*Table
	next   int
}

func NewRegistry() *Registry {
	return &Registry{
		tables: map[int]*Table{},
		next:   1,
	}
}

// Add stores the table under the next handle and returns it.
func (r *Registry) Add(t *Table) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.next
	r.tables[id] = t
	r.next++
	return id
}

// Get returns the table stored under the given handle.
func (r *Registry) Get(id int) (*Table, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t := r.tables[id]; t != nil {
		return t, nil
	}
	return nil, fmt.Errorf("%w: no table with handle %d, it may have expired once the computation that produced it finished", ErrTableNotFound, id)
}

// MostRecentID returns the last handle given out, or 0 when no table has
// ever been added.
func (r *Registry) MostRecentID() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.next - 1
}

// Delete tombstones the table stored under the given handle, dropping the
// reference to its value. Absent handles are a no-op.
func (r *Registry) Delete(id int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tables[id]; ok {
		r.tables[id] = nil
	}
}

// DeleteAllAbove tombstones every table whose handle is strictly greater
// than the threshold, rolling computation back to that checkpoint. A zero
// threshold instead resets the registry completely: the map is cleared and
// the next handle is 1 again.
func (r *Registry) DeleteAllAbove(threshold int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if threshold == 0 {
		r.tables = map[int]*Table{}
		r.next = 1
		return
	}
	for id := range r.tables {
		if id > threshold {
			r.tables[id] = nil
		}
	}
}

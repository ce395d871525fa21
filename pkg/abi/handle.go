// Package abi implements the C-ABI handle registry: a single process-wide,
// mutex-guarded map from opaque integer handles to owned parse results, so
// a C caller never sees a raw Go pointer.
package abi

import (
	"sync"

	"github.com/leapstack-labs/roup/pkg/ir"
)

// Handle is an opaque, wrapping-counter-generated identifier. The zero
// value is reserved and never issued.
type Handle uint64

// Status reports the outcome of a handle lookup.
type Status int32

const (
	// OK means the handle resolved to a live value.
	OK Status = iota
	// NotFound means the handle was never issued, or was already freed.
	NotFound
)

// Registry is the process-wide handle table for one kind of owned value
// (parsed directives, iterators, or strings). Operations are O(1) and safe
// for concurrent use from multiple threads; handles are generated by a
// wrapping counter.
type Registry struct {
	mu      sync.Mutex
	next    Handle
	entries map[Handle]any
}

// NewRegistry constructs an empty handle registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[Handle]any)}
}

// Insert stores value under a freshly minted handle and returns it.
func (r *Registry) Insert(value any) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.next++
	for {
		if _, exists := r.entries[r.next]; r.next != 0 && !exists {
			break
		}
		r.next++
	}
	h := r.next
	r.entries[h] = value
	return h
}

// Get resolves h to its stored value. The status is NotFound for handle 0,
// an unissued handle, or one already freed.
func (r *Registry) Get(h Handle) (any, Status) {
	if h == 0 {
		return nil, NotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.entries[h]
	if !ok {
		return nil, NotFound
	}
	return v, OK
}

// Free invalidates h immediately; a subsequent Get on it returns NotFound.
// Freeing an already-free or unissued handle is a no-op.
func (r *Registry) Free(h Handle) {
	if h == 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, h)
}

// Len reports the number of live handles. Exposed for tests and debug
// tooling, not part of the stable C-ABI surface.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// DirectiveRegistry is the handle table backing {omp,acc}_parse/_free and
// the directive_* accessors.
type DirectiveRegistry struct {
	*Registry
}

// NewDirectiveRegistry constructs an empty directive handle registry.
func NewDirectiveRegistry() *DirectiveRegistry {
	return &DirectiveRegistry{Registry: NewRegistry()}
}

// Parse inserts a parsed directive and returns its handle, the C-ABI
// entry point's "{omp,acc}_parse(input, [language]) -> handle" contract
// once the raw input has already been run through pkg/normalize,
// pkg/registry, and pkg/convert.
func (d *DirectiveRegistry) Parse(result ir.DirectiveIR) Handle {
	return d.Insert(result)
}

// Directive resolves h to the DirectiveIR it was inserted with.
func (d *DirectiveRegistry) Directive(h Handle) (ir.DirectiveIR, Status) {
	v, status := d.Get(h)
	if status != OK {
		return ir.DirectiveIR{}, status
	}
	result, ok := v.(ir.DirectiveIR)
	if !ok {
		return ir.DirectiveIR{}, NotFound
	}
	return result, OK
}

// ClauseIterator walks a directive's clauses one at a time, the owned
// object behind a "clause_iterator" handle.
type ClauseIterator struct {
	clauses []ir.ClauseData
	pos     int
}

// ClauseIteratorOf builds an iterator over d's clauses in source order.
func ClauseIteratorOf(d ir.DirectiveIR) *ClauseIterator {
	return &ClauseIterator{clauses: d.Clauses()}
}

// Next advances the iterator, writing the next clause into out and
// returning true, or returning false once exhausted.
func (it *ClauseIterator) Next(out *ir.ClauseData) bool {
	if it.pos >= len(it.clauses) {
		return false
	}
	*out = it.clauses[it.pos]
	it.pos++
	return true
}

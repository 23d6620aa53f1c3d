package registry

import (
	"strconv"
	"sync"
)

// Handle is a stable index into a Registry.
// The zero Handle refers to the first appended value.
type Handle int

// String renders the handle as "#<index>".
func (h Handle) String() string {
	return "#" + strconv.Itoa(int(h))
}

// Registry is a thread-safe, ordered, append-only arena.
// It uses sync.RWMutex for read-heavy workloads.
type Registry[V any] struct {
	mu      sync.RWMutex
	entries []V
}

// New creates a new empty registry.
func New[V any]() *Registry[V] {
	return &Registry[V]{}
}

// NewWithCapacity creates an empty registry with room for n values.
func NewWithCapacity[V any](n int) *Registry[V] {
	if n < 0 {
		n = 0
	}
	return &Registry[V]{
		entries: make([]V, 0, n),
	}
}

// Append adds a value to the end of the registry and returns its handle.
func (r *Registry[V]) Append(value V) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, value)
	return Handle(len(r.entries) - 1)
}

// Get returns the value for a handle and whether it exists.
func (r *Registry[V]) Get(h Handle) (V, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.valid(h) {
		var zero V
		return zero, false
	}
	return r.entries[h], true
}

// MustGet returns the value for a handle, panicking if not found.
func (r *Registry[V]) MustGet(h Handle) V {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.valid(h) {
		panic("registry: handle not found")
	}
	return r.entries[h]
}

// Has returns true if the handle refers to a stored value.
func (r *Registry[V]) Has(h Handle) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.valid(h)
}

// Len returns the number of values in the registry.
func (r *Registry[V]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Values returns a copy of all values in insertion order.
func (r *Registry[V]) Values() []V {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]V, len(r.entries))
	copy(out, r.entries)
	return out
}

// Handles returns the handles of all values in insertion order.
func (r *Registry[V]) Handles() []Handle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	hs := make([]Handle, len(r.entries))
	for i := range hs {
		hs[i] = Handle(i)
	}
	return hs
}

// Range iterates over all values in insertion order.
// If fn returns false, iteration stops.
//
// Range iterates over a snapshot of the registry, so it is safe
// to call Append during iteration.
func (r *Registry[V]) Range(fn func(Handle, V) bool) {
	for i, v := range r.Values() {
		if !fn(Handle(i), v) {
			return
		}
	}
}

// valid must be called with mu held.
func (r *Registry[V]) valid(h Handle) bool {
	return h >= 0 && int(h) < len(r.entries)
}

// Package registry provides a generic thread-safe, append-only arena of values
// addressed by stable handles.
//
// A Registry keeps values in insertion order. Appending never moves or
// invalidates a previously issued Handle, so a handle taken early stays valid
// for the life of the registry no matter how large it grows.
//
// # Basic Usage
//
//	r := registry.New[string]()
//	first := r.Append("one")
//	r.Append("two")
//
//	v, ok := r.Get(first)
//	if ok {
//	    fmt.Println(v) // Output: one
//	}
//
// # Ordering
//
// Values and Range both walk entries in the order they were appended:
//
//	r.Range(func(h registry.Handle, v string) bool {
//	    fmt.Println(h, v)
//	    return true // continue iteration
//	})
//
// # Thread Safety
//
// All Registry methods are safe for concurrent use. Range iterates over a
// snapshot, so appending from inside the callback does not affect the
// current iteration.
package registry

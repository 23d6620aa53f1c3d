package registry

import (
	"testing"

	"pgregory.net/rapid"
)

func TestAppendPreservesOrderProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		values := rapid.SliceOf(rapid.String()).Draw(t, "values")

		r := New[string]()
		handles := make([]Handle, len(values))
		for i, v := range values {
			handles[i] = r.Append(v)
		}

		if r.Len() != len(values) {
			t.Fatalf("Len() = %d, want %d", r.Len(), len(values))
		}
		got := r.Values()
		for i, v := range values {
			if got[i] != v {
				t.Fatalf("Values()[%d] = %q, want %q", i, got[i], v)
			}
			if h := handles[i]; r.MustGet(h) != v {
				t.Fatalf("MustGet(%s) = %q, want %q", h, r.MustGet(h), v)
			}
		}
	})
}

// Package scope implements the lexical scope chains shared by the checker and
// the interpreter. Scopes live in a single growable table and refer to their
// parent by handle; they are created and released in strict stack order.
package scope

import (
	"fmt"
	"sort"
)

// Handle addresses a scope inside a Table.
type Handle int

// NoScope is the parent handle of the root scope.
const NoScope Handle = -1

type frame[T any] struct {
	values map[string]T
	parent Handle
}

// Table is an arena of scopes mapping names to T.
type Table[T any] struct {
	frames []frame[T]
}

// NewTable returns a table holding only the root scope.
func NewTable[T any]() *Table[T] {
	t := &Table[T]{}
	t.frames = append(t.frames, frame[T]{values: make(map[string]T), parent: NoScope})
	return t
}

// Root returns the handle of the root scope.
func (t *Table[T]) Root() Handle { return 0 }

// Depth reports how many scopes are live, the root included.
func (t *Table[T]) Depth() int { return len(t.frames) }

// Top returns the most recently pushed scope.
func (t *Table[T]) Top() Handle { return Handle(len(t.frames) - 1) }

// Push creates a scope whose lookups fall back to parent. It panics if parent
// has already been popped.
func (t *Table[T]) Push(parent Handle) Handle {
	if !t.live(parent) {
		panic(fmt.Sprintf("scope: push with dead parent %d", parent))
	}
	t.frames = append(t.frames, frame[T]{values: make(map[string]T), parent: parent})
	return t.Top()
}

// Pop releases h, which must be the top-most scope.
func (t *Table[T]) Pop(h Handle) error {
	if h == t.Root() {
		return fmt.Errorf("scope: cannot pop the root scope")
	}
	if h != t.Top() {
		return fmt.Errorf("scope: pop of %d out of order (top is %d)", h, t.Top())
	}
	t.frames[h] = frame[T]{}
	t.frames = t.frames[:h]
	return nil
}

// Parent returns the parent handle of h, or NoScope for the root.
func (t *Table[T]) Parent(h Handle) Handle {
	if !t.live(h) {
		return NoScope
	}
	return t.frames[h].parent
}

// Find walks from h to the root and returns the first binding for name.
func (t *Table[T]) Find(h Handle, name string) (T, bool) {
	if owner, ok := t.FindOwningScope(h, name); ok {
		return t.frames[owner].values[name], true
	}
	var zero T
	return zero, false
}

// Contains reports whether name is bound anywhere between h and the root.
func (t *Table[T]) Contains(h Handle, name string) bool {
	_, ok := t.FindOwningScope(h, name)
	return ok
}

// FindOwningScope returns the nearest scope, starting at h, that binds name.
func (t *Table[T]) FindOwningScope(h Handle, name string) (Handle, bool) {
	for cur := h; t.live(cur); cur = t.frames[cur].parent {
		if _, ok := t.frames[cur].values[name]; ok {
			return cur, true
		}
	}
	return NoScope, false
}

// HasLocal reports whether name is bound in h itself.
func (t *Table[T]) HasLocal(h Handle, name string) bool {
	if !t.live(h) {
		return false
	}
	_, ok := t.frames[h].values[name]
	return ok
}

// Register inserts or overwrites name in h only. It panics if h has already
// been popped.
func (t *Table[T]) Register(h Handle, name string, value T) {
	if !t.live(h) {
		panic(fmt.Sprintf("scope: register %q in dead scope %d", name, h))
	}
	t.frames[h].values[name] = value
}

// Keys returns the names bound in h, sorted.
func (t *Table[T]) Keys(h Handle) []string {
	if !t.live(h) {
		return nil
	}
	keys := make([]string, 0, len(t.frames[h].values))
	for k := range t.frames[h].values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Reset drops every scope and leaves an empty root.
func (t *Table[T]) Reset() {
	for i := range t.frames {
		t.frames[i] = frame[T]{}
	}
	t.frames = t.frames[:0]
	t.frames = append(t.frames, frame[T]{values: make(map[string]T), parent: NoScope})
}

func (t *Table[T]) live(h Handle) bool {
	return h >= 0 && int(h) < len(t.frames)
}

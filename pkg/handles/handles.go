// Package handles maps the short alphabetic aliases declared on the command
// line (A=file.pdf) to input document slots. The table is built once per
// invocation and is read-only afterwards.
package handles

import (
	"fmt"
	"strings"
)

// Slot is one input document position.
type Slot struct {
	Handle string // assigned alias, explicit or defaulted
	Path   string // input file path as given
}

// UnknownHandleError reports a spec referencing a handle that was never
// declared.
type UnknownHandleError struct {
	Handle string
}

func (e *UnknownHandleError) Error() string {
	return fmt.Sprintf("no input document bound to handle %q", e.Handle)
}

// Builder accumulates input arguments in command-line order.
type Builder struct {
	slots []Slot
	used  map[string]bool
	err   error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{used: make(map[string]bool)}
}

// Add consumes one input argument, either handle=path or a bare path.
// Errors are deferred to Build so call sites can stay chained.
func (b *Builder) Add(arg string) *Builder {
	if b.err != nil {
		return b
	}
	if handle, path, ok := splitBinding(arg); ok {
		if b.used[handle] {
			b.err = fmt.Errorf("handle %q bound twice", handle)
			return b
		}
		b.used[handle] = true
		b.slots = append(b.slots, Slot{Handle: handle, Path: path})
		return b
	}
	b.slots = append(b.slots, Slot{Path: arg})
	return b
}

// Build assigns default single-letter handles to the bare positional inputs
// and returns the immutable table. The first document overall also serves as
// the implicit default for specs that omit a handle.
func (b *Builder) Build() (*Table, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.slots) == 0 {
		return nil, fmt.Errorf("no input documents given")
	}
	slots := make([]Slot, len(b.slots))
	copy(slots, b.slots)

	next := byte('A')
	for i := range slots {
		if slots[i].Handle != "" {
			continue
		}
		for next <= 'Z' && b.used[string(next)] {
			next++
		}
		if next > 'Z' {
			return nil, fmt.Errorf("too many unlabeled input documents")
		}
		slots[i].Handle = string(next)
		b.used[string(next)] = true
	}

	byHandle := make(map[string]int, len(slots))
	for i, s := range slots {
		byHandle[s.Handle] = i
	}
	return &Table{slots: slots, byHandle: byHandle}, nil
}

// splitBinding recognizes a handle=path argument: one or two letters, an
// equals sign, a non-empty path.
func splitBinding(arg string) (handle, path string, ok bool) {
	eq := strings.IndexByte(arg, '=')
	if eq < 1 || eq > 2 || eq == len(arg)-1 {
		return "", "", false
	}
	h := arg[:eq]
	for i := 0; i < len(h); i++ {
		c := h[i]
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z') {
			return "", "", false
		}
	}
	return h, arg[eq+1:], true
}

// Table is the immutable handle lookup built from the command line.
type Table struct {
	slots    []Slot
	byHandle map[string]int
}

// Len returns the number of input document slots.
func (t *Table) Len() int { return len(t.slots) }

// Slots returns the input slots in command-line order.
func (t *Table) Slots() []Slot { return t.slots }

// Lookup resolves a handle to its slot index. The empty handle resolves to
// the first document.
func (t *Table) Lookup(handle string) (int, error) {
	if handle == "" {
		return 0, nil
	}
	i, ok := t.byHandle[handle]
	if !ok {
		return 0, &UnknownHandleError{Handle: handle}
	}
	return i, nil
}

package feature

import "iter"

// Table is an ordered, read-only sequence of descriptors. The zero value is an
// empty table.
type Table struct {
	entries []Descriptor
}

// NewTable copies descs into a new Table so later mutations of the caller's
// slice do not leak into rendering.
func NewTable(descs ...Descriptor) Table {
	if len(descs) == 0 {
		return Table{}
	}
	entries := make([]Descriptor, len(descs))
	copy(entries, descs)
	return Table{entries: entries}
}

// Len reports the number of descriptors.
func (t Table) Len() int {
	return len(t.entries)
}

// At returns the descriptor at position i.
func (t Table) At(i int) (Descriptor, bool) {
	if i < 0 || i >= len(t.entries) {
		return Descriptor{}, false
	}
	return t.entries[i], true
}

// All iterates descriptors in table order.
func (t Table) All() iter.Seq2[int, Descriptor] {
	return func(yield func(int, Descriptor) bool) {
		for i, desc := range t.entries {
			if !yield(i, desc) {
				return
			}
		}
	}
}

// Descriptors returns a copy of the underlying entries.
func (t Table) Descriptors() []Descriptor {
	if len(t.entries) == 0 {
		return nil
	}
	out := make([]Descriptor, len(t.entries))
	copy(out, t.entries)
	return out
}

package atom

import "fmt"

// Field describes one fixed-width field of an atom.
type Field struct {
	Name  string
	Codec Codec
	Width int
}

// Slot is a field resolved to its byte offset within the atom.
type Slot struct {
	Field
	Offset int
}

// End returns the offset just past the field.
func (s Slot) End() int {
	return s.Offset + s.Width
}

// Layout is an immutable, ordered field table.
type Layout struct {
	slots []Slot
	index map[string]int
	size  int
}

// NewLayout packs fields contiguously in declaration order.
// It panics on an empty or duplicate name, a non-positive width, or a width
// that disagrees with a scalar codec; layouts are static tables and these
// are programming errors.
func NewLayout(fields ...Field) *Layout {
	l := &Layout{
		slots: make([]Slot, 0, len(fields)),
		index: make(map[string]int, len(fields)),
	}
	for _, f := range fields {
		if f.Name == "" {
			panic("atom: field without a name")
		}
		if _, dup := l.index[f.Name]; dup {
			panic(fmt.Sprintf("atom: duplicate field %q", f.Name))
		}
		if f.Width <= 0 {
			panic(fmt.Sprintf("atom: field %q has width %d", f.Name, f.Width))
		}
		if w := f.Codec.Width(); w != 0 && w != f.Width {
			panic(fmt.Sprintf("atom: field %q is %s but %d bytes wide", f.Name, f.Codec, f.Width))
		}
		l.index[f.Name] = len(l.slots)
		l.slots = append(l.slots, Slot{Field: f, Offset: l.size})
		l.size += f.Width
	}
	return l
}

// Size returns the sum of all field widths.
func (l *Layout) Size() int {
	return l.size
}

// Len returns the number of fields.
func (l *Layout) Len() int {
	return len(l.slots)
}

// Slot returns the i-th field in declaration order.
func (l *Layout) Slot(i int) Slot {
	return l.slots[i]
}

// Slots returns a copy of all fields in declaration order.
func (l *Layout) Slots() []Slot {
	out := make([]Slot, len(l.slots))
	copy(out, l.slots)
	return out
}

// Lookup returns the index of the named field.
func (l *Layout) Lookup(name string) (int, error) {
	i, ok := l.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return i, nil
}

// Resolve returns the offset, codec and width of the named field.
func (l *Layout) Resolve(name string) (Slot, error) {
	i, err := l.Lookup(name)
	if err != nil {
		return Slot{}, err
	}
	return l.slots[i], nil
}

package atom

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Record is an atom's bytes interpreted through a Layout.
// The record owns its buffer; nothing else aliases it.
type Record struct {
	layout *Layout
	buf    []byte
}

// NewRecord copies b into a new record. b may be longer than the layout
// (trailing bytes are preserved) but not shorter.
func NewRecord(layout *Layout, b []byte) (*Record, error) {
	if len(b) < layout.Size() {
		return nil, fmt.Errorf("%w: %d bytes, layout needs %d", ErrShortRecord, len(b), layout.Size())
	}
	buf := make([]byte, len(b))
	copy(buf, b)
	return &Record{layout: layout, buf: buf}, nil
}

// Layout returns the record's field table.
func (r *Record) Layout() *Layout {
	return r.layout
}

// Len returns the record length in bytes.
func (r *Record) Len() int {
	return len(r.buf)
}

// Bytes returns a copy of the record's current bytes.
func (r *Record) Bytes() []byte {
	out := make([]byte, len(r.buf))
	copy(out, r.buf)
	return out
}

// Get decodes the i-th field.
func (r *Record) Get(i int) Value {
	slot := r.layout.Slot(i)
	return slot.Codec.decode(r.buf[slot.Offset:slot.End()])
}

// Set encodes v into the i-th field. The record is unchanged on error.
func (r *Record) Set(i int, v Value) error {
	slot := r.layout.Slot(i)
	if err := slot.Codec.encode(r.buf[slot.Offset:slot.End()], v); err != nil {
		return fmt.Errorf("setting %s: %w", slot.Name, err)
	}
	return nil
}

// span returns the bytes of the i-th field, panicking if its codec is not c.
// Calling a typed accessor on the wrong field is a programming error, in the
// same way reflect.Value.Int panics on a string.
func (r *Record) span(i int, c Codec) []byte {
	slot := r.layout.Slot(i)
	if slot.Codec != c {
		panic(fmt.Sprintf("atom: field %s is %s, not %s", slot.Name, slot.Codec, c))
	}
	return r.buf[slot.Offset:slot.End()]
}

// Uint8 returns the i-th field, which must be CodecUint8.
func (r *Record) Uint8(i int) uint8 {
	return r.span(i, CodecUint8)[0]
}

// SetUint8 sets the i-th field, which must be CodecUint8.
func (r *Record) SetUint8(i int, v uint8) {
	r.span(i, CodecUint8)[0] = v
}

// Uint32 returns the i-th field, which must be CodecUint32.
func (r *Record) Uint32(i int) uint32 {
	return binary.BigEndian.Uint32(r.span(i, CodecUint32))
}

// SetUint32 sets the i-th field, which must be CodecUint32.
func (r *Record) SetUint32(i int, v uint32) {
	binary.BigEndian.PutUint32(r.span(i, CodecUint32), v)
}

// Fixed8 returns the i-th field, which must be CodecFixed8.
func (r *Record) Fixed8(i int) Fixed8 {
	return Fixed8(binary.BigEndian.Uint16(r.span(i, CodecFixed8)))
}

// SetFixed8 sets the i-th field, which must be CodecFixed8.
func (r *Record) SetFixed8(i int, v Fixed8) {
	binary.BigEndian.PutUint16(r.span(i, CodecFixed8), uint16(v))
}

// Fixed16 returns the i-th field, which must be CodecFixed16.
func (r *Record) Fixed16(i int) Fixed16 {
	return Fixed16(binary.BigEndian.Uint32(r.span(i, CodecFixed16)))
}

// SetFixed16 sets the i-th field, which must be CodecFixed16.
func (r *Record) SetFixed16(i int, v Fixed16) {
	binary.BigEndian.PutUint32(r.span(i, CodecFixed16), uint32(v))
}

// Float32 returns the i-th field, which must be CodecFloat32.
func (r *Record) Float32(i int) float32 {
	return math.Float32frombits(binary.BigEndian.Uint32(r.span(i, CodecFloat32)))
}

// SetFloat32 sets the i-th field, which must be CodecFloat32.
func (r *Record) SetFloat32(i int, v float32) {
	binary.BigEndian.PutUint32(r.span(i, CodecFloat32), math.Float32bits(v))
}

// Raw returns a copy of the i-th field, which must be CodecRaw.
func (r *Record) Raw(i int) []byte {
	b := r.span(i, CodecRaw)
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// SetRaw copies v into the i-th field, which must be CodecRaw.
// Shorter values are zero-padded; longer values fail with ErrFieldOverflow.
func (r *Record) SetRaw(i int, v []byte) error {
	if err := CodecRaw.encode(r.span(i, CodecRaw), v); err != nil {
		return fmt.Errorf("setting %s: %w", r.layout.Slot(i).Name, err)
	}
	return nil
}

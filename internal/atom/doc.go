// Package atom implements byte-offset access to fixed-layout QuickTime atoms.
//
// An atom is a self-describing record: a 4-byte big-endian size, a 4-byte
// type tag, then a type-specific payload. This package does not walk the
// atom tree. It finds one atom by scanning a byte window for its tag and
// exposes the atom's fields through a static [Layout].
//
// # Layouts
//
// A [Layout] is an ordered list of [Field] descriptors. Fields are packed
// without padding, so each field's offset is the sum of the widths before it.
// Layouts are built once, usually as package-level variables, and never
// change afterwards:
//
//	var movieHeader = atom.NewLayout(
//	    atom.Field{Name: "size", Codec: atom.CodecUint32, Width: 4},
//	    atom.Field{Name: "type", Codec: atom.CodecRaw, Width: 4},
//	    ...
//	)
//
// # Records
//
// [Extract] locates a tag, reads the declared size and copies exactly that many
// bytes into a [Record]. The record owns its bytes; edits through [Record.Set]
// or the typed setters happen in place and never change the record length.
// [Record.Bytes] returns a copy suitable for writing back at the offset the
// atom was found at.
//
// All numeric codecs are big-endian.
//
// # Errors
//
//   - [ErrNotFound]: the tag does not occur in the window
//   - [ErrTruncated]: the declared size runs past the end of the window
//   - [ErrShortRecord]: the record is shorter than its layout
//   - [ErrUnknownField]: a field name is not part of the layout
//   - [ErrCodecMismatch]: a value's type does not match the field codec
//   - [ErrFieldOverflow]: a raw value is wider than its field
package atom

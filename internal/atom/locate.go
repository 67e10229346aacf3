package atom

import (
	"bytes"
	"fmt"

	binpkg "github.com/robert-malhotra/go-mvhd/internal/binary"
)

// TagLen is the length of an atom type tag.
const TagLen = 4

// sizeLen is the length of the size field that precedes the tag.
const sizeLen = 4

// Locate returns the offset of the first atom with the given tag in buf.
// The offset points at the atom's size field, 4 bytes before the tag.
// A tag match in the first 4 bytes has no room for a size field, so it is
// skipped and the search continues to the next match.
func Locate(buf []byte, tag string) (int, error) {
	if len(tag) != TagLen {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTag, tag)
	}
	if len(buf) < sizeLen+TagLen {
		return 0, fmt.Errorf("%w: %q in %d bytes", ErrNotFound, tag, len(buf))
	}
	i := bytes.Index(buf[sizeLen:], []byte(tag))
	if i < 0 {
		return 0, fmt.Errorf("%w: %q in %d bytes", ErrNotFound, tag, len(buf))
	}
	return i, nil
}

// Extract locates the tag in buf and copies the atom it heads into a new Record.
func Extract(buf []byte, tag string, layout *Layout) (*Record, error) {
	offset, err := Locate(buf, tag)
	if err != nil {
		return nil, err
	}

	r := binpkg.NewReader(bytes.NewReader(buf), binpkg.DefaultConfig()).At(int64(offset))
	size, err := r.ReadUint32()
	if err != nil {
		return nil, fmt.Errorf("reading %q size: %w", tag, err)
	}

	if uint64(offset)+uint64(size) > uint64(len(buf)) {
		return nil, fmt.Errorf("%w: %q at %d declares %d bytes, %d available",
			ErrTruncated, tag, offset, size, len(buf)-offset)
	}

	rec, err := NewRecord(layout, buf[offset:offset+int(size)])
	if err != nil {
		return nil, fmt.Errorf("%q at %d: %w", tag, offset, err)
	}
	return rec, nil
}

package movie

import (
	"fmt"
	"os"

	binpkg "github.com/robert-malhotra/go-mvhd/internal/binary"
	"github.com/robert-malhotra/go-mvhd/internal/mvhd"
)

// File is a QuickTime file with its movie header loaded.
type File struct {
	path     string
	file     *os.File
	header   *mvhd.Header
	loc      Location
	writable bool
	closed   bool
}

// Open opens a QuickTime file for reading and loads its movie header.
func Open(path string, opts ...Option) (*File, error) {
	return open(path, os.O_RDONLY, opts)
}

// OpenReadWrite opens a QuickTime file so that header edits can be flushed
// back with Flush.
func OpenReadWrite(path string, opts ...Option) (*File, error) {
	return open(path, os.O_RDWR, opts)
}

func open(path string, flag int, opts []Option) (*File, error) {
	f, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat file: %w", err)
	}

	header, loc, err := find(f, info.Size(), applyOptions(opts))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("reading movie header: %w", err)
	}

	return &File{
		path:     path,
		file:     f,
		header:   header,
		loc:      loc,
		writable: flag&os.O_RDWR != 0,
	}, nil
}

// Header returns the movie header. Edits are written by Flush.
func (f *File) Header() *mvhd.Header {
	return f.header
}

// Offset returns the file offset of the movie header.
func (f *File) Offset() int64 {
	return f.loc.Offset
}

// Window returns the byte range the header was read from.
func (f *File) Window() Window {
	return f.loc.Window
}

// Path returns the file path.
func (f *File) Path() string {
	return f.path
}

// IsWritable reports whether Flush can write to the file.
func (f *File) IsWritable() bool {
	return f.writable
}

// Flush writes the header back at the offset it was read from.
func (f *File) Flush() error {
	if f.closed {
		return ErrClosed
	}
	if !f.writable {
		return ErrReadOnly
	}
	w := binpkg.NewWriter(f.file).At(f.loc.Offset)
	if err := w.WriteBytes(f.header.Bytes()); err != nil {
		return fmt.Errorf("writing movie header: %w", err)
	}
	return nil
}

// Close closes the file without writing pending header edits.
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	return f.file.Close()
}

package movie

import (
	"errors"
	"fmt"
	"io"

	"github.com/robert-malhotra/go-mvhd/internal/atom"
	binpkg "github.com/robert-malhotra/go-mvhd/internal/binary"
	"github.com/robert-malhotra/go-mvhd/internal/mvhd"
)

// Location records where a movie header was found.
type Location struct {
	// Offset is the file offset of the header's size field.
	Offset int64
	// Window is the range the header was extracted from.
	Window Window
}

// Find searches r, which holds size bytes, for a movie header.
// The head window is searched first and the tail window second. A header
// that runs past the end of its window is re-read at its declared size.
func Find(r io.ReaderAt, size int64, opts ...Option) (*mvhd.Header, Location, error) {
	return find(r, size, applyOptions(opts))
}

func find(r io.ReaderAt, size int64, o *options) (*mvhd.Header, Location, error) {
	head := HeadWindow(size, o.headWindow)
	windows := []Window{head}
	if head.End() < size {
		windows = append(windows, TailWindow(size, o.tailWindow))
	}

	for i, w := range windows {
		buf, err := w.read(r)
		if err != nil {
			return nil, Location{}, err
		}

		rel, err := mvhd.Locate(buf)
		if errors.Is(err, atom.ErrNotFound) {
			if i+1 < len(windows) {
				o.logger.Printf("movie: no %s in %s, trying %s", mvhd.Tag, w, windows[i+1])
			}
			continue
		}
		if err != nil {
			return nil, Location{}, err
		}

		loc := Location{Offset: w.Abs(rel), Window: w}
		h, err := mvhd.Extract(buf[rel:])
		if errors.Is(err, atom.ErrTruncated) {
			o.logger.Printf("movie: %s at %d runs past %s, re-reading", mvhd.Tag, loc.Offset, w)
			h, loc.Window, err = readAt(r, size, loc.Offset)
		}
		if err != nil {
			return nil, Location{}, fmt.Errorf("%s at %d: %w", mvhd.Tag, loc.Offset, err)
		}
		return h, loc, nil
	}

	return nil, Location{}, fmt.Errorf("%w in %d bytes", ErrNotFound, size)
}

// readAt extracts the header at offset using its declared size as the window.
func readAt(r io.ReaderAt, size, offset int64) (*mvhd.Header, Window, error) {
	declared, err := binpkg.NewReader(r, binpkg.DefaultConfig()).At(offset).ReadUint32()
	if err != nil {
		return nil, Window{}, fmt.Errorf("reading size: %w", err)
	}
	if offset+int64(declared) > size {
		return nil, Window{}, fmt.Errorf("%w: declares %d bytes, file ends after %d",
			atom.ErrTruncated, declared, size-offset)
	}

	w := Window{Offset: offset, Size: int(declared)}
	buf, err := w.read(r)
	if err != nil {
		return nil, Window{}, err
	}
	h, err := mvhd.Extract(buf)
	if err != nil {
		return nil, Window{}, err
	}
	return h, w, nil
}

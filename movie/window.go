package movie

import (
	"fmt"
	"io"

	binpkg "github.com/robert-malhotra/go-mvhd/internal/binary"
)

// Window is a byte range of a file that is searched as one buffer.
// Offsets found inside the buffer are relative to Offset.
type Window struct {
	Offset int64
	Size   int
}

// HeadWindow returns the first n bytes of a file of fileSize bytes.
func HeadWindow(fileSize int64, n int) Window {
	if int64(n) > fileSize {
		n = int(fileSize)
	}
	return Window{Offset: 0, Size: n}
}

// TailWindow returns the last n bytes of a file of fileSize bytes.
func TailWindow(fileSize int64, n int) Window {
	if int64(n) > fileSize {
		return Window{Offset: 0, Size: int(fileSize)}
	}
	return Window{Offset: fileSize - int64(n), Size: n}
}

// End returns the file offset just past the window.
func (w Window) End() int64 {
	return w.Offset + int64(w.Size)
}

// Abs converts an offset within the window to a file offset.
func (w Window) Abs(rel int) int64 {
	return w.Offset + int64(rel)
}

func (w Window) String() string {
	return fmt.Sprintf("[%d, %d)", w.Offset, w.End())
}

// read returns the window's bytes from r.
func (w Window) read(r io.ReaderAt) ([]byte, error) {
	buf, err := binpkg.NewReader(r, binpkg.DefaultConfig()).At(w.Offset).ReadBytes(w.Size)
	if err != nil {
		return nil, fmt.Errorf("reading window %s: %w", w, err)
	}
	return buf, nil
}

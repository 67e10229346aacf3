package mvhd

import (
	"bytes"
	"fmt"
	"math"
	"time"

	"github.com/robert-malhotra/go-mvhd/internal/atom"
	binpkg "github.com/robert-malhotra/go-mvhd/internal/binary"
)

// epoch is the QuickTime time origin.
var epoch = time.Date(1904, time.January, 1, 0, 0, 0, 0, time.UTC)

// identityMatrix is the unity transform {1,0,0, 0,1,0, 0,0,1}; the last
// column is 2.30 fixed-point, the rest 16.16.
var identityMatrix = []byte{
	0x00, 0x01, 0x00, 0x00, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0x00, 0x01, 0x00, 0x00, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0x40, 0x00, 0x00, 0x00,
}

// Header is an extracted movie header.
type Header struct {
	rec *atom.Record
}

// Locate returns the offset of the first movie header in buf.
func Locate(buf []byte) (int, error) {
	return atom.Locate(buf, Tag)
}

// Extract copies the first movie header in buf into a new Header.
func Extract(buf []byte) (*Header, error) {
	rec, err := atom.Extract(buf, Tag, Layout)
	if err != nil {
		return nil, err
	}
	return fromRecord(rec)
}

// Parse wraps b, which must start with a movie header's size field.
// b is copied.
func Parse(b []byte) (*Header, error) {
	rec, err := atom.NewRecord(Layout, b)
	if err != nil {
		return nil, err
	}
	if tag := string(rec.Raw(int(FieldType))); tag != Tag {
		return nil, fmt.Errorf("%w: type is %q", atom.ErrNotFound, tag)
	}
	return fromRecord(rec)
}

func fromRecord(rec *atom.Record) (*Header, error) {
	if v := rec.Uint8(int(FieldVersion)); v != 0 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, v)
	}
	return &Header{rec: rec}, nil
}

// NewHeader returns a version 0 header with QuickTime defaults: normal rate,
// full volume, identity matrix and next track ID 1. Times and the time scale
// are zero.
func NewHeader() *Header {
	buf := make([]byte, Size)
	rec, err := atom.NewRecord(Layout, buf)
	if err != nil {
		panic(err)
	}
	h := &Header{rec: rec}
	rec.SetUint32(int(FieldSize), Size)
	if err := rec.SetRaw(int(FieldType), []byte(Tag)); err != nil {
		panic(err)
	}
	rec.SetFixed16(int(FieldPreferredRate), 0x00010000)
	rec.SetFixed8(int(FieldPreferredVolume), 0x0100)
	if err := rec.SetRaw(int(FieldMatrix), identityMatrix); err != nil {
		panic(err)
	}
	rec.SetUint32(int(FieldNextTrackID), 1)
	return h
}

// Get decodes any field.
func (h *Header) Get(f Field) atom.Value {
	return h.rec.Get(int(f))
}

// Set encodes v into f. The header is unchanged on error.
func (h *Header) Set(f Field, v atom.Value) error {
	return h.rec.Set(int(f), v)
}

// Uint32 returns a 32-bit integer field. It panics if f is not one.
func (h *Header) Uint32(f Field) uint32 {
	return h.rec.Uint32(int(f))
}

// SetUint32 sets a 32-bit integer field. It panics if f is not one.
func (h *Header) SetUint32(f Field, v uint32) {
	h.rec.SetUint32(int(f), v)
}

// Bytes returns a copy of the header for writing back.
func (h *Header) Bytes() []byte {
	return h.rec.Bytes()
}

// Len returns the header length in bytes.
func (h *Header) Len() int {
	return h.rec.Len()
}

// Version returns the header version.
func (h *Header) Version() uint8 {
	return h.rec.Uint8(int(FieldVersion))
}

// TimeScale returns the number of ticks per second.
func (h *Header) TimeScale() uint32 {
	return h.Uint32(FieldTimeScale)
}

// SetTimeScale sets the number of ticks per second.
func (h *Header) SetTimeScale(v uint32) {
	h.SetUint32(FieldTimeScale, v)
}

// Duration returns the movie duration in ticks.
func (h *Header) Duration() uint32 {
	return h.Uint32(FieldDuration)
}

// SetDuration sets the movie duration in ticks.
func (h *Header) SetDuration(v uint32) {
	h.SetUint32(FieldDuration, v)
}

// DurationSeconds returns the duration divided by the time scale.
func (h *Header) DurationSeconds() (float64, error) {
	scale := h.TimeScale()
	if scale == 0 {
		return 0, ErrZeroTimeScale
	}
	return float64(h.Duration()) / float64(scale), nil
}

// SetDurationSeconds converts seconds to ticks at the current time scale,
// rounding to the nearest tick.
func (h *Header) SetDurationSeconds(seconds float64) error {
	scale := h.TimeScale()
	if scale == 0 {
		return ErrZeroTimeScale
	}
	ticks := math.Round(seconds * float64(scale))
	if math.IsNaN(ticks) || ticks < 0 || ticks > math.MaxUint32 {
		return fmt.Errorf("%w: %gs at %d ticks/s", ErrDurationRange, seconds, scale)
	}
	h.SetDuration(uint32(ticks))
	return nil
}

// CreationTime returns the creation time.
func (h *Header) CreationTime() time.Time {
	return fromQuickTime(h.Uint32(FieldCreationTime))
}

// SetCreationTime sets the creation time, truncated to the second.
func (h *Header) SetCreationTime(t time.Time) error {
	return h.setTime(FieldCreationTime, t)
}

// ModificationTime returns the modification time.
func (h *Header) ModificationTime() time.Time {
	return fromQuickTime(h.Uint32(FieldModificationTime))
}

// SetModificationTime sets the modification time, truncated to the second.
func (h *Header) SetModificationTime(t time.Time) error {
	return h.setTime(FieldModificationTime, t)
}

func (h *Header) setTime(f Field, t time.Time) error {
	secs := t.Unix() - epoch.Unix()
	if secs < 0 || secs > math.MaxUint32 {
		return fmt.Errorf("%w: %s", ErrTimeRange, t.UTC().Format(time.RFC3339))
	}
	h.SetUint32(f, uint32(secs))
	return nil
}

func fromQuickTime(secs uint32) time.Time {
	return epoch.Add(time.Duration(secs) * time.Second)
}

// Rate returns the preferred playback rate; 1.0 is normal speed.
func (h *Header) Rate() float64 {
	return h.rec.Fixed16(int(FieldPreferredRate)).Float64()
}

// SetRate sets the preferred playback rate.
func (h *Header) SetRate(rate float64) error {
	x, err := atom.Fixed16FromFloat(rate)
	if err != nil {
		return err
	}
	h.rec.SetFixed16(int(FieldPreferredRate), x)
	return nil
}

// Volume returns the preferred volume; 1.0 is full volume.
func (h *Header) Volume() float64 {
	return h.rec.Fixed8(int(FieldPreferredVolume)).Float64()
}

// SetVolume sets the preferred volume.
func (h *Header) SetVolume(volume float64) error {
	x, err := atom.Fixed8FromFloat(volume)
	if err != nil {
		return err
	}
	h.rec.SetFixed8(int(FieldPreferredVolume), x)
	return nil
}

// Matrix decodes the transform matrix {a, b, u, c, d, v, x, y, w}.
// u, v and w are 2.30 fixed-point; the others are 16.16.
func (h *Header) Matrix() [9]float64 {
	r := binpkg.NewReader(bytes.NewReader(h.rec.Raw(int(FieldMatrix))), binpkg.DefaultConfig())
	var m [9]float64
	for i := range m {
		// The record always holds the full 36-byte span.
		u, err := r.ReadUint32()
		if err != nil {
			panic(fmt.Sprintf("mvhd: reading matrix entry %d: %v", i, err))
		}
		v := int32(u)
		if i%3 == 2 {
			m[i] = float64(v) / (1 << 30)
		} else {
			m[i] = float64(v) / (1 << 16)
		}
	}
	return m
}

package mvhd

import (
	"errors"
	"fmt"

	"github.com/robert-malhotra/go-mvhd/internal/atom"
)

// Tag is the movie header atom type.
const Tag = "mvhd"

// Size is the length of a version 0 movie header.
const Size = 108

// Errors
var (
	ErrUnsupportedVersion = errors.New("unsupported movie header version")
	ErrZeroTimeScale      = errors.New("movie header time scale is zero")
	ErrTimeRange          = errors.New("time outside movie header range")
	ErrDurationRange      = errors.New("duration outside movie header range")
)

// Field identifies a movie header field.
type Field int

// Movie header fields in layout order.
const (
	FieldSize Field = iota
	FieldType
	FieldVersion
	FieldFlags
	FieldCreationTime
	FieldModificationTime
	FieldTimeScale
	FieldDuration
	FieldPreferredRate
	FieldPreferredVolume
	FieldReserved
	FieldMatrix
	FieldPreviewTime
	FieldPreviewDuration
	FieldPosterTime
	FieldSelectionTime
	FieldSelectionDuration
	FieldCurrentTime
	FieldNextTrackID
	numFields
)

// Layout is the version 0 movie header field table, indexed by Field.
var Layout = atom.NewLayout(
	atom.Field{Name: "size", Codec: atom.CodecUint32, Width: 4},
	atom.Field{Name: "type", Codec: atom.CodecRaw, Width: 4},
	atom.Field{Name: "version", Codec: atom.CodecUint8, Width: 1},
	atom.Field{Name: "flags", Codec: atom.CodecRaw, Width: 3},
	atom.Field{Name: "creationTime", Codec: atom.CodecUint32, Width: 4},
	atom.Field{Name: "modificationTime", Codec: atom.CodecUint32, Width: 4},
	atom.Field{Name: "timeScale", Codec: atom.CodecUint32, Width: 4},
	atom.Field{Name: "duration", Codec: atom.CodecUint32, Width: 4},
	atom.Field{Name: "preferredRate", Codec: atom.CodecFixed16, Width: 4},
	atom.Field{Name: "preferredVolume", Codec: atom.CodecFixed8, Width: 2},
	atom.Field{Name: "reserved", Codec: atom.CodecRaw, Width: 10},
	atom.Field{Name: "matrix", Codec: atom.CodecRaw, Width: 36},
	atom.Field{Name: "previewTime", Codec: atom.CodecUint32, Width: 4},
	atom.Field{Name: "previewDuration", Codec: atom.CodecUint32, Width: 4},
	atom.Field{Name: "posterTime", Codec: atom.CodecUint32, Width: 4},
	atom.Field{Name: "selectionTime", Codec: atom.CodecUint32, Width: 4},
	atom.Field{Name: "selectionDuration", Codec: atom.CodecUint32, Width: 4},
	atom.Field{Name: "currentTime", Codec: atom.CodecUint32, Width: 4},
	atom.Field{Name: "nextTrackID", Codec: atom.CodecUint32, Width: 4},
)

func init() {
	if Layout.Len() != int(numFields) || Layout.Size() != Size {
		panic(fmt.Sprintf("mvhd: layout has %d fields in %d bytes", Layout.Len(), Layout.Size()))
	}
}

// Fields returns every field in layout order.
func Fields() []Field {
	out := make([]Field, numFields)
	for i := range out {
		out[i] = Field(i)
	}
	return out
}

// ParseField returns the field with the given layout name.
func ParseField(name string) (Field, error) {
	i, err := Layout.Lookup(name)
	if err != nil {
		return 0, err
	}
	return Field(i), nil
}

// Slot returns the field's offset, codec and width.
func (f Field) Slot() atom.Slot {
	return Layout.Slot(int(f))
}

func (f Field) String() string {
	if f < 0 || f >= numFields {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return f.Slot().Name
}

package atom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleLayout exercises every codec.
var sampleLayout = NewLayout(
	Field{Name: "size", Codec: CodecUint32, Width: 4},
	Field{Name: "type", Codec: CodecRaw, Width: 4},
	Field{Name: "version", Codec: CodecUint8, Width: 1},
	Field{Name: "flags", Codec: CodecRaw, Width: 3},
	Field{Name: "rate", Codec: CodecFixed16, Width: 4},
	Field{Name: "volume", Codec: CodecFixed8, Width: 2},
	Field{Name: "gain", Codec: CodecFloat32, Width: 4},
	Field{Name: "count", Codec: CodecUint32, Width: 4},
)

const (
	sampleSize = iota
	sampleType
	sampleVersion
	sampleFlags
	sampleRate
	sampleVolume
	sampleGain
	sampleCount
)

func TestLayoutOffsets(t *testing.T) {
	expected := []struct {
		name   string
		offset int
		width  int
		codec  Codec
	}{
		{"size", 0, 4, CodecUint32},
		{"type", 4, 4, CodecRaw},
		{"version", 8, 1, CodecUint8},
		{"flags", 9, 3, CodecRaw},
		{"rate", 12, 4, CodecFixed16},
		{"volume", 16, 2, CodecFixed8},
		{"gain", 18, 4, CodecFloat32},
		{"count", 22, 4, CodecUint32},
	}

	require.Equal(t, len(expected), sampleLayout.Len())
	assert.Equal(t, 26, sampleLayout.Size())

	for i, want := range expected {
		t.Run(want.name, func(t *testing.T) {
			slot, err := sampleLayout.Resolve(want.name)
			require.NoError(t, err)
			assert.Equal(t, want.offset, slot.Offset)
			assert.Equal(t, want.width, slot.Width)
			assert.Equal(t, want.codec, slot.Codec)
			assert.Equal(t, want.offset+want.width, slot.End())
			assert.Equal(t, slot, sampleLayout.Slot(i))
		})
	}
}

func TestLayoutResolveIsStable(t *testing.T) {
	first, err := sampleLayout.Resolve("gain")
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := sampleLayout.Resolve("gain")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestLayoutUnknownField(t *testing.T) {
	_, err := sampleLayout.Lookup("bogus")
	assert.ErrorIs(t, err, ErrUnknownField)

	_, err = sampleLayout.Resolve("")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestLayoutSlotsIsCopy(t *testing.T) {
	slots := sampleLayout.Slots()
	slots[0].Name = "changed"
	assert.Equal(t, "size", sampleLayout.Slot(0).Name)
}

func TestNewLayoutPanics(t *testing.T) {
	tests := []struct {
		name   string
		fields []Field
	}{
		{"empty name", []Field{{Codec: CodecRaw, Width: 1}}},
		{"duplicate", []Field{{"a", CodecRaw, 1}, {"a", CodecRaw, 1}}},
		{"zero width", []Field{{"a", CodecRaw, 0}}},
		{"codec width", []Field{{"a", CodecUint32, 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Panics(t, func() { NewLayout(tt.fields...) })
		})
	}
}

func TestCodecString(t *testing.T) {
	assert.Equal(t, "uint32", CodecUint32.String())
	assert.Equal(t, "fixed16.16", CodecFixed16.String())
	assert.Equal(t, "codec(42)", Codec(42).String())
}

package atom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSampleRecord(t *testing.T) *Record {
	t.Helper()
	buf := make([]byte, sampleLayout.Size())
	for i := range buf {
		buf[i] = byte(0xA0 + i)
	}
	rec, err := NewRecord(sampleLayout, buf)
	require.NoError(t, err)
	return rec
}

// unchangedOutside asserts that before and after differ only within slot i.
func unchangedOutside(t *testing.T, before, after []byte, slot Slot) {
	t.Helper()
	require.Equal(t, len(before), len(after))
	assert.Equal(t, before[:slot.Offset], after[:slot.Offset], "bytes before %s changed", slot.Name)
	assert.Equal(t, before[slot.End():], after[slot.End():], "bytes after %s changed", slot.Name)
}

func TestRecordSetGetRoundTrip(t *testing.T) {
	tests := []struct {
		field int
		value Value
	}{
		{sampleSize, uint32(26)},
		{sampleType, []byte("mvhd")},
		{sampleVersion, uint8(1)},
		{sampleFlags, []byte{0x00, 0x00, 0x01}},
		{sampleRate, Fixed16(0x00018000)},
		{sampleVolume, Fixed8(-0x0100)},
		{sampleGain, float32(0.25)},
		{sampleCount, uint32(0xFFFFFFFF)},
	}

	for _, tt := range tests {
		slot := sampleLayout.Slot(tt.field)
		t.Run(slot.Name, func(t *testing.T) {
			rec := newSampleRecord(t)
			before := rec.Bytes()

			require.NoError(t, rec.Set(tt.field, tt.value))
			assert.Equal(t, tt.value, rec.Get(tt.field))
			unchangedOutside(t, before, rec.Bytes(), slot)
			assert.Equal(t, len(before), rec.Len())
		})
	}
}

func TestRecordTypedAccessors(t *testing.T) {
	rec := newSampleRecord(t)

	rec.SetUint32(sampleCount, 9000)
	assert.Equal(t, uint32(9000), rec.Uint32(sampleCount))
	assert.Equal(t, []byte{0x00, 0x00, 0x23, 0x28}, rec.Bytes()[22:26])

	rec.SetUint8(sampleVersion, 7)
	assert.Equal(t, uint8(7), rec.Uint8(sampleVersion))

	rec.SetFixed16(sampleRate, 0x00010000)
	assert.Equal(t, 1.0, rec.Fixed16(sampleRate).Float64())
	assert.Equal(t, []byte{0x00, 0x01, 0x00, 0x00}, rec.Bytes()[12:16])

	rec.SetFixed8(sampleVolume, 0x0100)
	assert.Equal(t, Fixed8(0x0100), rec.Fixed8(sampleVolume))
	assert.Equal(t, []byte{0x01, 0x00}, rec.Bytes()[16:18])

	rec.SetFloat32(sampleGain, 1.5)
	assert.Equal(t, float32(1.5), rec.Float32(sampleGain))
	assert.Equal(t, []byte{0x3F, 0xC0, 0x00, 0x00}, rec.Bytes()[18:22])

	require.NoError(t, rec.SetRaw(sampleType, []byte("moov")))
	assert.Equal(t, []byte("moov"), rec.Raw(sampleType))
}

func TestRecordTypedAccessorWrongCodecPanics(t *testing.T) {
	rec := newSampleRecord(t)

	assert.Panics(t, func() { rec.Uint32(sampleType) })
	assert.Panics(t, func() { rec.SetUint8(sampleSize, 1) })
	assert.Panics(t, func() { rec.Raw(sampleGain) })
}

func TestRecordSetCodecMismatch(t *testing.T) {
	rec := newSampleRecord(t)
	before := rec.Bytes()

	err := rec.Set(sampleCount, 9000)
	assert.ErrorIs(t, err, ErrCodecMismatch)

	err = rec.Set(sampleType, "mvhd")
	assert.ErrorIs(t, err, ErrCodecMismatch)

	err = rec.Set(sampleRate, 1.0)
	assert.ErrorIs(t, err, ErrCodecMismatch)

	assert.Equal(t, before, rec.Bytes())
}

func TestRecordSetRawPadding(t *testing.T) {
	rec := newSampleRecord(t)

	require.NoError(t, rec.SetRaw(sampleFlags, []byte{0x01}))
	assert.Equal(t, []byte{0x01, 0x00, 0x00}, rec.Raw(sampleFlags))

	before := rec.Bytes()
	err := rec.SetRaw(sampleFlags, []byte{1, 2, 3, 4})
	assert.ErrorIs(t, err, ErrFieldOverflow)
	assert.Equal(t, before, rec.Bytes())
}

func TestRecordOwnsBuffer(t *testing.T) {
	src := make([]byte, sampleLayout.Size())
	rec, err := NewRecord(sampleLayout, src)
	require.NoError(t, err)

	src[0] = 0xFF
	assert.Equal(t, uint32(0), rec.Uint32(sampleSize))

	out := rec.Bytes()
	out[0] = 0xFF
	assert.Equal(t, uint32(0), rec.Uint32(sampleSize))

	raw := rec.Raw(sampleType)
	raw[0] = 'x'
	assert.Equal(t, []byte{0, 0, 0, 0}, rec.Raw(sampleType))

	got := rec.Get(sampleFlags).([]byte)
	got[0] = 0xFF
	assert.Equal(t, []byte{0, 0, 0}, rec.Raw(sampleFlags))
}

func TestNewRecordShort(t *testing.T) {
	_, err := NewRecord(sampleLayout, make([]byte, sampleLayout.Size()-1))
	assert.ErrorIs(t, err, ErrShortRecord)
}

func TestRecordKeepsTrailingBytes(t *testing.T) {
	buf := make([]byte, sampleLayout.Size()+4)
	copy(buf[sampleLayout.Size():], []byte{1, 2, 3, 4})

	rec, err := NewRecord(sampleLayout, buf)
	require.NoError(t, err)
	rec.SetUint32(sampleCount, 1)

	assert.Equal(t, len(buf), rec.Len())
	assert.Equal(t, []byte{1, 2, 3, 4}, rec.Bytes()[sampleLayout.Size():])
	assert.Same(t, sampleLayout, rec.Layout())
}

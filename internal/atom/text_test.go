package atom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		field int
		in    string
		want  Value
		text  string
	}{
		{sampleSize, "108", uint32(108), "108"},
		{sampleSize, "0x2328", uint32(9000), "9000"},
		{sampleVersion, "1", uint8(1), "1"},
		{sampleType, "6d766864", []byte("mvhd"), "6d766864"},
		{sampleFlags, "0x00:00:01", []byte{0, 0, 1}, "000001"},
		{sampleFlags, "ff", []byte{0xFF}, "ff"},
		{sampleRate, "1.5", Fixed16(0x00018000), "1.5"},
		{sampleVolume, "0.5", Fixed8(0x0080), "0.5"},
		{sampleGain, "2.25", float32(2.25), "2.25"},
	}

	for _, tt := range tests {
		slot := sampleLayout.Slot(tt.field)
		t.Run(slot.Name+"/"+tt.in, func(t *testing.T) {
			v, err := ParseValue(slot, tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
			assert.Equal(t, tt.text, FormatValue(v))

			rec := newSampleRecord(t)
			require.NoError(t, rec.Set(tt.field, v))
		})
	}
}

func TestParseValueErrors(t *testing.T) {
	tests := []struct {
		field int
		in    string
		want  error
	}{
		{sampleSize, "-1", ErrInvalidValue},
		{sampleSize, "4294967296", ErrInvalidValue},
		{sampleVersion, "256", ErrInvalidValue},
		{sampleRate, "fast", ErrInvalidValue},
		{sampleRate, "70000", ErrOutOfRange},
		{sampleVolume, "200", ErrOutOfRange},
		{sampleGain, "", ErrInvalidValue},
		{sampleType, "zz", ErrInvalidValue},
		{sampleType, "0102030405", ErrFieldOverflow},
	}

	for _, tt := range tests {
		slot := sampleLayout.Slot(tt.field)
		t.Run(slot.Name+"/"+tt.in, func(t *testing.T) {
			_, err := ParseValue(slot, tt.in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFormatValueFallback(t *testing.T) {
	assert.Equal(t, "7", FormatValue(7))
}

package atom

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleAtom returns a sampleLayout atom with the given declared size.
func sampleAtom(declared uint32) []byte {
	buf := make([]byte, sampleLayout.Size())
	binary.BigEndian.PutUint32(buf, declared)
	copy(buf[4:], "mvhd")
	binary.BigEndian.PutUint32(buf[22:], 42)
	return buf
}

// embed places atom at offset p inside a zero buffer of n bytes.
func embed(n, p int, atom []byte) []byte {
	buf := make([]byte, n)
	copy(buf[p:], atom)
	return buf
}

func TestLocate(t *testing.T) {
	for _, p := range []int{0, 1, 40, 230} {
		buf := embed(256, p, sampleAtom(26))
		offset, err := Locate(buf, "mvhd")
		require.NoError(t, err)
		assert.Equal(t, p, offset)
	}
}

func TestLocateTagAtEnd(t *testing.T) {
	buf := embed(16, 8, []byte{0, 0, 0, 8, 'm', 'v', 'h', 'd'})
	offset, err := Locate(buf, "mvhd")
	require.NoError(t, err)
	assert.Equal(t, 8, offset)
}

func TestLocateFirstMatchWins(t *testing.T) {
	buf := make([]byte, 128)
	copy(buf[20:], sampleAtom(26))
	copy(buf[80:], sampleAtom(26))

	offset, err := Locate(buf, "mvhd")
	require.NoError(t, err)
	assert.Equal(t, 20, offset)
}

func TestLocateSkipsTagWithoutSizeRoom(t *testing.T) {
	buf := make([]byte, 64)
	copy(buf[1:], "mvhd")
	copy(buf[30:], sampleAtom(26))

	offset, err := Locate(buf, "mvhd")
	require.NoError(t, err)
	assert.Equal(t, 30, offset)

	offset, err = Locate([]byte("xxmvhd__________mvhd"), "mvhd")
	require.NoError(t, err)
	assert.Equal(t, 12, offset)
}

func TestLocateNotFound(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
	}{
		{"nil", nil},
		{"shorter than tag", []byte("mvh")},
		{"tag without size", []byte("mvhd")},
		{"tag at start only", []byte("mvhd\x00\x00\x00\x00")},
		{"absent", make([]byte, 256)},
		{"partial tag", []byte("\x00\x00\x00\x00mvh")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Locate(tt.buf, "mvhd")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestLocateInvalidTag(t *testing.T) {
	_, err := Locate(make([]byte, 64), "mvh")
	assert.ErrorIs(t, err, ErrInvalidTag)

	_, err = Locate(make([]byte, 64), "mvhdx")
	assert.ErrorIs(t, err, ErrInvalidTag)
}

func TestExtract(t *testing.T) {
	atom := sampleAtom(26)
	buf := embed(256, 40, atom)

	rec, err := Extract(buf, "mvhd", sampleLayout)
	require.NoError(t, err)
	assert.Equal(t, 26, rec.Len())
	assert.Equal(t, atom, rec.Bytes())
	assert.Equal(t, uint32(42), rec.Uint32(sampleCount))

	// Extraction copies; editing the source leaves the record alone.
	buf[40+22] = 0xFF
	assert.Equal(t, uint32(42), rec.Uint32(sampleCount))
}

func TestExtractUsesDeclaredSize(t *testing.T) {
	atom := append(sampleAtom(30), 0xDE, 0xAD, 0xBE, 0xEF)
	buf := embed(64, 10, atom)

	rec, err := Extract(buf, "mvhd", sampleLayout)
	require.NoError(t, err)
	assert.Equal(t, 30, rec.Len())
	assert.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, rec.Bytes()[26:])
}

func TestExtractTruncated(t *testing.T) {
	buf := embed(50, 40, sampleAtom(26))

	rec, err := Extract(buf, "mvhd", sampleLayout)
	assert.ErrorIs(t, err, ErrTruncated)
	assert.Nil(t, rec)

	huge := embed(64, 0, sampleAtom(0xFFFFFFFF))
	rec, err = Extract(huge, "mvhd", sampleLayout)
	assert.ErrorIs(t, err, ErrTruncated)
	assert.Nil(t, rec)
}

func TestExtractDeclaredSmallerThanLayout(t *testing.T) {
	buf := embed(64, 0, sampleAtom(20))

	rec, err := Extract(buf, "mvhd", sampleLayout)
	assert.ErrorIs(t, err, ErrShortRecord)
	assert.Nil(t, rec)
}

func TestExtractNotFound(t *testing.T) {
	_, err := Extract(make([]byte, 64), "mvhd", sampleLayout)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExtractSerializationStable(t *testing.T) {
	atom := sampleAtom(26)
	for i := 8; i < len(atom); i++ {
		atom[i] = byte(i * 7)
	}
	buf := embed(100, 33, atom)

	rec, err := Extract(buf, "mvhd", sampleLayout)
	require.NoError(t, err)
	assert.Equal(t, buf[33:33+26], rec.Bytes())
}

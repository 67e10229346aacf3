package atom

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
)

// Codec selects how a field's bytes are decoded.
type Codec uint8

const (
	// CodecRaw is an opaque byte span of any width.
	CodecRaw Codec = iota
	// CodecUint8 is an unsigned 8-bit integer.
	CodecUint8
	// CodecUint32 is a big-endian unsigned 32-bit integer.
	CodecUint32
	// CodecFixed8 is a big-endian signed 8.8 fixed-point number.
	CodecFixed8
	// CodecFixed16 is a big-endian signed 16.16 fixed-point number.
	CodecFixed16
	// CodecFloat32 is a big-endian IEEE-754 single precision float.
	CodecFloat32
)

var codecNames = [...]string{
	CodecRaw:     "raw",
	CodecUint8:   "uint8",
	CodecUint32:  "uint32",
	CodecFixed8:  "fixed8.8",
	CodecFixed16: "fixed16.16",
	CodecFloat32: "float32",
}

func (c Codec) String() string {
	if int(c) < len(codecNames) {
		return codecNames[c]
	}
	return "codec(" + strconv.Itoa(int(c)) + ")"
}

// Width returns the encoded width of a scalar codec, or 0 for CodecRaw.
func (c Codec) Width() int {
	switch c {
	case CodecUint8:
		return 1
	case CodecFixed8:
		return 2
	case CodecUint32, CodecFixed16, CodecFloat32:
		return 4
	default:
		return 0
	}
}

// Value is a decoded field value. Its dynamic type depends on the codec:
// uint8, uint32, Fixed8, Fixed16, float32 or []byte for CodecRaw.
type Value any

func (c Codec) decode(b []byte) Value {
	switch c {
	case CodecUint8:
		return b[0]
	case CodecUint32:
		return binary.BigEndian.Uint32(b)
	case CodecFixed8:
		return Fixed8(binary.BigEndian.Uint16(b))
	case CodecFixed16:
		return Fixed16(binary.BigEndian.Uint32(b))
	case CodecFloat32:
		return math.Float32frombits(binary.BigEndian.Uint32(b))
	default:
		out := make([]byte, len(b))
		copy(out, b)
		return out
	}
}

// encode writes v into dst. dst is left untouched on error.
func (c Codec) encode(dst []byte, v Value) error {
	switch c {
	case CodecUint8:
		u, ok := v.(uint8)
		if !ok {
			return c.mismatch(v)
		}
		dst[0] = u
	case CodecUint32:
		u, ok := v.(uint32)
		if !ok {
			return c.mismatch(v)
		}
		binary.BigEndian.PutUint32(dst, u)
	case CodecFixed8:
		x, ok := v.(Fixed8)
		if !ok {
			return c.mismatch(v)
		}
		binary.BigEndian.PutUint16(dst, uint16(x))
	case CodecFixed16:
		x, ok := v.(Fixed16)
		if !ok {
			return c.mismatch(v)
		}
		binary.BigEndian.PutUint32(dst, uint32(x))
	case CodecFloat32:
		f, ok := v.(float32)
		if !ok {
			return c.mismatch(v)
		}
		binary.BigEndian.PutUint32(dst, math.Float32bits(f))
	default:
		b, ok := v.([]byte)
		if !ok {
			return c.mismatch(v)
		}
		if len(b) > len(dst) {
			return fmt.Errorf("%w: %d bytes into %d", ErrFieldOverflow, len(b), len(dst))
		}
		n := copy(dst, b)
		clear(dst[n:])
	}
	return nil
}

func (c Codec) mismatch(v Value) error {
	return fmt.Errorf("%w: %T for %s", ErrCodecMismatch, v, c)
}

// Fixed8 is a signed 8.8 fixed-point number.
type Fixed8 int16

// Fixed8FromFloat converts f to the nearest Fixed8.
func Fixed8FromFloat(f float64) (Fixed8, error) {
	scaled := math.Round(f * 256)
	if math.IsNaN(scaled) || scaled < math.MinInt16 || scaled > math.MaxInt16 {
		return 0, fmt.Errorf("%w: %g as 8.8 fixed-point", ErrOutOfRange, f)
	}
	return Fixed8(scaled), nil
}

// Float64 returns the value as a float64.
func (x Fixed8) Float64() float64 {
	return float64(x) / 256
}

func (x Fixed8) String() string {
	return strconv.FormatFloat(x.Float64(), 'f', -1, 64)
}

// Fixed16 is a signed 16.16 fixed-point number.
type Fixed16 int32

// Fixed16FromFloat converts f to the nearest Fixed16.
func Fixed16FromFloat(f float64) (Fixed16, error) {
	scaled := math.Round(f * 65536)
	if math.IsNaN(scaled) || scaled < math.MinInt32 || scaled > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %g as 16.16 fixed-point", ErrOutOfRange, f)
	}
	return Fixed16(scaled), nil
}

// Float64 returns the value as a float64.
func (x Fixed16) Float64() float64 {
	return float64(x) / 65536
}

func (x Fixed16) String() string {
	return strconv.FormatFloat(x.Float64(), 'f', -1, 64)
}

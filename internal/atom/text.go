package atom

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// ParseValue parses s into a value suitable for slot.
// Integers accept Go literal prefixes (0x, 0o, 0b); fixed-point and float
// fields take decimal numbers; raw fields take hex, ignoring spaces, colons
// and a leading 0x.
func ParseValue(slot Slot, s string) (Value, error) {
	s = strings.TrimSpace(s)
	switch slot.Codec {
	case CodecUint8:
		u, err := strconv.ParseUint(s, 0, 8)
		if err != nil {
			return nil, invalid(slot, s, err)
		}
		return uint8(u), nil
	case CodecUint32:
		u, err := strconv.ParseUint(s, 0, 32)
		if err != nil {
			return nil, invalid(slot, s, err)
		}
		return uint32(u), nil
	case CodecFixed8:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, invalid(slot, s, err)
		}
		x, err := Fixed8FromFloat(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", slot.Name, err)
		}
		return x, nil
	case CodecFixed16:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, invalid(slot, s, err)
		}
		x, err := Fixed16FromFloat(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", slot.Name, err)
		}
		return x, nil
	case CodecFloat32:
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return nil, invalid(slot, s, err)
		}
		return float32(f), nil
	default:
		cleaned := strings.NewReplacer(" ", "", ":", "").Replace(s)
		cleaned = strings.TrimPrefix(strings.TrimPrefix(cleaned, "0x"), "0X")
		b, err := hex.DecodeString(cleaned)
		if err != nil {
			return nil, invalid(slot, s, err)
		}
		if len(b) > slot.Width {
			return nil, fmt.Errorf("%s: %w: %d bytes into %d", slot.Name, ErrFieldOverflow, len(b), slot.Width)
		}
		return b, nil
	}
}

// FormatValue renders v the way ParseValue reads it back.
func FormatValue(v Value) string {
	switch x := v.(type) {
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case []byte:
		return hex.EncodeToString(x)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(v)
	}
}

func invalid(slot Slot, s string, err error) error {
	return fmt.Errorf("%s: %w %q for %s: %v", slot.Name, ErrInvalidValue, s, slot.Codec, err)
}

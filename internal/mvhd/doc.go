// Package mvhd reads and edits QuickTime movie header atoms.
//
// The movie header ('mvhd') holds movie-wide timing and presentation
// metadata. A version 0 header is 108 bytes, all numbers big-endian:
//
//	offset  width  field
//	     0      4  size
//	     4      4  type ('mvhd')
//	     8      1  version
//	     9      3  flags
//	    12      4  creation time (seconds since 1904-01-01 UTC)
//	    16      4  modification time
//	    20      4  time scale (ticks per second)
//	    24      4  duration (ticks)
//	    28      4  preferred rate (16.16 fixed-point, not an IEEE float)
//	    32      2  preferred volume (8.8 fixed-point)
//	    34     10  reserved
//	    44     36  matrix
//	    80      4  preview time
//	    84      4  preview duration
//	    88      4  poster time
//	    92      4  selection time
//	    96      4  selection duration
//	   100      4  current time
//	   104      4  next track ID
//
// # Usage
//
// Find and edit a header inside a window of file bytes:
//
//	offset, err := mvhd.Locate(window)
//	h, err := mvhd.Extract(window)
//	h.SetDuration(9000)
//	copy(window[offset:], h.Bytes())
//
// The preferred rate is decoded as QuickTime's 16.16 fixed-point number.
// Reading those bytes as a float32 gives meaningless values for real files.
//
// Fields are addressed by the [Field] enumeration, so an unknown field cannot
// be named in code. [ParseField] maps user input onto the enumeration.
//
// # Errors
//
//   - [ErrUnsupportedVersion]: version 1 (64-bit times) headers are not decoded
//   - [ErrZeroTimeScale]: a time conversion needs a non-zero time scale
//   - [ErrTimeRange]: a time does not fit the 32-bit 1904-based encoding
//   - [ErrDurationRange]: a duration does not fit in 32 bits of ticks
//
// Locate and Extract also return the errors of package atom.
package mvhd

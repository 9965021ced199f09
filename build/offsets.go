package build

import "github.com/acorg/hidb5/internal/errs"

// cumulative concatenates fields in order and returns the blob plus the
// cumulative byte offset after each field (bounds[0] == 0, bounds[len(fields)]
// == len(blob)).
func cumulative(fields ...[]byte) (blob []byte, bounds []int) {
	bounds = make([]int, len(fields)+1)
	for i, f := range fields {
		bounds[i+1] = bounds[i] + len(f)
	}

	blob = make([]byte, bounds[len(fields)])
	pos := 0
	for _, f := range fields {
		copy(blob[pos:], f)
		pos += len(f)
	}

	return blob, bounds
}

// fitUint8 converts n to a uint8 offset, reporting an overflow if it would
// not fit in a single byte (spec invariant: every record offset fits in
// uint8).
func fitUint8(n int) (uint8, error) {
	if n < 0 || n > 255 {
		return 0, errs.ErrOffsetOverflow
	}

	return uint8(n), nil //nolint:gosec
}

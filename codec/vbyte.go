package codec

import (
	"fmt"

	"github.com/arloliu/fastpfor/errs"
)

// The tail stores 7 bits per byte, low groups first. Unlike protobuf varints
// the last byte of a value is the one with the top bit set.
const (
	tailPayloadMask = 0x7f
	tailTerminator  = 0x80
)

// appendTail appends the variable-byte run of values to out, padded with
// zero bytes to a word boundary.
func (ws *Workspace) appendTail(out []uint32, values []int32) []uint32 {
	if len(values) == 0 {
		return out
	}

	buf := ws.tail[:0]
	for _, v := range values {
		u := uint32(v)
		for u >= tailTerminator {
			buf = append(buf, byte(u&tailPayloadMask))
			u >>= 7
		}
		buf = append(buf, byte(u)|tailTerminator)
	}
	for len(buf)&3 != 0 {
		buf = append(buf, 0)
	}
	ws.tail = buf

	return packBytesLE(out, buf)
}

// decodeTail decodes exactly len(out) values from the variable-byte run in
// in. The whole of in belongs to the run: once len(out) values are read only
// zero padding may remain.
func decodeTail(in []uint32, out []int32) error {
	total := len(in) * 4
	count := 0
	pos := 0

	var (
		value uint32
		shift uint
		n     int
	)
	for ; pos < total && count < len(out); pos++ {
		c := tailByte(in, pos)
		value |= uint32(c&tailPayloadMask) << shift
		n++

		if c&tailTerminator != 0 {
			out[count] = int32(value)
			count++
			value, shift, n = 0, 0, 0

			continue
		}

		if n == maxTailValueBytes {
			return fmt.Errorf("%w: no terminator within %d bytes at tail byte %d",
				errs.ErrInvalidTailValue, maxTailValueBytes, pos-n+1)
		}
		shift += 7
	}

	if count < len(out) {
		return fmt.Errorf("%w: expected %d values, tail of %d words holds %d",
			errs.ErrTailCountMismatch, len(out), len(in), count)
	}

	for ; pos < total; pos++ {
		if tailByte(in, pos) != 0 {
			return fmt.Errorf("%w: unexpected data at tail byte %d after %d values",
				errs.ErrTailCountMismatch, pos, count)
		}
	}

	return nil
}

func tailByte(in []uint32, pos int) byte {
	return byte(in[pos>>2] >> ((pos & 3) * 8))
}

// tailValues counts the values terminated in a variable-byte run.
func tailValues(in []uint32) int {
	count := 0
	for pos := 0; pos < len(in)*4; pos++ {
		if tailByte(in, pos)&tailTerminator != 0 {
			count++
		}
	}

	return count
}

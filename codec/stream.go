package codec

import (
	"fmt"
	"math"

	"github.com/arloliu/fastpfor/errs"
)

// EncodeWords appends the encoded form of values to dst and returns the
// extended slice.
//
// The stream starts with the aligned length word, followed by the pages of
// the block-aligned prefix and the variable-byte tail of the remaining
// values. An empty input encodes to the single word 0.
//
// Panics if len(values) exceeds math.MaxInt32.
func (c *Codec) EncodeWords(ws *Workspace, dst []uint32, values []int32) []uint32 {
	if len(values) > math.MaxInt32 {
		panic(fmt.Sprintf("fastpfor: %d values exceed the stream limit", len(values)))
	}

	aligned := greatestMultiple(len(values), BlockSize)
	dst = append(dst, uint32(aligned))

	for start := 0; start < aligned; start += c.pageSize {
		end := min(start+c.pageSize, aligned)
		dst = ws.encodePage(dst, values[start:end])
	}

	return ws.appendTail(dst, values[aligned:])
}

// DecodeWords decodes the stream in into out. len(out) is the number of
// values the stream is expected to hold, and in must contain exactly that
// stream: words left after the variable-byte tail are reported as an error
// unless they are zero padding.
func (c *Codec) DecodeWords(ws *Workspace, in []uint32, out []int32) error {
	if len(in) == 0 {
		if len(out) == 0 {
			return nil
		}

		return fmt.Errorf("%w: empty stream, expected %d values", errs.ErrTruncatedData, len(out))
	}

	aligned := int(int32(in[0]))
	if aligned < 0 || aligned%BlockSize != 0 {
		return fmt.Errorf("%w: %d is not a non-negative multiple of %d",
			errs.ErrInvalidAlignedLength, aligned, BlockSize)
	}
	if aligned > len(out) {
		return fmt.Errorf("%w: %d exceeds the %d expected values",
			errs.ErrInvalidAlignedLength, aligned, len(out))
	}

	pos := 1
	for done := 0; done < aligned; {
		size := min(c.pageSize, aligned-done)
		next, err := ws.decodePage(in, pos, out[done:done+size])
		if err != nil {
			return err
		}
		pos = next
		done += size
	}

	return decodeTail(in[pos:], out[aligned:])
}

// AppendEncode encodes values and appends the stream to dst in transport
// byte order (big-endian words).
func (c *Codec) AppendEncode(ws *Workspace, dst []byte, values []int32) []byte {
	ws.words = c.EncodeWords(ws, ws.words[:0], values)
	return WordsToBigEndianBytes(dst, ws.words)
}

// Decode decodes numValues values from the byteLength bytes of data that
// start at *offset, and advances *offset by byteLength on success.
//
// A nil offset reads from the start of data. On error *offset is unchanged.
func (c *Codec) Decode(ws *Workspace, data []byte, numValues, byteLength int, offset *int) ([]int32, error) {
	if numValues < 0 {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidValueCount, numValues)
	}

	out := make([]int32, numValues)
	if err := c.DecodeInto(ws, data, out, byteLength, offset); err != nil {
		return nil, err
	}

	return out, nil
}

// DecodeInto is like Decode but writes len(out) values into out.
func (c *Codec) DecodeInto(ws *Workspace, data []byte, out []int32, byteLength int, offset *int) error {
	start := 0
	if offset != nil {
		start = *offset
	}

	if start < 0 || byteLength < 0 || start > len(data) || byteLength > len(data)-start {
		return fmt.Errorf("%w: offset %d, length %d, buffer has %d bytes",
			errs.ErrInvalidByteRange, start, byteLength, len(data))
	}

	ws.words = BigEndianBytesToWords(ws.words[:0], data[start:start+byteLength])
	if err := c.DecodeWords(ws, ws.words, out); err != nil {
		return err
	}

	if offset != nil {
		*offset = start + byteLength
	}

	return nil
}

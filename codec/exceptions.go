package codec

import (
	"fmt"

	"github.com/arloliu/fastpfor/errs"
	"github.com/arloliu/fastpfor/internal/bitpack"
)

// pushException appends the high bits of one exception to streams[width].
// The caller reserves capacity with reserveStream first.
func (ws *Workspace) pushException(width int, high uint32) {
	ws.streams[width][ws.pointers[width]] = high
	ws.pointers[width]++
}

// exceptionBitmap returns the bitmap word of the streams filled for this page.
// Width 1 never has a stream: its excess value is always 1.
func (ws *Workspace) exceptionBitmap() uint32 {
	var bitmap uint32
	for k := 2; k <= maxBitWidth; k++ {
		if ws.pointers[k] != 0 {
			bitmap |= 1 << (k - 1)
		}
	}

	return bitmap
}

// appendExceptionStreams writes the bitmap followed by every non-empty
// exception stream in ascending width order.
//
// Each stream is packed in groups of 32; the unused slots of the last group
// are zeroed and the words that hold only those slots are trimmed.
func (ws *Workspace) appendExceptionStreams(out []uint32) []uint32 {
	out = append(out, ws.exceptionBitmap())

	for k := 2; k <= maxBitWidth; k++ {
		size := ws.pointers[k]
		if size == 0 {
			continue
		}
		out = append(out, uint32(size))

		padded := roundUpToGroup(size)
		stream := ws.streams[k][:padded]
		clear(stream[size:])

		n := len(out)
		out = growWords(out, bitpack.PackedWords(padded, k))
		for j := 0; j < padded; j += bitpack.GroupSize {
			bitpack.Pack32(stream[j:], out[n:], k)
			n += k
		}

		overflow := padded - size
		out = out[:len(out)-overflow*k/bitpack.GroupSize]
	}

	return out
}

// streamWords returns the number of words a stream of size values at width
// occupies once the trailing group has been trimmed.
func streamWords(size, width int) int {
	padded := roundUpToGroup(size)
	return bitpack.PackedWords(padded, width) - (padded-size)*width/bitpack.GroupSize
}

// readExceptionStreams parses the bitmap at in[pos] and the streams following
// it, records their sizes and, when unpack is set, unpacks their values into
// the workspace. maxValues bounds the size of any single stream. Returns the
// bitmap and the word position after the last stream.
func (ws *Workspace) readExceptionStreams(in []uint32, pos, maxValues int, unpack bool) (uint32, int, error) {
	if pos >= len(in) {
		return 0, 0, fmt.Errorf("%w: exception bitmap at word %d, buffer has %d words",
			errs.ErrTruncatedData, pos, len(in))
	}

	bitmap := in[pos]
	pos++
	if bitmap&1 != 0 {
		return 0, 0, fmt.Errorf("%w: bitmap 0x%08x at word %d declares a width-1 stream",
			errs.ErrInvalidExceptionStream, bitmap, pos-1)
	}

	for k := 2; k <= maxBitWidth; k++ {
		if bitmap&(1<<(k-1)) == 0 {
			continue
		}

		if pos >= len(in) {
			return 0, 0, fmt.Errorf("%w: size of width-%d exception stream at word %d, buffer has %d words",
				errs.ErrTruncatedData, k, pos, len(in))
		}
		size := int(int32(in[pos]))
		if size <= 0 || size > maxValues {
			return 0, 0, fmt.Errorf("%w: width-%d stream declares %d values at word %d (max %d)",
				errs.ErrInvalidExceptionStream, k, size, pos, maxValues)
		}
		pos++

		words := streamWords(size, k)
		if words > len(in)-pos {
			return 0, 0, fmt.Errorf("%w: width-%d stream of %d values needs %d words at word %d, %d remain",
				errs.ErrTruncatedData, k, size, words, pos, len(in)-pos)
		}

		if unpack {
			ws.unpackStream(in[pos:pos+words], k, size)
		}
		ws.sizes[k] = size
		pos += words
	}

	return bitmap, pos, nil
}

// unpackStream unpacks size values of width bits from the trimmed stream
// words in src. The last group is read through a zero-padded copy when its
// trailing words were trimmed.
func (ws *Workspace) unpackStream(src []uint32, width, size int) {
	stream := ws.reserveStream(width, size)

	pos := 0
	for j := 0; j < size; j += bitpack.GroupSize {
		group := src[pos:]
		if len(group) < width {
			clear(ws.chunk[:])
			copy(ws.chunk[:], group)
			group = ws.chunk[:]
		}
		bitpack.Unpack32(group, stream[j:], width)
		pos += width
	}
}

// takeExceptions returns the next n values of streams[width] and advances its pointer.
func (ws *Workspace) takeExceptions(width, n int) ([]uint32, error) {
	size := ws.sizes[width]
	if size == 0 {
		return nil, fmt.Errorf("%w: no width-%d stream in page", errs.ErrMissingExceptionStream, width)
	}

	start := ws.pointers[width]
	if start+n > size {
		return nil, fmt.Errorf("%w: width-%d stream exhausted, need %d values at %d, have %d",
			errs.ErrMissingExceptionStream, width, n, start, size)
	}
	ws.pointers[width] = start + n

	return ws.streams[width][start : start+n], nil
}

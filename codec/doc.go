// Package codec implements the FastPFOR integer codec: Patched
// Frame-of-Reference with per-block bit-packing, exception streams and a
// variable-byte tail.
//
// # Stream Layout
//
// An encoded stream is a sequence of 32-bit words:
//
//	[alignedLength] [page]... [variable-byte tail]
//
// alignedLength is the largest multiple of 256 not exceeding the number of
// values. The aligned prefix is split into pages of up to PageSize values
// (65536 by default); every page is laid out as:
//
//	[whereMeta] [packed blocks] [byteSize] [metadata words] [bitmap] [exception streams]
//
//   - whereMeta: word distance from the page start to byteSize.
//   - packed blocks: 8 groups of 32 values per 256-value block, at the block's
//     base bit width.
//   - metadata: per block [baseWidth, exceptionCount, (maxBits, positions...)],
//     padded to 4 bytes and packed least-significant byte first.
//   - bitmap: bit k-1 set when the exception stream of width k (2..32) exists.
//   - exception streams: for each set bit in ascending width order, a count
//     word followed by the bit-packed high bits of the exceptions.
//
// The remaining (< 256) values are written as a variable-byte run in which the
// terminating byte of every value has its top bit set, padded with zero bytes
// to a word boundary and packed least-significant byte first.
//
// When the stream is turned into bytes, each word is written big-endian
// (see WordsToBigEndianBytes).
//
// # Workspaces
//
// Encoding and decoding need scratch buffers (exception streams, metadata,
// word buffers). They live in a Workspace owned by the caller. A Workspace
// grows on demand, is never shrunk, and must not be used by two calls at the
// same time. A Codec itself is immutable and safe for concurrent use.
//
// # Basic Usage
//
//	c, _ := codec.New()
//	ws := codec.NewWorkspace()
//
//	data := c.AppendEncode(ws, nil, values)
//
//	offset := 0
//	decoded, err := c.Decode(ws, data, len(values), len(data), &offset)
package codec

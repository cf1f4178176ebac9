// Package fastpfor compresses sequences of 32-bit integers with FastPFOR
// (Patched Frame-of-Reference with bit-packing).
//
// The encoded form is bit-exact with the FastPFOR composite codec used by the
// C++ and Java FastPFOR libraries (FastPFOR for 256-value blocks followed by a
// variable-byte tail), with the 32-bit words serialized big-endian.
//
// # Core Features
//
//   - Cost-optimal base bit width per 256-value block
//   - Outliers stored as patched exceptions in per-width streams
//   - Self-delimiting pages of up to 65536 values
//   - Reusable workspaces for allocation-free decoding on hot paths
//
// # Basic Usage
//
//	values := []int32{3, 1, 4, 1, 5, 9, 2, 6}
//	data := fastpfor.Encode(values)
//
//	offset := 0
//	decoded, err := fastpfor.Decode(data, len(values), len(data), &offset)
//	if err != nil {
//	    return err
//	}
//
// Several encoded regions can share one buffer; the offset cursor advances by
// the byte length of each decoded region:
//
//	ws := fastpfor.NewWorkspace()
//	first, _ := fastpfor.DecodeWithWorkspace(ws, buf, n1, len1, &offset)
//	second, _ := fastpfor.DecodeWithWorkspace(ws, buf, n2, len2, &offset)
//
// # Package Structure
//
// This package wraps the codec package with a default Codec and pooled
// workspaces. Use the codec package directly for word-level access, custom
// page sizes or stream inspection.
package fastpfor

import (
	"github.com/arloliu/fastpfor/codec"
	"github.com/arloliu/fastpfor/endian"
	"github.com/arloliu/fastpfor/internal/pool"
)

// Workspace holds reusable scratch buffers for encoding and decoding.
// It must not be used by two calls at the same time.
type Workspace = codec.Workspace

// workspaceMaxFootprint is the largest workspace kept by the pool.
const workspaceMaxFootprint = 8 << 20

var workspacePool = pool.New(
	codec.NewWorkspace,
	func(ws *codec.Workspace) bool { return ws.Footprint() > workspaceMaxFootprint },
)

// NewWorkspace creates an empty Workspace.
func NewWorkspace() *Workspace {
	return codec.NewWorkspace()
}

// Encode compresses values and returns the encoded bytes.
func Encode(values []int32) []byte {
	return AppendEncode(nil, values)
}

// AppendEncode compresses values and appends the encoded bytes to dst.
func AppendEncode(dst []byte, values []int32) []byte {
	ws := workspacePool.Get()
	defer workspacePool.Put(ws)

	return codec.Default().AppendEncode(ws, dst, values)
}

// Decode decompresses numValues values from the byteLength bytes of data
// starting at *offset, and advances *offset by byteLength.
//
// Parameters:
//   - data: buffer holding one or more encoded regions
//   - numValues: number of values encoded in the region
//   - byteLength: size of the region in bytes
//   - offset: byte cursor into data; nil reads from the start of data
//
// Returns:
//   - []int32: the decoded values
//   - error: a wrapped errs sentinel if the region is corrupt or truncated
func Decode(data []byte, numValues, byteLength int, offset *int) ([]int32, error) {
	ws := workspacePool.Get()
	defer workspacePool.Put(ws)

	return codec.Default().Decode(ws, data, numValues, byteLength, offset)
}

// DecodeWithWorkspace is like Decode but uses the caller's workspace instead
// of a pooled one.
func DecodeWithWorkspace(ws *Workspace, data []byte, numValues, byteLength int, offset *int) ([]int32, error) {
	return codec.Default().Decode(ws, data, numValues, byteLength, offset)
}

// DecodeInto is like DecodeWithWorkspace but writes len(out) values into
// out, so a warmed-up workspace decodes without allocating.
func DecodeInto(ws *Workspace, data []byte, out []int32, byteLength int, offset *int) error {
	return codec.Default().DecodeInto(ws, data, out, byteLength, offset)
}

// Inspect reports the page layout of encoded bytes without decoding values.
func Inspect(data []byte) (*codec.StreamInfo, error) {
	words, cleanup := pool.GetUint32Slice(endian.WordCount(len(data)))
	defer cleanup()

	endian.ReadWords(endian.GetBigEndianEngine(), words, data)

	return codec.Default().Inspect(words)
}

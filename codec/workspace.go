package codec

import (
	"slices"

	"github.com/arloliu/fastpfor/internal/bitpack"
)

// Workspace holds the scratch buffers of one encode or decode call.
//
// Buffers start empty, grow geometrically on demand and are never shrunk,
// so reusing a Workspace across calls amortises allocation. A Workspace is
// not safe for concurrent use: give each goroutine its own, or take one
// from a pool for the duration of a call.
type Workspace struct {
	// streams[k] holds the exception high bits of width k for the current page.
	streams [maxBitWidth + 1][]uint32
	// pointers[k] counts values appended (encode) or consumed (decode) in streams[k].
	pointers [maxBitWidth + 1]int
	// sizes[k] is the number of values decoded into streams[k].
	sizes [maxBitWidth + 1]int
	freqs [maxBitWidth + 1]int

	meta  []byte
	tail  []byte
	words []uint32

	block [BlockSize]uint32
	chunk [bitpack.GroupSize]uint32
}

// NewWorkspace creates an empty Workspace.
func NewWorkspace() *Workspace {
	return &Workspace{}
}

// resetPage clears the per-page exception pointers and metadata.
func (ws *Workspace) resetPage() {
	clear(ws.pointers[:])
	clear(ws.sizes[:])
	ws.meta = ws.meta[:0]
}

// reserveStream makes streams[width] hold at least n values rounded up to a
// whole group, doubling the requested size when it has to grow.
func (ws *Workspace) reserveStream(width, n int) []uint32 {
	stream := ws.streams[width]
	need := roundUpToGroup(n)
	if need > len(stream) {
		grown := make([]uint32, roundUpToGroup(2*n))
		copy(grown, stream)
		stream = grown
		ws.streams[width] = stream
	}

	return stream
}

// growWords returns dst extended by n words, growing its capacity if needed.
func growWords(dst []uint32, n int) []uint32 {
	l := len(dst)
	dst = slices.Grow(dst, n)

	return dst[:l+n]
}

// Footprint returns the number of bytes held by the workspace's growable buffers.
func (ws *Workspace) Footprint() int {
	n := cap(ws.meta) + cap(ws.tail) + 4*cap(ws.words)
	for _, s := range ws.streams {
		n += 4 * cap(s)
	}

	return n
}

package compress

import (
	"errors"

	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/fastpfor/internal/pool"
)

var lz4CompressorPool = pool.New(func() *lz4.Compressor { return &lz4.Compressor{} }, nil)

// lz4MaxDecompressedSize bounds the buffer grown while decompressing a block.
const lz4MaxDecompressedSize = 128 << 20

// LZ4Compressor compresses with raw LZ4 blocks.
type LZ4Compressor struct{}

var _ Codec = LZ4Compressor{}

// NewLZ4Compressor creates an LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

func (LZ4Compressor) Name() string { return "lz4" }

// Compress compresses data into a single LZ4 block with a pooled compressor.
func (LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc := lz4CompressorPool.Get()
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress decompresses one LZ4 block. The block does not record its
// original size, so the buffer starts at 4x the input and doubles on
// ErrInvalidSourceShortBuffer up to lz4MaxDecompressedSize.
func (LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	for size := len(data) * 4; ; size *= 2 {
		size = min(size, lz4MaxDecompressedSize)
		buf := make([]byte, size)
		n, err := lz4.UncompressBlock(data, buf)
		if err == nil {
			return buf[:n], nil
		}
		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) || size == lz4MaxDecompressedSize {
			return nil, err
		}
	}
}

package codec

import (
	"fmt"

	"github.com/arloliu/fastpfor/errs"
	"github.com/arloliu/fastpfor/internal/bitpack"
	"github.com/arloliu/fastpfor/internal/options"
)

const (
	// BlockSize is the number of values sharing one base bit width.
	BlockSize = bitpack.BlockSize

	// DefaultPageSize is the number of values framed by one page.
	DefaultPageSize = 65536

	// maxBitWidth bounds base widths, max widths and exception widths.
	maxBitWidth = bitpack.MaxWidth

	// exceptionOverhead is the planner's cost in bits for recording one exception position.
	exceptionOverhead = 8

	// blockHeaderCost is the planner's cost in bits of a block header.
	blockHeaderCost = 8

	// maxTailValueBytes is the longest variable-byte run for one 32-bit value.
	maxTailValueBytes = 5
)

// Codec encodes and decodes FastPFOR streams.
//
// A Codec holds only configuration and is safe for concurrent use; all
// mutable state lives in the Workspace passed to each call.
type Codec struct {
	pageSize int
}

// Option configures a Codec.
type Option = options.Option[*Codec]

// WithPageSize sets the number of values framed by one page.
//
// The size is rounded down to a multiple of BlockSize, and sizes below
// BlockSize become BlockSize. Encoder and decoder must use the same page
// size because it is not recorded in the stream.
//
// Returns an ErrInvalidPageSize error if size is not positive.
func WithPageSize(size int) Option {
	return options.New(func(c *Codec) error {
		if size <= 0 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidPageSize, size)
		}
		c.pageSize = normalizePageSize(size)

		return nil
	})
}

// New creates a Codec. Without options it uses DefaultPageSize.
func New(opts ...Option) (*Codec, error) {
	c := &Codec{pageSize: DefaultPageSize}
	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

var defaultCodec = &Codec{pageSize: DefaultPageSize}

// Default returns the shared Codec with default settings.
func Default() *Codec {
	return defaultCodec
}

// PageSize returns the number of values framed by one page.
func (c *Codec) PageSize() int {
	return c.pageSize
}

func normalizePageSize(size int) int {
	aligned := greatestMultiple(size, BlockSize)
	if aligned == 0 {
		return BlockSize
	}

	return aligned
}

func greatestMultiple(value, factor int) int {
	return value - value%factor
}

func roundUpToGroup(n int) int {
	return greatestMultiple(n+bitpack.GroupSize-1, bitpack.GroupSize)
}

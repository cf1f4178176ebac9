package codec

import "github.com/arloliu/fastpfor/internal/bitpack"

// BlockPlan is the bit-width choice for one 256-value block.
type BlockPlan struct {
	// BaseBitWidth is the number of low bits stored for every value (0..32).
	BaseBitWidth int
	// ExceptionCount is the number of values that need more than BaseBitWidth bits.
	ExceptionCount int
	// MaxBitWidth is the number of bits needed by the widest value in the block.
	MaxBitWidth int
}

// ExceptionBitWidth returns the width of the high bits stored per exception.
func (p BlockPlan) ExceptionBitWidth() int {
	return p.MaxBitWidth - p.BaseBitWidth
}

// PlanBlock returns the cost-optimal plan for the first BlockSize values of
// block. Panics if block holds fewer than BlockSize values.
func PlanBlock(block []int32) BlockPlan {
	var (
		values [BlockSize]uint32
		freqs  [maxBitWidth + 1]int
	)
	for i, v := range block[:BlockSize] {
		values[i] = uint32(v)
	}

	return planBlock(&values, &freqs)
}

// planBlock picks the base width b minimising
//
//	exceptions*(overhead + maxBits - b) + b*BlockSize + header
//
// where a 1-bit exception costs one bit less because its value is implied.
// Candidates are scanned from maxBits-1 down, and the scan stops once every
// value would become an exception.
func planBlock(block *[BlockSize]uint32, freqs *[maxBitWidth + 1]int) BlockPlan {
	clear(freqs[:])
	for _, v := range block {
		freqs[bitpack.Bits(v)]++
	}

	maxBits := maxBitWidth
	for freqs[maxBits] == 0 {
		maxBits--
	}

	bestB := maxBits
	bestCost := maxBits * BlockSize
	exceptions := 0
	bestExceptions := 0

	for b := maxBits - 1; b >= 0; b-- {
		exceptions += freqs[b+1]
		if exceptions == BlockSize {
			break
		}

		cost := exceptions*exceptionOverhead + exceptions*(maxBits-b) + b*BlockSize + blockHeaderCost
		if maxBits-b == 1 {
			cost -= exceptions
		}

		if cost < bestCost {
			bestCost = cost
			bestB = b
			bestExceptions = exceptions
		}
	}

	return BlockPlan{
		BaseBitWidth:   bestB,
		ExceptionCount: bestExceptions,
		MaxBitWidth:    maxBits,
	}
}

// Package bitpack packs and unpacks groups of 32 unsigned integers at a fixed
// bit width.
//
// Values are laid out least-significant bit first across consecutive 32-bit
// words: value i occupies bits [i*w, (i+1)*w) of the group, and a value whose
// range crosses a word boundary keeps its low bits in the earlier word and its
// high bits in the next one. A group of 32 values at width w always occupies
// exactly w words.
package bitpack

import "math/bits"

const (
	// GroupSize is the number of values handled by Pack32 and Unpack32.
	GroupSize = 32
	// BlockSize is the number of values handled by PackBlock and UnpackBlock.
	BlockSize = 256
	// MaxWidth is the widest supported field.
	MaxWidth = 32

	groupsPerBlock = BlockSize / GroupSize
)

// Masks[w] keeps the low w bits of a word. Masks[0] is zero and Masks[32] is all ones.
var Masks = func() [MaxWidth + 1]uint32 {
	var m [MaxWidth + 1]uint32
	for w := 1; w <= MaxWidth; w++ {
		m[w] = ^uint32(0) >> (MaxWidth - w)
	}

	return m
}()

// Bits returns the number of bits required to represent v. Bits(0) is 0.
func Bits(v uint32) int {
	return bits.Len32(v)
}

// PackedWords returns the number of words used by n values packed at width,
// with n rounded up to a whole number of groups.
func PackedWords(n, width int) int {
	return (n + GroupSize - 1) / GroupSize * width
}

// Pack32 packs the first 32 values of in into exactly width words of out.
// Values are masked to width bits. Panics if width is outside 0..32 or the
// slices are too short.
func Pack32(in, out []uint32, width int) {
	switch width {
	case 0:
		return
	case 1, 2, 4, 8, 16:
		packAligned(in, out, width)
	case 32:
		copy(out[:GroupSize], in[:GroupSize])
	default:
		if width < 0 || width > MaxWidth {
			panic("bitpack: width out of range")
		}
		packGeneric(in, out, width)
	}
}

// Unpack32 unpacks 32 values of width bits from the first width words of in.
// Panics if width is outside 0..32 or the slices are too short.
func Unpack32(in, out []uint32, width int) {
	switch width {
	case 0:
		clear(out[:GroupSize])
	case 1:
		unpack1(in, out)
	case 2:
		unpack2(in, out)
	case 4:
		unpack4(in, out)
	case 8:
		unpack8(in, out)
	case 16:
		unpack16(in, out)
	case 32:
		copy(out[:GroupSize], in[:GroupSize])
	default:
		if width < 0 || width > MaxWidth {
			panic("bitpack: width out of range")
		}
		unpackGeneric(in, out, width)
	}
}

// PackBlock packs 256 values as 8 consecutive groups and returns the number
// of words written (8*width).
func PackBlock(in, out []uint32, width int) int {
	if width == 0 {
		return 0
	}
	_ = in[BlockSize-1]
	_ = out[groupsPerBlock*width-1]
	for g := 0; g < groupsPerBlock; g++ {
		Pack32(in[g*GroupSize:], out[g*width:], width)
	}

	return groupsPerBlock * width
}

// UnpackBlock unpacks 256 values from 8 consecutive groups and returns the
// number of words consumed (8*width).
func UnpackBlock(in, out []uint32, width int) int {
	switch width {
	case 0:
		clear(out[:BlockSize])
		return 0
	case 32:
		copy(out[:BlockSize], in[:BlockSize])
		return BlockSize
	}
	_ = in[groupsPerBlock*width-1]
	_ = out[BlockSize-1]
	for g := 0; g < groupsPerBlock; g++ {
		Unpack32(in[g*width:], out[g*GroupSize:], width)
	}

	return groupsPerBlock * width
}

// packAligned handles widths that divide 32, where no value straddles a word.
func packAligned(in, out []uint32, width int) {
	perWord := 32 / width
	mask := Masks[width]
	in = in[:GroupSize]
	out = out[:width]
	for j := range out {
		src := in[j*perWord : (j+1)*perWord]
		var w uint32
		for k, v := range src {
			w |= (v & mask) << (k * width)
		}
		out[j] = w
	}
}

func packGeneric(in, out []uint32, width int) {
	mask := Masks[width]
	in = in[:GroupSize]
	out = out[:width]
	clear(out)
	for i, v := range in {
		v &= mask
		pos := i * width
		word, off := pos>>5, uint(pos&31)
		out[word] |= v << off
		if off+uint(width) > 32 {
			out[word+1] |= v >> (32 - off)
		}
	}
}

func unpackGeneric(in, out []uint32, width int) {
	mask := Masks[width]
	in = in[:width]
	out = out[:GroupSize]
	for i := range out {
		pos := i * width
		word, off := pos>>5, uint(pos&31)
		v := in[word] >> off
		if off+uint(width) > 32 {
			v |= in[word+1] << (32 - off)
		}
		out[i] = v & mask
	}
}

package bitpack

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMasks(t *testing.T) {
	require := require.New(t)

	require.Equal(uint32(0), Masks[0])
	require.Equal(uint32(1), Masks[1])
	require.Equal(uint32(0xff), Masks[8])
	require.Equal(uint32(0x7fffffff), Masks[31])
	require.Equal(uint32(0xffffffff), Masks[32])

	for w := 1; w <= MaxWidth; w++ {
		require.Equal(w, Bits(Masks[w]), "width %d", w)
	}
}

func TestBits(t *testing.T) {
	tests := []struct {
		value uint32
		want  int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 2},
		{15, 4},
		{16, 5},
		{65535, 16},
		{1 << 31, 32},
		{0xffffffff, 32},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, Bits(tt.value), "value %d", tt.value)
	}
}

func TestPackedWords(t *testing.T) {
	require.Equal(t, 0, PackedWords(0, 7))
	require.Equal(t, 7, PackedWords(1, 7))
	require.Equal(t, 7, PackedWords(32, 7))
	require.Equal(t, 14, PackedWords(33, 7))
	require.Equal(t, 0, PackedWords(100, 0))
}

func TestPack32_RoundTripAllWidths(t *testing.T) {
	patterns := map[string]func(i int, mask uint32) uint32{
		"ramp":     func(i int, mask uint32) uint32 { return uint32(i) & mask },
		"all_ones": func(_ int, mask uint32) uint32 { return mask },
		"random":   func(_ int, mask uint32) uint32 { return rand.Uint32() & mask },
	}

	for name, gen := range patterns {
		t.Run(name, func(t *testing.T) {
			for w := 0; w <= MaxWidth; w++ {
				in := make([]uint32, GroupSize)
				for i := range in {
					in[i] = gen(i, Masks[w])
				}

				packed := make([]uint32, w)
				Pack32(in, packed, w)

				out := make([]uint32, GroupSize)
				for i := range out {
					out[i] = 0xdeadbeef
				}
				Unpack32(packed, out, w)

				require.Equal(t, in, out, "width %d", w)
			}
		})
	}
}

func TestPack32_MasksHighBits(t *testing.T) {
	in := make([]uint32, GroupSize)
	for i := range in {
		in[i] = 0xffffff00 | uint32(i)
	}

	for _, w := range []int{3, 5, 8, 13} {
		packed := make([]uint32, w)
		Pack32(in, packed, w)

		out := make([]uint32, GroupSize)
		Unpack32(packed, out, w)
		for i := range out {
			require.Equal(t, in[i]&Masks[w], out[i], "width %d index %d", w, i)
		}
	}
}

func TestPack32_WordLayout(t *testing.T) {
	// width 3: value i starts at bit 3*i; value 10 straddles words 0 and 1.
	in := make([]uint32, GroupSize)
	in[0] = 0x5
	in[10] = 0x7
	in[31] = 0x1

	packed := make([]uint32, 3)
	Pack32(in, packed, 3)

	require.Equal(t, uint32(0x5|0x3<<30), packed[0])
	require.Equal(t, uint32(0x1), packed[1])
	require.Equal(t, uint32(1<<29), packed[2])
}

func TestPack32_AlignedMatchesGeneric(t *testing.T) {
	in := make([]uint32, GroupSize)
	for i := range in {
		in[i] = rand.Uint32()
	}

	for _, w := range []int{1, 2, 4, 8, 16} {
		aligned := make([]uint32, w)
		packAligned(in, aligned, w)

		generic := make([]uint32, w)
		packGeneric(in, generic, w)
		require.Equal(t, generic, aligned, "width %d", w)

		fast := make([]uint32, GroupSize)
		Unpack32(aligned, fast, w)
		slow := make([]uint32, GroupSize)
		unpackGeneric(aligned, slow, w)
		require.Equal(t, slow, fast, "width %d", w)
	}
}

func TestBlock_RoundTrip(t *testing.T) {
	for w := 0; w <= MaxWidth; w++ {
		in := make([]uint32, BlockSize)
		for i := range in {
			in[i] = uint32(i*2654435761) & Masks[w]
		}

		packed := make([]uint32, 8*w)
		require.Equal(t, 8*w, PackBlock(in, packed, w))

		out := make([]uint32, BlockSize)
		require.Equal(t, 8*w, UnpackBlock(packed, out, w))
		require.Equal(t, in, out, "width %d", w)
	}
}

func TestPack32_InvalidWidthPanics(t *testing.T) {
	in := make([]uint32, GroupSize)
	out := make([]uint32, 64)

	require.Panics(t, func() { Pack32(in, out, 33) })
	require.Panics(t, func() { Unpack32(out, in, -1) })
}

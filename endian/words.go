package endian

import "slices"

// WordCount returns the number of 32-bit words needed to hold n bytes.
func WordCount(n int) int {
	return (n + 3) >> 2
}

// AppendWords appends every word of src to dst as 4 bytes in the engine's
// byte order and returns the extended slice.
func AppendWords(engine EndianEngine, dst []byte, src []uint32) []byte {
	dst = slices.Grow(dst, 4*len(src))
	for _, w := range src {
		dst = engine.AppendUint32(dst, w)
	}

	return dst
}

// ReadWords decodes src into dst, 4 bytes per word, and returns the number of
// words written.
//
// A trailing group of fewer than 4 bytes is completed with zero bytes before
// decoding, so with the big-endian engine the leftover bytes land in the high
// end of the last word. dst must hold at least WordCount(len(src)) words.
func ReadWords(engine EndianEngine, dst []uint32, src []byte) int {
	n := len(src) >> 2
	_ = dst[:WordCount(len(src))]
	for i := 0; i < n; i++ {
		dst[i] = engine.Uint32(src[i<<2:])
	}

	if rem := len(src) & 3; rem != 0 {
		var tmp [4]byte
		copy(tmp[:], src[n<<2:])
		dst[n] = engine.Uint32(tmp[:])
		n++
	}

	return n
}

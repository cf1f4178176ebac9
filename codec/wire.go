package codec

import "github.com/arloliu/fastpfor/endian"

// WordsToBigEndianBytes appends words to dst in transport byte order: each
// word is written as 4 big-endian bytes.
func WordsToBigEndianBytes(dst []byte, words []uint32) []byte {
	return endian.AppendWords(endian.GetBigEndianEngine(), dst, words)
}

// BigEndianBytesToWords appends the words of the transport bytes src to dst.
// A trailing group of fewer than 4 bytes forms the high bytes of a final
// word whose remaining bytes are zero.
func BigEndianBytesToWords(dst []uint32, src []byte) []uint32 {
	n := len(dst)
	dst = growWords(dst, endian.WordCount(len(src)))
	endian.ReadWords(endian.GetBigEndianEngine(), dst[n:], src)

	return dst
}

// packBytesLE appends src to dst packed four bytes per word, least
// significant byte first. This is the page-internal layout of metadata and
// variable-byte runs; len(src) is expected to be a multiple of 4.
func packBytesLE(dst []uint32, src []byte) []uint32 {
	n := len(dst)
	dst = growWords(dst, endian.WordCount(len(src)))
	endian.ReadWords(endian.GetLittleEndianEngine(), dst[n:], src)

	return dst
}

// unpackBytesLE appends the bytes of words to dst, least significant byte first.
func unpackBytesLE(dst []byte, words []uint32) []byte {
	return endian.AppendWords(endian.GetLittleEndianEngine(), dst, words)
}

// Package hash computes content digests of encoded streams.
package hash

import (
	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/fastpfor/endian"
)

// Bytes computes the xxHash64 of data.
func Bytes(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Words computes the xxHash64 of words serialized with engine, without
// materializing the byte form.
func Words(engine endian.EndianEngine, words []uint32) uint64 {
	d := xxhash.New()

	var buf [64]byte
	for len(words) > 0 {
		n := min(len(words), len(buf)/4)
		for i, w := range words[:n] {
			engine.PutUint32(buf[4*i:], w)
		}
		_, _ = d.Write(buf[:4*n])
		words = words[n:]
	}

	return d.Sum64()
}

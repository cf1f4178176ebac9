// Package compress measures how far general-purpose compressors shrink an
// already encoded FastPFOR stream.
//
// The codec never applies these compressors itself; they back the size
// comparison report of the fastpfor-vectors inspector.
package compress

import (
	"bytes"
	"fmt"
)

// Codec compresses and decompresses whole buffers.
//
// Implementations are safe for concurrent use.
type Codec interface {
	// Name returns the algorithm name used in reports.
	Name() string
	// Compress returns a newly allocated compressed copy of data.
	Compress(data []byte) ([]byte, error)
	// Decompress returns the original bytes of data.
	Decompress(data []byte) ([]byte, error)
}

// Stats is the outcome of compressing one buffer with one codec.
type Stats struct {
	// Algorithm is the codec name.
	Algorithm string
	// OriginalSize is the input size in bytes.
	OriginalSize int
	// CompressedSize is the output size in bytes.
	CompressedSize int
}

// CompressionRatio returns CompressedSize / OriginalSize, or 0 for empty input.
func (s Stats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the saved space as a percentage of the original size.
func (s Stats) SpaceSavings() float64 {
	return (1 - s.CompressionRatio()) * 100
}

var builtinCodecs = []Codec{
	NewZstdCompressor(),
	NewS2Compressor(),
	NewLZ4Compressor(),
}

// Codecs returns the built-in codecs in report order.
func Codecs() []Codec {
	return builtinCodecs
}

// Measure compresses data with every codec and verifies that each result
// decompresses back to data.
func Measure(data []byte, codecs ...Codec) ([]Stats, error) {
	if len(codecs) == 0 {
		codecs = builtinCodecs
	}

	stats := make([]Stats, 0, len(codecs))
	for _, c := range codecs {
		compressed, err := c.Compress(data)
		if err != nil {
			return nil, fmt.Errorf("%s compression failed: %w", c.Name(), err)
		}

		restored, err := c.Decompress(compressed)
		if err != nil {
			return nil, fmt.Errorf("%s decompression failed: %w", c.Name(), err)
		}
		if !bytes.Equal(restored, data) {
			return nil, fmt.Errorf("%s round trip changed %d bytes into %d", c.Name(), len(data), len(restored))
		}

		stats = append(stats, Stats{
			Algorithm:      c.Name(),
			OriginalSize:   len(data),
			CompressedSize: len(compressed),
		})
	}

	return stats, nil
}

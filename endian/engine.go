// Package endian provides byte order utilities for the fastpfor word streams.
//
// An encoded stream is a sequence of 32-bit words. Two byte orders meet in it:
//
//   - Transport order: whole words are serialized big-endian when a stream is
//     turned into bytes (GetBigEndianEngine).
//   - Page-internal order: the metadata byte blob and the variable-byte tail
//     are packed into words least-significant byte first (GetLittleEndianEngine).
//
// Both go through the same EndianEngine-parameterised helpers, but callers
// should always name the engine explicitly so the two conventions never mix.
//
// # Basic Usage
//
//	engine := endian.GetBigEndianEngine()
//	data := endian.AppendWords(engine, nil, words)
//
//	words = words[:endian.WordCount(len(data))]
//	endian.ReadWords(engine, words, data)
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

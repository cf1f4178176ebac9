package pool

import "sync"

// Uint32SliceMaxThreshold is the largest capacity kept by the uint32 slice pool.
const Uint32SliceMaxThreshold = 1 << 20

var uint32SlicePool = sync.Pool{
	New: func() any { return &[]uint32{} },
}

// GetUint32Slice retrieves a uint32 slice of length size from the pool.
//
// The contents of the returned slice are unspecified. The caller must call
// the returned cleanup function, typically with defer, to give the slice back.
//
// Example:
//
//	words, cleanup := pool.GetUint32Slice(n)
//	defer cleanup()
func GetUint32Slice(size int) ([]uint32, func()) {
	ptr, _ := uint32SlicePool.Get().(*[]uint32)
	slice := *ptr

	if cap(slice) < size {
		slice = make([]uint32, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() {
		if cap(*ptr) > Uint32SliceMaxThreshold {
			return
		}
		uint32SlicePool.Put(ptr)
	}
}

package main

import "fmt"

// pattern selects how generated values are laid out.
type pattern string

const (
	// patternDense alternates maxVal-1 and maxVal so every block uses the full width.
	patternDense pattern = "dense"
	// patternMixed interleaves maxVal, a ramp and a multiplicative scramble.
	patternMixed pattern = "mixed"
	// patternExceptions stores 10-bit values with three ~20-bit outliers.
	patternExceptions pattern = "exceptions"
)

var patternNames = []string{string(patternDense), string(patternMixed), string(patternExceptions)}

// generateValues returns count values for bitwidth following p. Width 0
// always yields zeros.
func generateValues(bitwidth, count int, p pattern) ([]int32, error) {
	if bitwidth < 0 || bitwidth > 32 {
		return nil, fmt.Errorf("bit width %d out of range 0..32", bitwidth)
	}
	if count < 0 {
		return nil, fmt.Errorf("negative value count %d", count)
	}

	values := make([]int32, count)
	if bitwidth == 0 {
		return values, nil
	}

	maxVal := uint64(1)<<bitwidth - 1
	switch p {
	case patternDense:
		for i := range values {
			if i&1 == 1 {
				values[i] = int32(uint32(maxVal))
			} else {
				values[i] = int32(uint32(maxVal - 1))
			}
		}
	case patternMixed:
		for i := range values {
			n := uint64(i)
			switch i % 3 {
			case 0:
				values[i] = int32(uint32(maxVal))
			case 1:
				values[i] = int32(uint32(n % (maxVal + 1)))
			default:
				values[i] = int32(uint32(n * 12345 % (maxVal + 1)))
			}
		}
	case patternExceptions:
		for i := range values {
			values[i] = int32(i & 1023)
		}
		for _, e := range [...]struct{ pos, add int }{{5, 123}, {123, 4567}, {400, 9999}} {
			if count > e.pos {
				values[e.pos] = 1<<19 + int32(e.add)
			}
		}
	default:
		return nil, fmt.Errorf("unknown pattern %q", p)
	}

	return values, nil
}

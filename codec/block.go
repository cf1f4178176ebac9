package codec

import (
	"fmt"

	"github.com/arloliu/fastpfor/errs"
	"github.com/arloliu/fastpfor/internal/bitpack"
)

// encodeBlock plans one 256-value block, records its header and exception
// positions in the page metadata, queues the exception high bits and appends
// the packed base values to out.
func (ws *Workspace) encodeBlock(out []uint32, values []int32) []uint32 {
	block := &ws.block
	for i, v := range values[:BlockSize] {
		block[i] = uint32(v)
	}

	plan := planBlock(block, &ws.freqs)
	b := plan.BaseBitWidth
	ws.meta = append(ws.meta, byte(b), byte(plan.ExceptionCount))

	if plan.ExceptionCount > 0 {
		ws.meta = append(ws.meta, byte(plan.MaxBitWidth))

		width := plan.ExceptionBitWidth()
		if width < 1 || width > maxBitWidth {
			panic(fmt.Errorf("%w: exception width %d (base %d, max %d)",
				errs.ErrInvalidBitWidth, width, b, plan.MaxBitWidth))
		}
		if width != 1 {
			ws.reserveStream(width, ws.pointers[width]+plan.ExceptionCount)
		}

		seen := 0
		for i, v := range block {
			high := v >> b
			if high == 0 {
				continue
			}
			seen++
			ws.meta = append(ws.meta, byte(i))
			if width != 1 {
				ws.pushException(width, high)
			}
		}

		if seen != plan.ExceptionCount {
			panic(fmt.Errorf("%w: planned %d, found %d", errs.ErrExceptionCountMismatch, plan.ExceptionCount, seen))
		}
	}

	n := len(out)
	out = growWords(out, 8*b)
	bitpack.PackBlock(block[:], out[n:], b)

	return out
}

// decodeBlock reads one block header from meta at *metaPos, unpacks the base
// values from in, patches the exceptions and stores the result in dst.
// Returns the number of payload words consumed.
func (ws *Workspace) decodeBlock(in []uint32, meta []byte, metaPos *int, dst []int32) (int, error) {
	mp := *metaPos
	if mp+2 > len(meta) {
		return 0, fmt.Errorf("%w: block header at metadata byte %d, metadata has %d bytes",
			errs.ErrTruncatedData, mp, len(meta))
	}
	b := int(meta[mp])
	exceptions := int(meta[mp+1])
	mp += 2

	if b > maxBitWidth {
		return 0, fmt.Errorf("%w: base width %d at metadata byte %d", errs.ErrInvalidBitWidth, b, mp-2)
	}

	words := 8 * b
	if words > len(in) {
		return 0, fmt.Errorf("%w: block at width %d needs %d payload words, %d remain",
			errs.ErrTruncatedData, b, words, len(in))
	}

	block := &ws.block
	bitpack.UnpackBlock(in, block[:], b)

	if exceptions > 0 {
		if mp+1+exceptions > len(meta) {
			return 0, fmt.Errorf("%w: %d exception positions at metadata byte %d, metadata has %d bytes",
				errs.ErrTruncatedData, exceptions, mp+1, len(meta))
		}
		maxBits := int(meta[mp])
		mp++

		width := maxBits - b
		if maxBits > maxBitWidth || width < 1 {
			return 0, fmt.Errorf("%w: max width %d with base width %d at metadata byte %d",
				errs.ErrInvalidBitWidth, maxBits, b, mp-1)
		}

		positions := meta[mp : mp+exceptions]
		mp += exceptions

		if width == 1 {
			bit := uint32(1) << b
			for _, p := range positions {
				block[p] |= bit
			}
		} else {
			highs, err := ws.takeExceptions(width, exceptions)
			if err != nil {
				return 0, err
			}
			for i, p := range positions {
				block[p] |= highs[i] << b
			}
		}
	}

	for i, v := range block {
		dst[i] = int32(v)
	}
	*metaPos = mp

	return words, nil
}

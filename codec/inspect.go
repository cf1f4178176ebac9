package codec

import (
	"fmt"

	"github.com/arloliu/fastpfor/endian"
	"github.com/arloliu/fastpfor/errs"
	"github.com/arloliu/fastpfor/internal/hash"
)

// StreamInfo describes the layout of an encoded stream.
type StreamInfo struct {
	// AlignedLength is the number of values framed by pages.
	AlignedLength int
	// Pages lists the pages in stream order.
	Pages []PageInfo
	// TailWords is the number of words after the last page.
	TailWords int
	// TailValues is the number of values terminated in the tail.
	TailValues int
	// TotalWords is the length of the stream in words.
	TotalWords int
	// Digest is the xxHash64 of the stream in transport byte order.
	Digest uint64
}

// Values returns the number of values described by the stream.
func (s *StreamInfo) Values() int {
	return s.AlignedLength + s.TailValues
}

// PageInfo describes one page.
type PageInfo struct {
	// Offset is the word index of the page header.
	Offset int
	// Values is the number of values framed by the page.
	Values int
	// PayloadWords is the number of packed block words.
	PayloadWords int
	// MetadataBytes is the unpadded size of the metadata blob.
	MetadataBytes int
	// Words is the total size of the page in words.
	Words int
	// Blocks holds the plan recorded for each block.
	Blocks []BlockPlan
	// ExceptionStreams lists the exception streams in ascending width order.
	ExceptionStreams []ExceptionStreamInfo
}

// ExceptionStreamInfo describes one exception stream of a page.
type ExceptionStreamInfo struct {
	Width int
	Count int
	Words int
}

// Inspect walks the pages of an encoded stream without reconstructing the
// values. It applies the same structural checks as DecodeWords and also
// verifies that the recorded block widths add up to each page's payload.
func (c *Codec) Inspect(words []uint32) (*StreamInfo, error) {
	info := &StreamInfo{
		TotalWords: len(words),
		Digest:     digestWords(words),
	}
	if len(words) == 0 {
		return info, nil
	}

	aligned := int(int32(words[0]))
	if aligned < 0 || aligned%BlockSize != 0 {
		return nil, fmt.Errorf("%w: %d is not a non-negative multiple of %d",
			errs.ErrInvalidAlignedLength, aligned, BlockSize)
	}
	info.AlignedLength = aligned

	ws := NewWorkspace()
	pos := 1
	for done := 0; done < aligned; {
		size := min(c.pageSize, aligned-done)
		page, err := ws.inspectPage(words, pos, size)
		if err != nil {
			return nil, err
		}
		info.Pages = append(info.Pages, page)
		pos += page.Words
		done += size
	}

	info.TailWords = len(words) - pos
	info.TailValues = tailValues(words[pos:])

	return info, nil
}

func (ws *Workspace) inspectPage(in []uint32, start, values int) (PageInfo, error) {
	layout, err := ws.readPageLayout(in, start, values, false)
	if err != nil {
		return PageInfo{}, err
	}

	page := PageInfo{
		Offset:        start,
		Values:        values,
		PayloadWords:  layout.payloadEnd - start - 1,
		MetadataBytes: layout.metaBytes,
		Words:         layout.end - start,
		Blocks:        make([]BlockPlan, 0, values/BlockSize),
	}

	meta := ws.meta
	mp := 0
	payload := 0
	for run := 0; run < values/BlockSize; run++ {
		if mp+2 > len(meta) {
			return PageInfo{}, fmt.Errorf("%w: page at word %d, block %d header beyond %d metadata bytes",
				errs.ErrTruncatedData, start, run, len(meta))
		}
		plan := BlockPlan{BaseBitWidth: int(meta[mp]), ExceptionCount: int(meta[mp+1])}
		mp += 2
		if plan.BaseBitWidth > maxBitWidth {
			return PageInfo{}, fmt.Errorf("%w: page at word %d, block %d base width %d",
				errs.ErrInvalidBitWidth, start, run, plan.BaseBitWidth)
		}

		plan.MaxBitWidth = plan.BaseBitWidth
		if plan.ExceptionCount > 0 {
			if mp+1+plan.ExceptionCount > len(meta) {
				return PageInfo{}, fmt.Errorf("%w: page at word %d, block %d exceptions beyond %d metadata bytes",
					errs.ErrTruncatedData, start, run, len(meta))
			}
			plan.MaxBitWidth = int(meta[mp])
			mp += 1 + plan.ExceptionCount
			if plan.MaxBitWidth > maxBitWidth || plan.ExceptionBitWidth() < 1 {
				return PageInfo{}, fmt.Errorf("%w: page at word %d, block %d max width %d with base width %d",
					errs.ErrInvalidBitWidth, start, run, plan.MaxBitWidth, plan.BaseBitWidth)
			}
		}

		payload += 8 * plan.BaseBitWidth
		page.Blocks = append(page.Blocks, plan)
	}

	if payload != page.PayloadWords {
		return PageInfo{}, fmt.Errorf("%w: page at word %d declares %d payload words, blocks need %d",
			errs.ErrPayloadSizeMismatch, start, page.PayloadWords, payload)
	}

	for k := 2; k <= maxBitWidth; k++ {
		if ws.sizes[k] == 0 {
			continue
		}
		page.ExceptionStreams = append(page.ExceptionStreams, ExceptionStreamInfo{
			Width: k,
			Count: ws.sizes[k],
			Words: streamWords(ws.sizes[k], k),
		})
	}

	return page, nil
}

func digestWords(words []uint32) uint64 {
	return hash.Words(endian.GetBigEndianEngine(), words)
}

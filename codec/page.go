package codec

import (
	"fmt"

	"github.com/arloliu/fastpfor/endian"
	"github.com/arloliu/fastpfor/errs"
)

// encodePage appends one page framing the block-aligned values to out.
func (ws *Workspace) encodePage(out []uint32, values []int32) []uint32 {
	headerPos := len(out)
	out = append(out, 0)
	ws.resetPage()

	for start := 0; start+BlockSize <= len(values); start += BlockSize {
		out = ws.encodeBlock(out, values[start:start+BlockSize])
	}
	out[headerPos] = uint32(len(out) - headerPos)

	byteSize := len(ws.meta)
	for len(ws.meta)&3 != 0 {
		ws.meta = append(ws.meta, 0)
	}
	out = append(out, uint32(byteSize))
	out = packBytesLE(out, ws.meta)

	return ws.appendExceptionStreams(out)
}

// pageLayout locates the regions of one encoded page.
type pageLayout struct {
	start      int // word index of the whereMeta header
	payloadEnd int // word index of the metadata byte size
	metaBytes  int
	bitmap     uint32
	end        int // word index after the last exception stream
}

// payload returns the packed block words of the page.
func (l pageLayout) payload(in []uint32) []uint32 {
	return in[l.start+1 : l.payloadEnd]
}

// readPageLayout parses the page starting at in[start]: it validates the
// header, loads the metadata bytes into ws.meta and reads the exception
// streams (unpacking them when unpack is set).
func (ws *Workspace) readPageLayout(in []uint32, start, pageValues int, unpack bool) (pageLayout, error) {
	ws.resetPage()

	if start >= len(in) {
		return pageLayout{}, fmt.Errorf("%w: page header at word %d, buffer has %d words",
			errs.ErrTruncatedData, start, len(in))
	}

	whereMeta := int(int32(in[start]))
	if whereMeta <= 0 || whereMeta >= len(in)-start {
		return pageLayout{}, fmt.Errorf("%w: whereMeta %d at word %d, buffer has %d words",
			errs.ErrInvalidPageHeader, whereMeta, start, len(in))
	}

	pos := start + whereMeta
	layout := pageLayout{start: start, payloadEnd: pos}

	byteSize := int(in[pos])
	pos++
	metaWords := endian.WordCount(byteSize)
	if byteSize < 0 || metaWords > len(in)-pos {
		return pageLayout{}, fmt.Errorf("%w: metadata of %d bytes at word %d, %d words remain",
			errs.ErrTruncatedData, byteSize, pos, len(in)-pos)
	}
	ws.meta = unpackBytesLE(ws.meta[:0], in[pos:pos+metaWords])[:byteSize]
	layout.metaBytes = byteSize
	pos += metaWords

	bitmap, end, err := ws.readExceptionStreams(in, pos, pageValues, unpack)
	if err != nil {
		return pageLayout{}, err
	}
	layout.bitmap = bitmap
	layout.end = end

	return layout, nil
}

// decodePage decodes len(out) values (a multiple of BlockSize) from the page
// starting at in[start] and returns the word index after the page.
func (ws *Workspace) decodePage(in []uint32, start int, out []int32) (int, error) {
	layout, err := ws.readPageLayout(in, start, len(out), true)
	if err != nil {
		return 0, err
	}

	payload := layout.payload(in)
	consumed := 0
	metaPos := 0
	for run := 0; run < len(out)/BlockSize; run++ {
		n, err := ws.decodeBlock(payload[consumed:], ws.meta, &metaPos, out[run*BlockSize:(run+1)*BlockSize])
		if err != nil {
			return 0, fmt.Errorf("page at word %d, block %d: %w", start, run, err)
		}
		consumed += n
	}

	if consumed != len(payload) {
		return 0, fmt.Errorf("%w: page at word %d declares %d payload words, blocks consumed %d",
			errs.ErrPayloadSizeMismatch, start, len(payload), consumed)
	}

	return layout.end, nil
}

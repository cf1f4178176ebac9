package codec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppendTail(t *testing.T) {
	tests := []struct {
		name   string
		values []int32
		want   []uint32
	}{
		{name: "none", values: nil, want: nil},
		{name: "zero", values: []int32{0}, want: []uint32{0x00000080}},
		{name: "largest single byte", values: []int32{127}, want: []uint32{0x000000ff}},
		{name: "smallest two byte", values: []int32{128}, want: []uint32{0x00008100}},
		{name: "three values", values: []int32{1, 2, 3}, want: []uint32{0x00838281}},
		{name: "four values fill a word", values: []int32{1, 2, 3, 4}, want: []uint32{0x84838281}},
		{name: "max int32", values: []int32{math.MaxInt32}, want: []uint32{0x7f7f7f7f, 0x00000087}},
		{name: "all bits", values: []int32{-1}, want: []uint32{0x7f7f7f7f, 0x0000008f}},
	}

	ws := NewWorkspace()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ws.appendTail(nil, tt.values)
			require.Equal(t, tt.want, got)

			out := make([]int32, len(tt.values))
			require.NoError(t, decodeTail(got, out))
			if len(tt.values) > 0 {
				require.Equal(t, tt.values, out)
			}
			require.Equal(t, len(tt.values), tailValues(got))
		})
	}
}

func TestDecodeTail_ValueSpansWords(t *testing.T) {
	// 1, 2, 3 then 300 split across the word boundary
	in := []uint32{0x2c838281, 0x00000082}
	out := make([]int32, 4)
	require.NoError(t, decodeTail(in, out))
	require.Equal(t, []int32{1, 2, 3, 300}, out)
}

func TestTailByte(t *testing.T) {
	in := []uint32{0x44332211, 0x88776655}
	for pos, want := range []byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88} {
		require.Equal(t, want, tailByte(in, pos))
	}
}

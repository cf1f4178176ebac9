package fastpfor

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/fastpfor/errs"
)

// TestEncode_Golden verifies the transport bytes of small inputs
func TestEncode_Golden(t *testing.T) {
	require.Equal(t, []byte{0, 0, 0, 0}, Encode(nil))
	require.Equal(t, []byte{0, 0, 0, 0, 0x00, 0x83, 0x82, 0x81}, Encode([]int32{1, 2, 3}))
	require.Equal(t,
		[]byte{0, 0, 0, 0, 0x7f, 0x7f, 0x7f, 0x7f, 0, 0, 0, 0x8f},
		Encode([]int32{-1}))
}

// TestRoundTrip verifies Encode and Decode across block and page boundaries
func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for _, n := range []int{0, 1, 100, 256, 300, 5000, 70000} {
		values := make([]int32, n)
		for i := range values {
			values[i] = int32(rng.Intn(1 << 16))
			if i%200 == 0 {
				values[i] = int32(rng.Uint32())
			}
		}

		data := Encode(values)
		offset := 0
		decoded, err := Decode(data, n, len(data), &offset)
		require.NoError(t, err)
		require.Equal(t, values, decoded)
		require.Equal(t, len(data), offset)
	}
}

// TestAppendEncode_SharedBuffer verifies several regions decode from one buffer
func TestAppendEncode_SharedBuffer(t *testing.T) {
	regions := [][]int32{
		{9, 8, 7},
		make([]int32, 512),
		{-1, 0, 1 << 30},
	}

	var (
		buf     []byte
		lengths []int
	)
	for _, r := range regions {
		before := len(buf)
		buf = AppendEncode(buf, r)
		lengths = append(lengths, len(buf)-before)
	}

	ws := NewWorkspace()
	offset := 0
	for i, r := range regions {
		decoded, err := DecodeWithWorkspace(ws, buf, len(r), lengths[i], &offset)
		require.NoError(t, err)
		require.Equal(t, r, decoded)
	}
	require.Equal(t, len(buf), offset)
}

// TestDecodeInto_NoAllocations verifies a warmed-up workspace decodes into a caller buffer without allocating
func TestDecodeInto_NoAllocations(t *testing.T) {
	values := make([]int32, 3*256+40)
	for i := range values {
		values[i] = int32(i % 64)
	}
	values[10] = 1 << 25
	values[300] = -1
	data := Encode(values)

	ws := NewWorkspace()
	out := make([]int32, len(values))
	offset := 0
	require.NoError(t, DecodeInto(ws, data, out, len(data), &offset))
	require.Equal(t, values, out)
	require.Equal(t, len(data), offset)

	allocs := testing.AllocsPerRun(20, func() {
		offset := 0
		if err := DecodeInto(ws, data, out, len(data), &offset); err != nil {
			t.Fatal(err)
		}
	})
	require.Zero(t, allocs)

	require.ErrorIs(t, DecodeInto(ws, data, make([]int32, len(values)+1), len(data), nil), errs.ErrTailCountMismatch)
}

// TestDecode_Errors verifies errors surface as errs sentinels
func TestDecode_Errors(t *testing.T) {
	data := Encode([]int32{1, 2, 3})

	_, err := Decode(data, 3, len(data)+1, nil)
	require.ErrorIs(t, err, errs.ErrInvalidByteRange)

	_, err = Decode(data, 5, len(data), nil)
	require.ErrorIs(t, err, errs.ErrTailCountMismatch)

	_, err = Decode([]byte{0, 0, 0, 100}, 256, 4, nil)
	require.ErrorIs(t, err, errs.ErrInvalidAlignedLength)
}

// TestConcurrentUse verifies pooled workspaces are not shared between goroutines
func TestConcurrentUse(t *testing.T) {
	inputs := make([][]int32, 8)
	digests := make([]uint64, len(inputs))
	for i := range inputs {
		rng := rand.New(rand.NewSource(int64(i)))
		inputs[i] = make([]int32, 1000+i*700)
		for j := range inputs[i] {
			inputs[i][j] = int32(rng.Uint32() >> uint(rng.Intn(32)))
		}
		digests[i] = xxhash.Sum64(Encode(inputs[i]))
	}

	var wg sync.WaitGroup
	for g := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for round := range 20 {
				i := (g + round) % len(inputs)
				data := Encode(inputs[i])
				if xxhash.Sum64(data) != digests[i] {
					t.Errorf("goroutine %d: digest mismatch for input %d", g, i)
					return
				}
				decoded, err := Decode(data, len(inputs[i]), len(data), nil)
				if err != nil {
					t.Errorf("goroutine %d: %v", g, err)
					return
				}
				if len(decoded) != len(inputs[i]) {
					t.Errorf("goroutine %d: decoded %d values, want %d", g, len(decoded), len(inputs[i]))
					return
				}
			}
		}()
	}
	wg.Wait()
}

// TestInspect verifies the facade reports the stream layout of encoded bytes
func TestInspect(t *testing.T) {
	values := make([]int32, 600)
	for i := range values {
		values[i] = int32(i % 16)
	}
	values[50] = 1 << 20

	data := Encode(values)
	info, err := Inspect(data)
	require.NoError(t, err)
	require.Equal(t, 512, info.AlignedLength)
	require.Equal(t, len(values), info.Values())
	require.Equal(t, len(data)/4, info.TotalWords)
	require.Equal(t, xxhash.Sum64(data), info.Digest)
	require.Len(t, info.Pages, 1)
	require.Equal(t, 1, info.Pages[0].Blocks[0].ExceptionCount)
	require.Zero(t, info.Pages[0].Blocks[1].ExceptionCount)

	_, err = Inspect([]byte{0, 0, 1, 0, 0, 0, 0, 0})
	require.ErrorIs(t, err, errs.ErrInvalidPageHeader)
}

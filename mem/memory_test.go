package mem

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocate_ZeroBytesRejected(t *testing.T) {
	m, err := Allocate(0, false, false)
	require.ErrorIs(t, err, ErrEmptyAllocation)
	require.Nil(t, m)
}

func TestAllocate_SmallIs64ByteAligned(t *testing.T) {
	m, err := Allocate(100, false, false)
	require.NoError(t, err, "Allocate should succeed")
	defer func() { _ = m.Free() }()

	assert.Equal(t, 100, m.Len(), "Len must report the exact request")
	assert.False(t, m.IsEmpty())
	assert.Zero(t, uintptr(m.Ptr())%CacheLineAlignment, "address must be 64-byte aligned")
	assert.Zero(t, m.Flags()&FlagHugePages, "no huge-page flag for a 100-byte region")
	assert.Zero(t, m.Flags()&FlagSequential, "no sequential flag unless requested")
}

func TestAllocate_HugeMultipleIs2MiBAligned(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 4 MiB allocation in short mode")
	}
	const size = 2 * HugePageSize // 4,194,304 bytes

	m, err := Allocate(size, true, true)
	require.NoError(t, err, "Allocate should succeed")
	defer func() { _ = m.Free() }()

	assert.Equal(t, size, m.Len())
	assert.Zero(t, uintptr(m.Ptr())%HugePageSize, "address must be 2 MiB aligned")
	assert.NotZero(t, m.Flags()&FlagHugePages, "huge-page path must be recorded")
	assert.NotZero(t, m.Flags()&FlagSequential, "sequential intent must be recorded")

	for i, b := range m.Bytes() {
		if b != 0 {
			t.Fatalf("byte %d not zero after clear: %#x", i, b)
		}
	}
}

func TestAllocate_ClearZeroesSmallRegion(t *testing.T) {
	m, err := Allocate(100, false, true)
	require.NoError(t, err)
	defer func() { _ = m.Free() }()

	for i, b := range m.Bytes() {
		assert.Zero(t, b, "byte %d should be zero", i)
	}
}

func TestAllocate_SequentialFlagRecorded(t *testing.T) {
	m, err := Allocate(4096, true, false)
	require.NoError(t, err)
	defer func() { _ = m.Free() }()

	assert.NotZero(t, m.Flags()&FlagSequential)
}

func TestFree_ReleasesExactlyOnce(t *testing.T) {
	m, err := Allocate(4096, false, false)
	require.NoError(t, err)

	require.NoError(t, m.Free(), "first Free should succeed")
	assert.True(t, m.IsEmpty(), "released handle should be empty")
	assert.Zero(t, m.Len())
	assert.Nil(t, m.Ptr())

	// A released handle is inert; a second Free is a no-op.
	require.NoError(t, m.Free())
}

func TestFree_NilHandle(t *testing.T) {
	var m *Memory
	require.NoError(t, m.Free())
	assert.True(t, m.IsEmpty())
}

func TestSlice_WriteThenReadBack(t *testing.T) {
	m, err := Allocate(4096, false, true)
	require.NoError(t, err)
	defer func() { _ = m.Free() }()

	data := Slice[float32](m)
	require.Len(t, data, 4096/4)
	data[0] = 1.234
	data[1] = 5.678

	view := Slice[float32](m)
	assert.InDelta(t, 1.234, view[0], 1e-6, "index 0 must round-trip")
	assert.InDelta(t, 5.678, view[1], 1e-6, "index 1 must round-trip")
	assert.Zero(t, view[2], "untouched element of a cleared region is zero")
}

func TestSlice_TruncatesTrailingPartialElement(t *testing.T) {
	m, err := Allocate(100, false, false)
	require.NoError(t, err)
	defer func() { _ = m.Free() }()

	// 100 / 8 = 12 whole elements; the last 4 bytes stay owned but
	// invisible through the view.
	assert.Len(t, Slice[uint64](m), 12)
	assert.Len(t, Slice[byte](m), 100)
}

func TestSlice_SmallerThanElementIsNil(t *testing.T) {
	m, err := Allocate(4, false, false)
	require.NoError(t, err)
	defer func() { _ = m.Free() }()

	assert.Nil(t, Slice[uint64](m))
}

func TestDetachAdopt_TransfersOwnership(t *testing.T) {
	m, err := Allocate(4096, false, true)
	require.NoError(t, err)

	addr, n, flags := m.Detach()
	require.NotNil(t, addr)
	require.Equal(t, 4096, n)
	assert.True(t, m.IsEmpty(), "detached handle is inert")
	require.NoError(t, m.Free(), "Free of a detached handle is a no-op")

	// The detached region is still live and writable.
	raw := unsafe.Slice((*byte)(addr), n)
	raw[0] = 0x42

	adopted := Adopt(addr, n, flags)
	require.Equal(t, n, adopted.Len())
	assert.Equal(t, byte(0x42), adopted.Bytes()[0])
	require.NoError(t, adopted.Free())
}

func TestAdopt_NilAddress(t *testing.T) {
	m := Adopt(nil, 0, 0)
	require.NotNil(t, m)
	assert.True(t, m.IsEmpty())
	require.NoError(t, m.Free())
}

package mem

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/joshuapare/memkit/internal/rawalloc"
)

// Allocation flag bits recorded in a handle's flags word. The flags
// identify the allocation path and are the required input to the
// matching free; they are opaque to callers and must be echoed back
// verbatim across the FFI boundary.
const (
	// FlagHugePages indicates the region was requested with
	// huge/large page backing.
	FlagHugePages = rawalloc.FlagHugePages

	// FlagSequential indicates the region was advised for mainly
	// sequential rather than random access.
	FlagSequential = rawalloc.FlagSequential
)

// Memory owns exactly one raw allocation and releases it exactly once,
// either through Free or through a garbage collection cleanup when the
// handle leaks.
//
// A Memory must not be copied by value; two copies would both claim
// ownership of the same region.
type Memory struct {
	region  rawalloc.Region
	cleanup runtime.Cleanup
}

// Allocate reserves numBytes bytes of alignment-optimized memory.
//
// The alignment is decided by [HintFor]: multiples of 2 MiB are placed
// on 2 MiB boundaries with huge/large page backing requested,
// everything else on 64-byte boundaries. The huge-page request never
// fails the allocation; platforms without support fall back to
// standard pages at the same alignment.
//
// When clearMem is true, every byte of the region is explicitly
// zeroed before the handle is returned, independent of any zeroing the
// platform primitive performs. When sequential is true, a best-effort
// kernel advisory marks the region for sequential access; advisory
// failures are ignored.
//
// A zero-byte request returns [ErrEmptyAllocation] without any
// platform call. Platform failures return an error matching
// [ErrAllocFailed] with the cause attached.
func Allocate(numBytes int, sequential, clearMem bool) (*Memory, error) {
	if numBytes <= 0 {
		return nil, ErrEmptyAllocation
	}

	hint := HintFor(numBytes)
	region, err := rawalloc.Alloc(numBytes, hint.HugePages, clearMem)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAllocFailed, err)
	}

	// Advise after zero-fill: the fill itself is a sequential pass and
	// must not run under a random-access advisory.
	if sequential {
		rawalloc.AdviseSequential(region.Data)
		region.Flags |= rawalloc.FlagSequential
	}

	return wrap(region), nil
}

func wrap(region rawalloc.Region) *Memory {
	m := &Memory{region: region}
	m.cleanup = runtime.AddCleanup(m, releaseRegion, region)
	return m
}

func releaseRegion(region rawalloc.Region) {
	_ = rawalloc.Free(region)
}

// Free releases the underlying allocation using the flags captured at
// allocation time. Free on an already released handle is a no-op.
// Views and pointers obtained from the handle become invalid and must
// not be used after Free returns.
func (m *Memory) Free() error {
	if m == nil || m.region.Data == nil {
		return nil
	}
	m.cleanup.Stop()
	region := m.region
	m.region = rawalloc.Region{}
	return rawalloc.Free(region)
}

// Len returns the number of usable bytes, exactly as requested at
// allocation time. A released handle reports zero.
func (m *Memory) Len() int {
	if m == nil {
		return 0
	}
	return len(m.region.Data)
}

// IsEmpty reports whether the handle holds no bytes, either because it
// was released or because it was never allocated.
func (m *Memory) IsEmpty() bool {
	return m.Len() == 0
}

// Bytes returns the raw byte view of the region. The slice must not be
// retained past Free.
func (m *Memory) Bytes() []byte {
	if m == nil {
		return nil
	}
	return m.region.Data
}

// Flags returns the allocation flags captured at allocation time.
func (m *Memory) Flags() uint32 {
	if m == nil {
		return 0
	}
	return m.region.Flags
}

// Ptr returns the base address of the region, or nil for a released
// handle. The pointer must not be dereferenced past Free.
func (m *Memory) Ptr() unsafe.Pointer {
	if m == nil || len(m.region.Data) == 0 {
		return nil
	}
	return unsafe.Pointer(&m.region.Data[0])
}

// Detach transfers ownership of the allocation to the caller and
// leaves the handle inert. The caller becomes responsible for passing
// the exact triple back to [Adopt] (or to the FFI free entry point)
// to release it; the handle's own release paths are disarmed.
func (m *Memory) Detach() (addr unsafe.Pointer, numBytes int, flags uint32) {
	if m == nil || m.region.Data == nil {
		return nil, 0, 0
	}
	m.cleanup.Stop()
	region := m.region
	m.region = rawalloc.Region{}
	return unsafe.Pointer(&region.Data[0]), len(region.Data), region.Flags
}

// Adopt wraps a raw allocation previously produced by [Memory.Detach]
// or by this library's FFI allocate entry point back into an owning
// handle. Passing a triple that did not originate from this library,
// or adopting the same allocation twice, violates the ownership
// contract and is not detected.
func Adopt(addr unsafe.Pointer, numBytes int, flags uint32) *Memory {
	if addr == nil || numBytes <= 0 {
		return &Memory{}
	}
	region := rawalloc.Region{
		Data:  unsafe.Slice((*byte)(addr), numBytes),
		Flags: flags,
	}
	return wrap(region)
}

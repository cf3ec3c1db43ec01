// Package mem allocates large, alignment-optimized memory regions
// outside the Go heap and wraps each one in an owning handle.
//
// # Overview
//
// Allocations are sized-driven: a request whose byte count is a
// positive multiple of 2 MiB is placed on a natural 2 MiB boundary and
// huge/large page backing is requested from the platform; every other
// request is placed on a 64-byte boundary, which suits cache lines and
// wide SIMD loads. The huge-page request is best-effort and degrades
// to standard pages when the platform has no support, without failing
// the allocation. The alignment guarantee always holds.
//
// The caller can additionally ask for the region to be zero-filled and
// for a sequential-access advisory to be issued to the kernel. The
// advisory is best-effort as well; a platform that cannot apply it
// simply ignores the request.
//
// # Ownership
//
// Each successful allocation is owned by exactly one [Memory] handle.
// The handle releases the region through [Memory.Free]; a garbage
// collection cleanup releases regions whose handles leak without an
// explicit Free. Handles must not be copied by value; pass the
// pointer. Views obtained from a handle must not outlive it.
//
// The flags captured at allocation time select the matching release
// path. They are never recomputed from the size.
//
// # Usage Example
//
//	// Allocate 4 MiB of aligned, zeroed, sequential-read memory.
//	m, err := mem.Allocate(4*1024*1024, true, true)
//	if err != nil {
//	    return err
//	}
//	defer m.Free()
//
//	data := mem.Slice[float32](m)
//	data[0] = 1.234
//	data[1] = 5.678
//
// # Thread Safety
//
// Handles share no state with each other; concurrent use of distinct
// handles needs no synchronization. A single handle is not safe for
// concurrent mutation, like any Go value.
//
// # Related Packages
//
//   - github.com/joshuapare/memkit/internal/rawalloc: platform allocation primitives
//   - github.com/joshuapare/memkit/ffi: fixed-layout record for foreign callers
package mem

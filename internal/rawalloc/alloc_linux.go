//go:build linux

package rawalloc

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Alloc maps an anonymous region of exactly numBytes bytes.
//
// With hugePages set (and a huge-page-multiple size), an explicit
// MAP_HUGETLB mapping is attempted first; it guarantees both 2 MiB
// alignment and huge-page backing. When the hugetlb pool is empty or
// unconfigured the allocation falls back to a 2 MiB-aligned standard
// mapping plus a transparent-huge-page advisory. The huge-page request
// itself never fails the allocation.
func Alloc(numBytes int, hugePages, clearMem bool) (Region, error) {
	if numBytes <= 0 {
		return Region{}, fmt.Errorf("rawalloc: non-positive allocation size %d", numBytes)
	}

	if hugePages && numBytes%hugePageSize == 0 {
		r, err := allocHugeTLB(numBytes)
		if err != nil {
			r, err = allocAligned(numBytes, hugePageSize)
			if err != nil {
				return Region{}, err
			}
			r.Flags |= FlagHugePages
			// Hint before faulting the pages in, so the kernel can
			// serve the first faults with huge pages directly instead
			// of waiting for khugepaged to promote them.
			AdviseHugePages(r.Data)
		}
		if clearMem {
			zeroFill(r.Data)
		}
		return r, nil
	}

	r, err := allocAligned(numBytes, cacheLineAlign)
	if err != nil {
		return Region{}, err
	}
	if clearMem {
		zeroFill(r.Data)
	}
	return r, nil
}

func allocHugeTLB(numBytes int) (Region, error) {
	p, err := unix.MmapPtr(-1, 0, nil, uintptr(numBytes), mmapProt, mmapFlags|unix.MAP_HUGETLB)
	if err != nil {
		return Region{}, fmt.Errorf("rawalloc: hugetlb mmap of %d bytes failed: %w", numBytes, err)
	}
	return Region{
		Data:  unsafe.Slice((*byte)(p), numBytes),
		Flags: FlagHugePages | flagExplicitHuge,
	}, nil
}

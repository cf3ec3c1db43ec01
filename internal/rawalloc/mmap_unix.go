//go:build unix

package rawalloc

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

const (
	mmapProt  = unix.PROT_READ | unix.PROT_WRITE
	mmapFlags = unix.MAP_PRIVATE | unix.MAP_ANON
)

// allocAligned maps an anonymous region of exactly numBytes bytes
// whose base address is a multiple of align.
//
// Alignments up to the page size come for free from mmap. Larger
// alignments over-allocate by align bytes and unmap the misaligned
// head and the unused tail, leaving only the aligned range mapped, so
// the matching munmap needs nothing beyond the region itself.
func allocAligned(numBytes, align int) (Region, error) {
	if align <= os.Getpagesize() {
		p, err := unix.MmapPtr(-1, 0, nil, uintptr(numBytes), mmapProt, mmapFlags)
		if err != nil {
			return Region{}, fmt.Errorf("rawalloc: mmap of %d bytes failed: %w", numBytes, err)
		}
		return Region{Data: unsafe.Slice((*byte)(p), numBytes)}, nil
	}

	total := numBytes + align
	p, err := unix.MmapPtr(-1, 0, nil, uintptr(total), mmapProt, mmapFlags)
	if err != nil {
		return Region{}, fmt.Errorf("rawalloc: mmap of %d bytes failed: %w", total, err)
	}

	// head and tail are page multiples because both the mapping base
	// and align are page-aligned.
	head := int((uintptr(align) - uintptr(p)%uintptr(align)) % uintptr(align))
	tail := align - head
	aligned := unsafe.Add(p, head)
	if head > 0 {
		_ = unix.MunmapPtr(p, uintptr(head))
	}
	if tail > 0 {
		_ = unix.MunmapPtr(unsafe.Add(aligned, numBytes), uintptr(tail))
	}
	return Region{Data: unsafe.Slice((*byte)(aligned), numBytes)}, nil
}

// Free releases a region produced by Alloc. The release primitive is
// selected from the region's flags; the size is only the unmap length.
// Freeing the same region twice, or a region not produced by Alloc, is
// a contract violation and is not detected.
func Free(r Region) error {
	if r.Data == nil {
		return nil
	}
	p := unsafe.Pointer(&r.Data[0])
	length := uintptr(len(r.Data))
	if r.Flags&flagExplicitHuge != 0 {
		// Explicit huge mappings were created whole and their length
		// is a huge-page multiple; unmap the full mapping.
		if err := unix.MunmapPtr(p, length); err != nil {
			return fmt.Errorf("rawalloc: hugetlb munmap failed: %w", err)
		}
		return nil
	}
	if err := unix.MunmapPtr(p, length); err != nil {
		return fmt.Errorf("rawalloc: munmap failed: %w", err)
	}
	return nil
}

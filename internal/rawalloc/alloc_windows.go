//go:build windows

package rawalloc

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// alignAttempts bounds the reserve/release/commit retry loop used to
// obtain a 2 MiB-aligned address. Another thread can map the probed
// address between the release and the commit, so the loop retries.
const alignAttempts = 16

// Alloc commits a region of exactly numBytes bytes via VirtualAlloc.
//
// With hugePages set (and a huge-page-multiple size), MEM_LARGE_PAGES
// is attempted first; it requires SeLockMemoryPrivilege and usually
// fails for unprivileged processes, in which case the allocation falls
// back to a standard commit at a 2 MiB-aligned address. The large-page
// request itself never fails the allocation.
func Alloc(numBytes int, hugePages, clearMem bool) (Region, error) {
	if numBytes <= 0 {
		return Region{}, fmt.Errorf("rawalloc: non-positive allocation size %d", numBytes)
	}

	if hugePages && numBytes%hugePageSize == 0 {
		r, err := allocLargePages(numBytes)
		if err != nil {
			r, err = allocAlignedCommit(numBytes, hugePageSize)
			if err != nil {
				return Region{}, err
			}
			r.Flags |= FlagHugePages
		}
		if clearMem {
			zeroFill(r.Data)
		}
		return r, nil
	}

	// VirtualAlloc bases are 64 KiB-granular, well past the 64-byte
	// requirement.
	addr, err := windows.VirtualAlloc(0, uintptr(numBytes),
		windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return Region{}, fmt.Errorf("rawalloc: VirtualAlloc of %d bytes failed: %w", numBytes, err)
	}
	r := Region{Data: unsafe.Slice((*byte)(unsafe.Pointer(addr)), numBytes)}
	if clearMem {
		zeroFill(r.Data)
	}
	return r, nil
}

func allocLargePages(numBytes int) (Region, error) {
	addr, err := windows.VirtualAlloc(0, uintptr(numBytes),
		windows.MEM_COMMIT|windows.MEM_RESERVE|windows.MEM_LARGE_PAGES, windows.PAGE_READWRITE)
	if err != nil {
		return Region{}, fmt.Errorf("rawalloc: large-page VirtualAlloc of %d bytes failed: %w", numBytes, err)
	}
	return Region{
		Data:  unsafe.Slice((*byte)(unsafe.Pointer(addr)), numBytes),
		Flags: FlagHugePages | flagExplicitHuge,
	}, nil
}

// allocAlignedCommit obtains an aligned base by reserving an oversized
// range, releasing it, and committing at the aligned address inside
// the hole. The release/commit pair can race other mappers, so it
// retries a bounded number of times.
func allocAlignedCommit(numBytes, align int) (Region, error) {
	var lastErr error
	for range alignAttempts {
		probe, err := windows.VirtualAlloc(0, uintptr(numBytes+align),
			windows.MEM_RESERVE, windows.PAGE_NOACCESS)
		if err != nil {
			return Region{}, fmt.Errorf("rawalloc: reserve of %d bytes failed: %w", numBytes+align, err)
		}
		aligned := (probe + uintptr(align-1)) &^ uintptr(align-1)
		if err := windows.VirtualFree(probe, 0, windows.MEM_RELEASE); err != nil {
			return Region{}, fmt.Errorf("rawalloc: release of probe reservation failed: %w", err)
		}
		addr, err := windows.VirtualAlloc(aligned, uintptr(numBytes),
			windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
		if err == nil {
			return Region{Data: unsafe.Slice((*byte)(unsafe.Pointer(addr)), numBytes)}, nil
		}
		lastErr = err
	}
	return Region{}, fmt.Errorf("rawalloc: aligned commit failed after %d attempts: %w", alignAttempts, lastErr)
}

// Free releases a region produced by Alloc. Both the large-page and
// the aligned path commit at the region base, so VirtualFree releases
// the whole reservation from it. Freeing the same region twice, or a
// region not produced by Alloc, is a contract violation and is not
// detected.
func Free(r Region) error {
	if r.Data == nil {
		return nil
	}
	addr := uintptr(unsafe.Pointer(&r.Data[0]))
	if err := windows.VirtualFree(addr, 0, windows.MEM_RELEASE); err != nil {
		if r.Flags&flagExplicitHuge != 0 {
			return fmt.Errorf("rawalloc: large-page VirtualFree failed: %w", err)
		}
		return fmt.Errorf("rawalloc: VirtualFree failed: %w", err)
	}
	return nil
}

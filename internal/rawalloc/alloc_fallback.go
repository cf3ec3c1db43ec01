//go:build !unix && !windows

package rawalloc

import (
	"fmt"
	"unsafe"
)

// Alloc falls back to heap-backed memory on platforms without a
// mapping primitive. Alignment comes from over-allocating a byte slice
// and slicing at the first aligned offset; the huge-page request
// degrades to plain memory at the same alignment.
func Alloc(numBytes int, hugePages, clearMem bool) (Region, error) {
	if numBytes <= 0 {
		return Region{}, fmt.Errorf("rawalloc: non-positive allocation size %d", numBytes)
	}

	align := cacheLineAlign
	var flags uint32
	if hugePages && numBytes%hugePageSize == 0 {
		align = hugePageSize
		flags = FlagHugePages
	}

	buf := make([]byte, numBytes+align)
	off := int((uintptr(align) - uintptr(unsafe.Pointer(&buf[0]))%uintptr(align)) % uintptr(align))
	data := buf[off : off+numBytes : off+numBytes]
	if clearMem {
		// make() already zeroed the slice; keep the explicit fill so
		// the clear contract does not depend on the backing path.
		zeroFill(data)
	}
	return Region{Data: data, Flags: flags}, nil
}

// Free is a no-op: heap-backed regions are reclaimed by the garbage
// collector once the region slice is dropped.
func Free(r Region) error {
	return nil
}

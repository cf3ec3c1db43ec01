//go:build unix && !linux

package rawalloc

import "fmt"

// Alloc maps an anonymous region of exactly numBytes bytes.
//
// Non-Linux unix platforms have no MAP_HUGETLB equivalent this package
// drives; a huge-page request degrades to a standard mapping at the
// same 2 MiB alignment, so the alignment guarantee still holds.
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

	r, err := allocAligned(numBytes, align)
	if err != nil {
		return Region{}, err
	}
	r.Flags |= flags
	if clearMem {
		zeroFill(r.Data)
	}
	return r, nil
}

//go:build unix

package rawalloc

import (
	"os"
	"testing"
	"unsafe"
)

// The over-allocate-and-trim path only engages for alignments beyond
// the page size; exercise it directly so a hugetlb-capable machine
// cannot mask a trim bug in TestAllocHugePageAligned.
func TestAllocAlignedTrimsToBoundary(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 2 MiB mapping in short mode")
	}
	r, err := allocAligned(hugePageSize, hugePageSize)
	if err != nil {
		t.Fatalf("allocAligned: %v", err)
	}
	addr := uintptr(unsafe.Pointer(&r.Data[0]))
	if addr%hugePageSize != 0 {
		t.Fatalf("address %#x not 2 MiB aligned", addr)
	}
	if len(r.Data) != hugePageSize {
		t.Fatalf("len mismatch: got %d want %d", len(r.Data), hugePageSize)
	}
	// The trimmed mapping must be fully accessible.
	for off := 0; off < len(r.Data); off += os.Getpagesize() {
		r.Data[off] = byte(off)
	}
	if err := Free(r); err != nil {
		t.Fatalf("Free: %v", err)
	}
}

func TestAllocSubPageAlignmentUsesPlainMapping(t *testing.T) {
	r, err := allocAligned(100, cacheLineAlign)
	if err != nil {
		t.Fatalf("allocAligned: %v", err)
	}
	if addr := uintptr(unsafe.Pointer(&r.Data[0])); addr%uintptr(os.Getpagesize()) != 0 {
		t.Fatalf("mmap base %#x not page aligned", addr)
	}
	if err := Free(r); err != nil {
		t.Fatalf("Free: %v", err)
	}
}

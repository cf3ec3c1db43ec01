//go:build linux

package rawalloc

import "golang.org/x/sys/unix"

// AdviseSequential asks the kernel to treat the region as sequentially
// accessed, enabling aggressive read-ahead. Best-effort: errors are
// ignored, the advisory never affects the allocation itself.
func AdviseSequential(data []byte) {
	if len(data) == 0 {
		return
	}
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)
}

// AdviseHugePages asks the kernel to back the region with transparent
// huge pages. Best-effort: kernels built without THP return an error,
// which is ignored.
func AdviseHugePages(data []byte) {
	if len(data) == 0 {
		return
	}
	_ = unix.Madvise(data, unix.MADV_HUGEPAGE)
}

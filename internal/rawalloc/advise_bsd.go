//go:build darwin || freebsd || netbsd || openbsd

package rawalloc

import "golang.org/x/sys/unix"

// AdviseSequential asks the kernel to treat the region as sequentially
// accessed. Best-effort: errors are ignored.
func AdviseSequential(data []byte) {
	if len(data) == 0 {
		return
	}
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)
}

// AdviseHugePages is a no-op: there is no transparent-huge-page
// madvise on the BSDs or Darwin.
func AdviseHugePages(data []byte) {}

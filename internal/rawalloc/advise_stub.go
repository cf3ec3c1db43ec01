//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd

package rawalloc

// AdviseSequential is a no-op on platforms without a supported madvise. The
// advisory is best-effort by contract.
func AdviseSequential(data []byte) {}

// AdviseHugePages is a no-op on platforms without a supported madvise.
func AdviseHugePages(data []byte) {}

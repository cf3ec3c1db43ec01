package mem

import "unsafe"

// Slice returns a typed view of the handle's bytes as elements of T.
//
// The view is backed by the allocation itself; writes through it are
// visible to every other view of the same handle. Its length is
// Len()/sizeof(T) by integer division; trailing bytes that do not fill
// a whole element are inaccessible through the view but remain owned
// and are freed with the handle.
//
// The base address is at least 64-byte aligned, so any element type
// with natural alignment is safe. The view must not be retained past
// the handle's Free.
func Slice[T any](m *Memory) []T {
	var elem T
	size := int(unsafe.Sizeof(elem))
	if size == 0 || m.Len() < size {
		return nil
	}
	return unsafe.Slice((*T)(m.Ptr()), m.Len()/size)
}

package ffi

import (
	"errors"
	"unsafe"

	"github.com/joshuapare/memkit/mem"
)

// Allocation status codes reported in Block.Status.
const (
	// StatusOK marks a valid block.
	StatusOK uint32 = 0

	// StatusEmpty marks a rejected zero-byte request.
	StatusEmpty uint32 = 1 << 0

	// StatusAllocFailed marks a failed platform allocation.
	StatusAllocFailed uint32 = 1 << 1
)

// Block is the fixed-layout allocation record exchanged by value
// across the C boundary. All fields except the pointed-to bytes are
// immutable after creation; when Status is nonzero the other fields
// are meaningless and Address is nil.
type Block struct {
	Status   uint32
	Flags    uint32
	NumBytes uintptr
	Address  unsafe.Pointer
}

// AllocateBlock allocates numBytes bytes of alignment-optimized memory
// and returns its record. The alignment policy, zero-fill, and
// sequential advisory behave exactly as in [mem.Allocate]; failures
// come back as a nonzero Status with a nil Address, never as a panic.
//
// The caller owns the block and must release it with [FreeBlock],
// passing the record back unmodified.
func AllocateBlock(numBytes uintptr, sequential, clearMem bool) Block {
	size := int(numBytes)
	if size < 0 {
		// Wider than the native int: the platform cannot map it.
		return Block{Status: StatusAllocFailed}
	}

	m, err := mem.Allocate(size, sequential, clearMem)
	if err != nil {
		if errors.Is(err, mem.ErrEmptyAllocation) {
			return Block{Status: StatusEmpty}
		}
		return Block{Status: StatusAllocFailed}
	}

	addr, n, flags := m.Detach()
	return Block{
		Status:   StatusOK,
		Flags:    flags,
		NumBytes: uintptr(n),
		Address:  addr,
	}
}

// FreeBlock releases a block produced by [AllocateBlock]. Blocks with
// a nonzero Status carry no memory and are ignored. The release path
// is selected from the echoed flags; passing a block that did not
// originate from AllocateBlock, or passing one twice, is a contract
// violation that cannot be detected here.
func FreeBlock(b Block) {
	if b.Status != StatusOK || b.Address == nil {
		return
	}
	_ = mem.Adopt(b.Address, int(b.NumBytes), b.Flags).Free()
}

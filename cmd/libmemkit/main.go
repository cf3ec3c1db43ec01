// Command libmemkit builds the C-callable form of the library:
//
//	go build -buildmode=c-shared -o libmemkit.so ./cmd/libmemkit
//
// The exported surface is three functions over one fixed-layout
// record; see ffi for the contract. The caller must pass the exact
// record received from memkit_allocate, unmodified, to memkit_free.
package main

/*
#include <stdbool.h>
#include <stddef.h>
#include <stdint.h>

// Field-for-field mirror of ffi.Block.
typedef struct memkit_block {
	uint32_t status;
	uint32_t flags;
	size_t   num_bytes;
	void    *address;
} memkit_block;
*/
import "C"

import (
	"unsafe"

	"github.com/joshuapare/memkit/ffi"
)

// One static, NUL-terminated copy for the lifetime of the process;
// memkit_version hands out the same pointer on every call.
var cVersion = C.CString(ffi.LibraryVersion())

//export memkit_version
func memkit_version() *C.char {
	return cVersion
}

//export memkit_allocate
func memkit_allocate(numBytes C.size_t, sequential, clearMem C.bool) C.memkit_block {
	b := ffi.AllocateBlock(uintptr(numBytes), bool(sequential), bool(clearMem))
	return C.memkit_block{
		status:    C.uint32_t(b.Status),
		flags:     C.uint32_t(b.Flags),
		num_bytes: C.size_t(b.NumBytes),
		address:   b.Address,
	}
}

//export memkit_free
func memkit_free(block C.memkit_block) {
	ffi.FreeBlock(ffi.Block{
		Status:   uint32(block.status),
		Flags:    uint32(block.flags),
		NumBytes: uintptr(block.num_bytes),
		Address:  unsafe.Pointer(block.address),
	})
}

func main() {}

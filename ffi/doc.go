// Package ffi is the pure-Go side of the library's C ABI: a
// fixed-layout allocation record and the allocate/free/version entry
// points that operate on it. The cgo shim in cmd/libmemkit exports
// these verbatim when the library is built with -buildmode=c-shared.
//
// # Record layout
//
// Block matches this C struct field for field:
//
//	typedef struct memkit_block {
//	    uint32_t status;     // 0 = success, nonzero = failure code
//	    uint32_t flags;      // opaque; echo back verbatim to free
//	    size_t   num_bytes;  // pointer-sized byte count
//	    void    *address;    // NULL iff status != 0
//	} memkit_block;
//
// num_bytes is pointer-sized, not 32-bit: regions larger than 4 GiB
// are in scope for this library and a 32-bit count cannot carry them.
//
// # Ownership
//
// The adapter owns nothing on the caller's behalf. The exact Block
// value returned by AllocateBlock, flags included, must be passed back
// unmodified to FreeBlock, at most once. Forged, altered, or already
// freed blocks cannot be detected here and violate the contract.
package ffi

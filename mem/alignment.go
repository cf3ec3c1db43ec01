package mem

// Alignment boundaries used by the allocation policy.
const (
	// HugePageSize is the conventional 2 MiB huge/large page size.
	HugePageSize = 2 * 1024 * 1024

	// CacheLineAlignment is the 64-byte boundary chosen for
	// allocations that do not qualify for huge pages. 64 bytes covers
	// modern cache lines and both AVX-2 and AVX-512 operand widths.
	CacheLineAlignment = 64
)

// AlignmentHint controls a subsequent allocation.
type AlignmentHint struct {
	// Alignment is the byte boundary the base address must be a
	// multiple of. Always a power of two.
	Alignment int

	// HugePages reports whether huge/large page backing should be
	// requested for the allocation.
	HugePages bool
}

// HintFor returns the optimal alignment for an allocation of numBytes.
//
// If numBytes is a positive multiple of 2 MiB, a natural 2 MiB
// boundary is selected and a hint for huge/large pages is issued. In
// any other case a 64-byte boundary is produced.
//
// The hint has no side effects and the same input always yields the
// same hint. Deallocation does not consult the policy again; the flags
// captured at allocation time drive the release path instead.
func HintFor(numBytes int) AlignmentHint {
	if numBytes > 0 && numBytes&(HugePageSize-1) == 0 {
		return AlignmentHint{Alignment: HugePageSize, HugePages: true}
	}
	return AlignmentHint{Alignment: CacheLineAlignment}
}

package rawalloc

// Alignment constants mirrored by the public policy in package mem.
const (
	hugePageSize   = 2 * 1024 * 1024
	cacheLineAlign = 64
)

// Flag bits recorded in Region.Flags. Bits 0 and 1 are part of the
// library's public flag contract and cross the FFI boundary verbatim;
// higher bits are reserved for the platform allocators.
const (
	// FlagHugePages marks a region requested with huge/large page
	// backing.
	FlagHugePages uint32 = 1 << 0

	// FlagSequential marks a region advised for sequential access.
	FlagSequential uint32 = 1 << 1

	// flagExplicitHuge marks a region served by an explicit huge-page
	// primitive (MAP_HUGETLB, MEM_LARGE_PAGES) rather than a standard
	// mapping. The free path must use the matching release call.
	flagExplicitHuge uint32 = 1 << 8
)

// Region is one raw allocation. Data covers exactly the bytes the
// caller asked for and Flags records the path that produced them; Free
// selects the release primitive from Flags alone, never from the size.
type Region struct {
	Data  []byte
	Flags uint32
}

// zeroFill explicitly clears b. Alloc calls it after a successful
// allocation whenever the caller asked for cleared memory, independent
// of any zero guarantee the platform primitive provides, so behavior
// is deterministic across platforms.
func zeroFill(b []byte) {
	clear(b)
}

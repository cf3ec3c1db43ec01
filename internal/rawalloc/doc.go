// Package rawalloc provides platform-specific primitives for aligned,
// huge-page-aware off-heap allocation.
//
// Every platform exposes the same pair: Alloc maps a region of exactly
// the requested size at the required alignment and records the path it
// used in the region's flags; Free releases the region through the
// path the flags name. Advisory helpers (sequential access, huge
// pages) are best-effort and never fail the caller.
package rawalloc

// Package arena implements the growable byte store that backs all
// serialized USB descriptor records.
//
// An [Arena] is a single contiguous buffer with monotonic growth: records
// are appended back-to-back and addressed by byte offset for the lifetime
// of the process. Physical storage grows on demand, rounding up to a
// configured increment, but the total number of appendable bytes is fixed
// at configuration time via [Arena.SetTotalSize] — mirroring a fixed
// embedded memory budget. Pre-sizing correctly is the caller's
// responsibility; an append beyond the budget fails with
// pkg.ErrCapacityExceeded and leaves previously written bytes intact.
//
// Growth reallocates the backing buffer, so raw slices obtained from
// [Arena.Slice] or [Arena.Bytes] are transient views. Only offsets remain
// valid across appends; persistent references into the arena must store
// offsets and re-resolve them.
package arena

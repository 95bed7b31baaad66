package arena

import (
	"github.com/pschatzmann/usbdesc/pkg"
)

// Default arena sizing.
const (
	// DefaultTotalSize is the default appendable budget in bytes,
	// suitable only for small descriptor sets.
	DefaultTotalSize = 225

	// DefaultIncrement is the default growth rounding increment.
	DefaultIncrement = 16
)

// Arena is a growable byte store holding serialized descriptor records
// back-to-back in append order. It is not safe for concurrent use; all
// appends must complete before the stored bytes are exposed to readers.
type Arena struct {
	buf       []byte // backing storage, len(buf) is the physical capacity
	length    int    // bytes used
	limit     int    // appendable budget, fixed once populated
	increment int    // growth rounding increment (0 = exact)
}

// New creates an arena with the given total size and growth increment.
// A totalSize <= 0 selects DefaultTotalSize; a negative increment is
// treated as 0 (exact growth).
func New(totalSize, increment int) *Arena {
	if totalSize <= 0 {
		totalSize = DefaultTotalSize
	}
	if increment < 0 {
		increment = 0
	}
	return &Arena{limit: totalSize, increment: increment}
}

// SetTotalSize reconfigures the appendable budget. It must be called
// before the first append; afterwards the budget is fixed and
// ErrAlreadyPopulated is returned.
func (a *Arena) SetTotalSize(n int) error {
	if n <= 0 {
		return pkg.ErrInvalidParameter
	}
	if a.length > 0 {
		return pkg.ErrAlreadyPopulated
	}
	a.limit = n
	return nil
}

// Append copies data to the current end of the arena and returns the byte
// offset at which it now lives. Fails with ErrCapacityExceeded if the
// configured total size would be exceeded, leaving prior bytes intact.
func (a *Arena) Append(data []byte) (int, error) {
	return a.extend(data, len(data))
}

// Reserve appends n zeroed bytes and returns their offset.
func (a *Arena) Reserve(n int) (int, error) {
	if n < 0 {
		return 0, pkg.ErrInvalidParameter
	}
	return a.extend(nil, n)
}

func (a *Arena) extend(data []byte, n int) (int, error) {
	if a.length+n > a.limit {
		pkg.LogWarn(pkg.ComponentArena, "append rejected",
			"used", a.length, "requested", n, "limit", a.limit)
		return 0, pkg.ErrCapacityExceeded
	}
	if err := a.EnsureCapacity(a.length + n); err != nil {
		return 0, err
	}
	offset := a.length
	if data != nil {
		copy(a.buf[offset:offset+n], data)
	}
	a.length += n
	return offset, nil
}

// EnsureCapacity grows the physical storage to hold at least n bytes,
// rounding up to the next multiple of the growth increment. Previously
// written bytes are preserved by copying into the new storage. The
// capacity never shrinks.
func (a *Arena) EnsureCapacity(n int) error {
	if n < 0 {
		return pkg.ErrInvalidParameter
	}
	if n <= len(a.buf) {
		return nil
	}
	size := n
	if a.increment > 0 {
		size = (n + a.increment - 1) / a.increment * a.increment
	}
	grown := make([]byte, size)
	copy(grown, a.buf[:a.length])
	a.buf = grown
	pkg.LogDebug(pkg.ComponentArena, "arena grown",
		"capacity", size, "used", a.length)
	return nil
}

// Len returns the number of bytes used.
func (a *Arena) Len() int {
	return a.length
}

// Cap returns the current physical capacity.
func (a *Arena) Cap() int {
	return len(a.buf)
}

// Limit returns the configured total size.
func (a *Arena) Limit() int {
	return a.limit
}

// Bytes returns the used portion of the arena. The returned slice is a
// view into the current storage and is invalidated by the next growth.
func (a *Arena) Bytes() []byte {
	return a.buf[:a.length]
}

// Slice returns n bytes starting at offset. The returned slice is a view
// into the current storage and is invalidated by the next growth; persist
// offsets, not slices.
func (a *Arena) Slice(offset, n int) ([]byte, error) {
	if offset < 0 || n < 0 || offset+n > a.length {
		return nil, pkg.ErrNotFound
	}
	return a.buf[offset : offset+n], nil
}

// Reset discards all stored bytes but keeps the physical storage and the
// configured total size for reuse.
func (a *Arena) Reset() {
	clear(a.buf[:a.length])
	a.length = 0
}

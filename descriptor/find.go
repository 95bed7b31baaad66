package descriptor

import (
	"github.com/pschatzmann/usbdesc/arena"
	"github.com/pschatzmann/usbdesc/pkg"
)

// Find scans the arena's records from the start and returns the offset of
// the occurrence-th record (0-based) whose type tag matches. It reaches
// sub-descriptors by type across arbitrary configuration layouts without
// retaining typed handles. Returns ErrNotFound when fewer matches exist
// and ErrMalformedDescriptor if a zero-length record blocks the scan.
func Find(a *arena.Arena, tag uint8, occurrence int) (int, error) {
	if occurrence < 0 {
		return 0, pkg.ErrInvalidParameter
	}
	b := a.Bytes()
	count := 0
	for offset := 0; offset < len(b); {
		recLen := int(b[offset])
		if recLen < 2 || offset+recLen > len(b) {
			return 0, pkg.ErrMalformedDescriptor
		}
		if b[offset+1] == tag {
			if count == occurrence {
				return offset, nil
			}
			count++
		}
		offset += recLen
	}
	return 0, pkg.ErrNotFound
}

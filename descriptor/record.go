package descriptor

import (
	"encoding/binary"

	"github.com/pschatzmann/usbdesc/arena"
	"github.com/pschatzmann/usbdesc/pkg"
)

// expectedRecordLength returns the fixed record length for tags that
// mandate one, or 0 for variable-length/unknown tags.
func expectedRecordLength(tag uint8) int {
	switch tag {
	case TypeDevice:
		return DeviceSize
	case TypeConfiguration:
		return ConfigurationSize
	case TypeInterface:
		return InterfaceSize
	case TypeEndpoint:
		return EndpointSize
	case TypeInterfaceAssociation:
		return AssociationSize
	}
	return 0
}

// AppendRecord appends a length-prefixed descriptor record to the arena:
// byte 0 is the total record length, byte 1 the type tag, followed by the
// payload. The payload length is validated against the fixed length for
// known tags, so bytes[offset] == record length holds for every record.
func AppendRecord(a *arena.Arena, tag uint8, payload []byte) (int, error) {
	total := 2 + len(payload)
	if total > 0xFF {
		return 0, pkg.ErrInvalidParameter
	}
	if want := expectedRecordLength(tag); want != 0 && total != want {
		pkg.LogWarn(pkg.ComponentDescriptor, "record length mismatch",
			"tag", tag, "length", total, "want", want)
		return 0, pkg.ErrInvalidParameter
	}
	offset, err := a.Reserve(total)
	if err != nil {
		return 0, err
	}
	b, err := a.Slice(offset, total)
	if err != nil {
		return 0, err
	}
	b[0] = uint8(total)
	b[1] = tag
	copy(b[2:], payload)
	return offset, nil
}

// view is a non-owning reference into the arena: a (offset, arena) pair
// that resolves against the arena's current storage at every access. The
// arena owns all bytes; views remain valid across growth because only the
// offset is retained.
type view struct {
	arena  *arena.Arena
	offset int
}

// bytes returns the n-byte window of this view's record. Views are only
// constructed for records that were appended successfully, so the window
// is in range unless the arena has been reset underneath the node.
func (v view) bytes(n int) []byte {
	b, err := v.arena.Slice(v.offset, n)
	if err != nil {
		panic("descriptor: overlay view invalidated by arena reset")
	}
	return b
}

// Offset returns the byte offset of this record within the arena.
func (v view) Offset() int {
	return v.offset
}

func (v view) u8(off int) uint8 {
	return v.bytes(off + 1)[off]
}

func (v view) setU8(off int, val uint8) {
	v.bytes(off + 1)[off] = val
}

func (v view) u16(off int) uint16 {
	return binary.LittleEndian.Uint16(v.bytes(off + 2)[off:])
}

func (v view) setU16(off int, val uint16) {
	binary.LittleEndian.PutUint16(v.bytes(off+2)[off:], val)
}

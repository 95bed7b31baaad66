package descriptor

import (
	"github.com/pschatzmann/usbdesc/pkg"
)

// validateChain checks that every record in the raw chain declares a
// length of at least 2 that stays within the chain. Callers must run
// this before appending the bytes anywhere: every stored record has to
// keep its own length at byte 0, and a chain that fails here would
// poison every later linear scan of the arena.
func validateChain(raw []byte) error {
	for cursor := 0; cursor < len(raw); {
		recLen := int(raw[cursor])
		if recLen < 2 {
			pkg.LogWarn(pkg.ComponentParser, "zero-length record",
				"cursor", cursor)
			return pkg.ErrMalformedDescriptor
		}
		if cursor+recLen > len(raw) {
			pkg.LogWarn(pkg.ComponentParser, "record overruns chain",
				"cursor", cursor, "length", recLen, "remaining", len(raw)-cursor)
			return pkg.ErrMalformedDescriptor
		}
		cursor += recLen
	}
	return nil
}

// parseChain reconstructs Interface and Endpoint overlay nodes from the
// raw record chain of the given length starting at this configuration's
// offset. One pass: read (len, type) at each position, tag 0x04 starts a
// new current interface, tag 0x05 attaches an endpoint to it, any other
// tag is skipped by advancing len. Descriptor counts come from the raw
// bytes and are never mutated.
//
// A zero-length record cannot be advanced past and fails the whole scan;
// no partial tree is attached on error.
func (c *Configuration) parseChain(length int) error {
	b, err := c.view.arena.Slice(c.offset, length)
	if err != nil {
		return pkg.ErrMalformedDescriptor
	}

	var parsed []*Interface
	var current *Interface
	cursor := 0
	for cursor < length {
		recLen := int(b[cursor])
		if recLen < 2 {
			pkg.LogWarn(pkg.ComponentParser, "zero-length record",
				"cursor", cursor)
			return pkg.ErrMalformedDescriptor
		}
		if cursor+recLen > length {
			pkg.LogWarn(pkg.ComponentParser, "record overruns chain",
				"cursor", cursor, "length", recLen, "remaining", length-cursor)
			return pkg.ErrMalformedDescriptor
		}
		switch b[cursor+1] {
		case TypeInterface:
			current = &Interface{
				view:   view{arena: c.view.arena, offset: c.offset + cursor},
				config: c,
			}
			parsed = append(parsed, current)
		case TypeEndpoint:
			if current != nil {
				current.attachEndpoint(&Endpoint{
					view:  view{arena: c.view.arena, offset: c.offset + cursor},
					iface: current,
				})
			}
		default:
			// Not modeled, just passed over.
		}
		cursor += recLen
	}

	c.interfaces = parsed
	pkg.LogDebug(pkg.ComponentParser, "chain parsed",
		"interfaces", len(parsed), "bytes", length)
	return nil
}

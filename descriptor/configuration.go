package descriptor

import (
	"github.com/pschatzmann/usbdesc/pkg"
)

// Configuration overlays a 9-byte configuration descriptor record and
// owns the interface nodes appended under it. Its wTotalLength field is
// kept current as child records are appended, so the serialized chain
// [offset, offset+wTotalLength) always matches what the host will read.
type Configuration struct {
	view
	device     *Device
	interfaces []*Interface
}

func newConfiguration(d *Device) (*Configuration, error) {
	offset, err := AppendRecord(d.view.arena, TypeConfiguration, make([]byte, ConfigurationSize-2))
	if err != nil {
		return nil, err
	}
	c := &Configuration{
		view:   view{arena: d.view.arena, offset: offset},
		device: d,
	}
	c.setU16(2, ConfigurationSize)                   // wTotalLength, grows with children
	c.setU8(5, uint8(len(d.configurations)+1))       // bConfigurationValue
	c.setU8(7, ConfigAttrBusPowered)                 // bmAttributes
	c.setU8(8, DefaultMaxPower)                      // bMaxPower
	return c, nil
}

// Device returns the parent device node.
func (c *Configuration) Device() *Device {
	return c.device
}

// addToChain accounts a child record of n bytes in wTotalLength.
func (c *Configuration) addToChain(n int) {
	c.setU16(2, c.TotalLength()+uint16(n))
}

// TotalLength returns wTotalLength, the serialized length of the full
// record chain including this configuration record.
func (c *Configuration) TotalLength() uint16 {
	return c.u16(2)
}

// NumInterfaces returns bNumInterfaces.
func (c *Configuration) NumInterfaces() uint8 {
	return c.u8(4)
}

// Value returns bConfigurationValue.
func (c *Configuration) Value() uint8 {
	return c.u8(5)
}

// SetValue sets bConfigurationValue, the argument to SET_CONFIGURATION
// that selects this configuration.
func (c *Configuration) SetValue(value uint8) *Configuration {
	c.setU8(5, value)
	return c
}

// SetName adds a string to the string table and stores its index in
// iConfiguration.
func (c *Configuration) SetName(s string) *Configuration {
	c.setU8(6, uint8(c.device.strings.Add(s)))
	return c
}

// SetStringIndex sets iConfiguration directly, for string tables managed
// separately.
func (c *Configuration) SetStringIndex(index uint8) *Configuration {
	c.setU8(6, index)
	return c
}

// Attributes returns bmAttributes.
func (c *Configuration) Attributes() uint8 {
	return c.u8(7)
}

// SetAttributes sets bmAttributes. Bit 7 must be set (bus powered), bit 6
// is self-powered, bit 5 is remote wakeup.
func (c *Configuration) SetAttributes(attrs uint8) *Configuration {
	c.setU8(7, attrs)
	return c
}

// SetMaxPower sets bMaxPower from a value in mA. The descriptor stores
// half-mA units, so SetMaxPower(100) stores 50.
func (c *Configuration) SetMaxPower(milliamps uint8) *Configuration {
	c.setU8(8, milliamps/2)
	return c
}

// MaxPower returns bMaxPower in half-mA units as stored on the wire.
func (c *Configuration) MaxPower() uint8 {
	return c.u8(8)
}

// NewInterface appends an interface descriptor record, increments
// bNumInterfaces, and auto-creates the implicit control endpoint 0. The
// interface number is assigned sequentially from 0.
func (c *Configuration) NewInterface() (*Interface, error) {
	i, err := newInterface(c, uint8(len(c.interfaces)))
	if err != nil {
		return nil, err
	}
	c.interfaces = append(c.interfaces, i)
	c.setU8(4, uint8(len(c.interfaces)))
	pkg.LogDebug(pkg.ComponentDescriptor, "interface created",
		"config", c.Value(), "interface", i.Number(), "offset", i.offset)

	// Implicit control endpoint 0. The direction bit is ignored for
	// control endpoints.
	if _, err := i.NewEndpoint(true, TransferControl); err != nil {
		return nil, err
	}
	return i, nil
}

// Interface returns the interface node at the given 0-based index.
func (c *Configuration) Interface(index int) (*Interface, error) {
	if index < 0 || index >= len(c.interfaces) {
		return nil, pkg.ErrNotFound
	}
	return c.interfaces[index], nil
}

// Interfaces returns all interface nodes in construction order.
func (c *Configuration) Interfaces() []*Interface {
	return c.interfaces
}

// AppendAssociation appends an interface association descriptor record
// for grouping related interfaces in composite layouts (e.g. CDC control
// plus data). The record joins the configuration's chain.
func (c *Configuration) AppendAssociation(firstInterface, interfaceCount, class, subclass, protocol, stringIndex uint8) error {
	payload := []byte{firstInterface, interfaceCount, class, subclass, protocol, stringIndex}
	if _, err := AppendRecord(c.view.arena, TypeInterfaceAssociation, payload); err != nil {
		return err
	}
	c.addToChain(AssociationSize)
	return nil
}

// AdaptMaxPacketSize rewrites wMaxPacketSize for every non-control
// endpoint in this configuration, typically to HighSpeedPacketSize when
// the device stack reports high-speed operation.
func (c *Configuration) AdaptMaxPacketSize(size uint16) {
	for _, i := range c.interfaces {
		for _, ep := range i.endpoints {
			if ep.TransferType() == TransferControl {
				continue
			}
			ep.SetMaxPacketSize(size)
		}
	}
}

// Bytes returns the full serialized record chain for this configuration.
func (c *Configuration) Bytes() ([]byte, error) {
	return c.view.arena.Slice(c.offset, int(c.TotalLength()))
}

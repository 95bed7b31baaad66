package descriptor

import (
	"github.com/pschatzmann/usbdesc/pkg"
)

// Interface overlays a 9-byte interface descriptor record and owns the
// endpoint nodes appended under it. Every interface carries the implicit
// control endpoint 0 created with it.
type Interface struct {
	view
	config    *Configuration
	endpoints []*Endpoint
}

func newInterface(c *Configuration, number uint8) (*Interface, error) {
	offset, err := AppendRecord(c.view.arena, TypeInterface, make([]byte, InterfaceSize-2))
	if err != nil {
		return nil, err
	}
	i := &Interface{
		view:   view{arena: c.view.arena, offset: offset},
		config: c,
	}
	i.setU8(2, number) // bInterfaceNumber
	c.addToChain(InterfaceSize)
	return i, nil
}

// Configuration returns the parent configuration node.
func (i *Interface) Configuration() *Configuration {
	return i.config
}

// Number returns bInterfaceNumber.
func (i *Interface) Number() uint8 {
	return i.u8(2)
}

// AlternateSetting returns bAlternateSetting.
func (i *Interface) AlternateSetting() uint8 {
	return i.u8(3)
}

// SetAlternateSetting sets bAlternateSetting.
func (i *Interface) SetAlternateSetting(alt uint8) *Interface {
	i.setU8(3, alt)
	return i
}

// NumEndpoints returns bNumEndpoints.
func (i *Interface) NumEndpoints() uint8 {
	return i.u8(4)
}

// Class returns bInterfaceClass.
func (i *Interface) Class() uint8 {
	return i.u8(5)
}

// SetClass sets bInterfaceClass.
func (i *Interface) SetClass(class uint8) *Interface {
	i.setU8(5, class)
	return i
}

// SubClass returns bInterfaceSubClass.
func (i *Interface) SubClass() uint8 {
	return i.u8(6)
}

// SetSubClass sets bInterfaceSubClass.
func (i *Interface) SetSubClass(subclass uint8) *Interface {
	i.setU8(6, subclass)
	return i
}

// Protocol returns bInterfaceProtocol.
func (i *Interface) Protocol() uint8 {
	return i.u8(7)
}

// SetProtocol sets bInterfaceProtocol.
func (i *Interface) SetProtocol(protocol uint8) *Interface {
	i.setU8(7, protocol)
	return i
}

// StringIndex returns iInterface.
func (i *Interface) StringIndex() uint8 {
	return i.u8(8)
}

// SetName adds a string to the string table and stores its index in
// iInterface.
func (i *Interface) SetName(s string) *Interface {
	i.setU8(8, uint8(i.config.device.strings.Add(s)))
	return i
}

// SetStringIndex sets iInterface directly, for string tables managed
// separately.
func (i *Interface) SetStringIndex(index uint8) *Interface {
	i.setU8(8, index)
	return i
}

// NewEndpoint appends an endpoint descriptor record and increments
// bNumEndpoints. The endpoint number is assigned sequentially; direction
// in means device-to-host (bit 7 of bEndpointAddress set). Defaults:
// 64-byte packets, no synchronization, data usage, interval 1.
func (i *Interface) NewEndpoint(in bool, transferType uint8) (*Endpoint, error) {
	ep, err := newEndpoint(i, uint8(len(i.endpoints)), in, transferType)
	if err != nil {
		return nil, err
	}
	i.endpoints = append(i.endpoints, ep)
	i.setU8(4, uint8(len(i.endpoints)))
	pkg.LogDebug(pkg.ComponentDescriptor, "endpoint created",
		"interface", i.Number(),
		"address", ep.Address(),
		"type", TransferTypeName(ep.TransferType()),
		"direction", DirectionName(ep.Direction()))
	return ep, nil
}

// attachEndpoint adopts a parsed endpoint overlay without touching
// bNumEndpoints, which the pre-built record chain already declares.
func (i *Interface) attachEndpoint(ep *Endpoint) {
	i.endpoints = append(i.endpoints, ep)
}

// ControlEndpoint returns the implicit control endpoint 0.
func (i *Interface) ControlEndpoint() (*Endpoint, error) {
	return i.Endpoint(0)
}

// Endpoint returns the endpoint node at the given 0-based index.
func (i *Interface) Endpoint(index int) (*Endpoint, error) {
	if index < 0 || index >= len(i.endpoints) {
		return nil, pkg.ErrNotFound
	}
	return i.endpoints[index], nil
}

// Endpoints returns all endpoint nodes in construction order.
func (i *Interface) Endpoints() []*Endpoint {
	return i.endpoints
}

package descriptor

// Endpoint overlays a 7-byte endpoint descriptor record. bEndpointAddress
// encodes the endpoint number in bits 0-3 and the transfer direction in
// bit 7 (1 = device-to-host).
type Endpoint struct {
	view
	iface *Interface
}

func newEndpoint(i *Interface, number uint8, in bool, transferType uint8) (*Endpoint, error) {
	offset, err := AppendRecord(i.view.arena, TypeEndpoint, make([]byte, EndpointSize-2))
	if err != nil {
		return nil, err
	}
	ep := &Endpoint{
		view:  view{arena: i.view.arena, offset: offset},
		iface: i,
	}
	ep.SetAddress(number, in)
	ep.setU8(3, transferType&0x03|SyncNone|UsageData)
	ep.setU16(4, DefaultMaxPacketSize)
	ep.setU8(6, DefaultInterval)
	i.config.addToChain(EndpointSize)
	return ep, nil
}

// Interface returns the parent interface node.
func (e *Endpoint) Interface() *Interface {
	return e.iface
}

// Address returns bEndpointAddress.
func (e *Endpoint) Address() uint8 {
	return e.u8(2)
}

// SetAddress sets bEndpointAddress from an endpoint number (bits 0-3) and
// direction (bit 7 set for device-to-host).
func (e *Endpoint) SetAddress(number uint8, in bool) *Endpoint {
	addr := number & 0x0F
	if in {
		addr |= DirectionIn
	}
	e.setU8(2, addr)
	return e
}

// Number returns the endpoint number (0-15).
func (e *Endpoint) Number() uint8 {
	return e.Address() & 0x0F
}

// Direction returns DirectionIn or DirectionOut.
func (e *Endpoint) Direction() uint8 {
	return e.Address() & DirectionIn
}

// IsIn returns true if this is an IN endpoint (device to host).
func (e *Endpoint) IsIn() bool {
	return e.Direction() == DirectionIn
}

// Attributes returns bmAttributes.
func (e *Endpoint) Attributes() uint8 {
	return e.u8(3)
}

// SetAttributes sets bmAttributes directly.
func (e *Endpoint) SetAttributes(attrs uint8) *Endpoint {
	e.setU8(3, attrs)
	return e
}

// TransferType returns the transfer type bits of bmAttributes.
func (e *Endpoint) TransferType() uint8 {
	return e.Attributes() & 0x03
}

// SetTransferType sets the transfer type bits of bmAttributes.
func (e *Endpoint) SetTransferType(t uint8) *Endpoint {
	e.setU8(3, e.Attributes()&^0x03|t&0x03)
	return e
}

// SyncType returns the isochronous synchronization bits of bmAttributes.
func (e *Endpoint) SyncType() uint8 {
	return e.Attributes() & 0x0C
}

// SetSyncType sets the isochronous synchronization bits of bmAttributes.
func (e *Endpoint) SetSyncType(s uint8) *Endpoint {
	e.setU8(3, e.Attributes()&^0x0C|s&0x0C)
	return e
}

// UsageType returns the isochronous usage bits of bmAttributes.
func (e *Endpoint) UsageType() uint8 {
	return e.Attributes() & 0x30
}

// SetUsageType sets the isochronous usage bits of bmAttributes.
func (e *Endpoint) SetUsageType(u uint8) *Endpoint {
	e.setU8(3, e.Attributes()&^0x30|u&0x30)
	return e
}

// MaxPacketSize returns wMaxPacketSize.
func (e *Endpoint) MaxPacketSize() uint16 {
	return e.u16(4)
}

// SetMaxPacketSize sets wMaxPacketSize. Full speed allows up to 64 bytes
// for bulk endpoints; high speed allows up to 512.
func (e *Endpoint) SetMaxPacketSize(size uint16) *Endpoint {
	e.setU16(4, size)
	return e
}

// Interval returns bInterval.
func (e *Endpoint) Interval() uint8 {
	return e.u8(6)
}

// SetInterval sets bInterval, the polling interval in frame counts.
// Ignored for bulk and control endpoints; isochronous must use 1.
func (e *Endpoint) SetInterval(interval uint8) *Endpoint {
	e.setU8(6, interval)
	return e
}

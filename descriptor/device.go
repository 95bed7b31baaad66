package descriptor

import (
	"github.com/pschatzmann/usbdesc/arena"
	"github.com/pschatzmann/usbdesc/pkg"
)

// Device is the root of the descriptor tree. It overlays the 18-byte
// device descriptor record in the arena and owns the configuration nodes
// and the string table. Construct one Device per arena; there are no
// process-wide singletons, the caller controls the lifecycle.
//
// The builder surface is single-threaded: all construction must complete
// before the assembled descriptors are exposed through the query surface.
type Device struct {
	view
	strings        *StringTable
	configurations []*Configuration
	hooks          Hooks
}

// NewDevice appends a device descriptor record to the arena and returns
// the overlay node. Defaults: bcdUSB 2.0, 64-byte EP0 packets, product id
// 0x0001, device release 0.01, class defined at interface level.
func NewDevice(a *arena.Arena) (*Device, error) {
	d := &Device{strings: NewStringTable()}
	if err := d.appendRecord(a); err != nil {
		return nil, err
	}
	pkg.LogDebug(pkg.ComponentDescriptor, "device descriptor created",
		"offset", d.offset)
	return d, nil
}

func (d *Device) appendRecord(a *arena.Arena) error {
	offset, err := AppendRecord(a, TypeDevice, make([]byte, DeviceSize-2))
	if err != nil {
		return err
	}
	d.view = view{arena: a, offset: offset}
	d.setU16(2, DefaultUSBVersion)
	d.setU8(7, DefaultMaxPacketSize0)
	d.setU16(10, DefaultProductID)
	d.setU16(12, DefaultDeviceVersion)
	return nil
}

// Arena returns the arena backing this descriptor tree.
func (d *Device) Arena() *arena.Arena {
	return d.view.arena
}

// Strings returns the device's string table.
func (d *Device) Strings() *StringTable {
	return d.strings
}

// SetUSBVersion sets bcdUSB, the USB specification version in BCD
// (e.g. 0x0200 for USB 2.0).
func (d *Device) SetUSBVersion(bcd uint16) *Device {
	d.setU16(2, bcd)
	return d
}

// SetClass sets bDeviceClass.
func (d *Device) SetClass(class uint8) *Device {
	d.setU8(4, class)
	return d
}

// SetSubClass sets bDeviceSubClass.
func (d *Device) SetSubClass(subclass uint8) *Device {
	d.setU8(5, subclass)
	return d
}

// SetProtocol sets bDeviceProtocol.
func (d *Device) SetProtocol(protocol uint8) *Device {
	d.setU8(6, protocol)
	return d
}

// SetMaxPacketSize0 sets bMaxPacketSize0 for endpoint 0.
// Valid sizes are 8, 16, 32, and 64.
func (d *Device) SetMaxPacketSize0(size uint8) *Device {
	d.setU8(7, size)
	return d
}

// SetVendorID sets idVendor.
func (d *Device) SetVendorID(id uint16) *Device {
	d.setU16(8, id)
	return d
}

// SetProductID sets idProduct.
func (d *Device) SetProductID(id uint16) *Device {
	d.setU16(10, id)
	return d
}

// SetDeviceVersion sets bcdDevice, the device release number in BCD.
func (d *Device) SetDeviceVersion(bcd uint16) *Device {
	d.setU16(12, bcd)
	return d
}

// SetManufacturer adds the manufacturer string to the string table and
// stores its index in iManufacturer.
func (d *Device) SetManufacturer(s string) *Device {
	d.setU8(14, uint8(d.strings.Add(s)))
	return d
}

// SetProduct adds the product string to the string table and stores its
// index in iProduct.
func (d *Device) SetProduct(s string) *Device {
	d.setU8(15, uint8(d.strings.Add(s)))
	return d
}

// SetSerialNumber adds the serial number string to the string table and
// stores its index in iSerialNumber.
func (d *Device) SetSerialNumber(s string) *Device {
	d.setU8(16, uint8(d.strings.Add(s)))
	return d
}

// VendorID returns idVendor.
func (d *Device) VendorID() uint16 { return d.u16(8) }

// ProductID returns idProduct.
func (d *Device) ProductID() uint16 { return d.u16(10) }

// USBVersion returns bcdUSB.
func (d *Device) USBVersion() uint16 { return d.u16(2) }

// DeviceVersion returns bcdDevice.
func (d *Device) DeviceVersion() uint16 { return d.u16(12) }

// Class returns bDeviceClass.
func (d *Device) Class() uint8 { return d.u8(4) }

// MaxPacketSize0 returns bMaxPacketSize0.
func (d *Device) MaxPacketSize0() uint8 { return d.u8(7) }

// ManufacturerIndex returns iManufacturer.
func (d *Device) ManufacturerIndex() uint8 { return d.u8(14) }

// ProductIndex returns iProduct.
func (d *Device) ProductIndex() uint8 { return d.u8(15) }

// SerialNumberIndex returns iSerialNumber.
func (d *Device) SerialNumberIndex() uint8 { return d.u8(16) }

// NumConfigurations returns bNumConfigurations.
func (d *Device) NumConfigurations() uint8 { return d.u8(17) }

// NewConfiguration appends a configuration descriptor record and returns
// its overlay node. bNumConfigurations is incremented and the new
// configuration's bConfigurationValue is assigned sequentially from 1.
func (d *Device) NewConfiguration() (*Configuration, error) {
	c, err := newConfiguration(d)
	if err != nil {
		return nil, err
	}
	d.configurations = append(d.configurations, c)
	d.setU8(17, uint8(len(d.configurations)))
	pkg.LogDebug(pkg.ComponentDescriptor, "configuration created",
		"value", c.Value(), "offset", c.offset)
	return c, nil
}

// SetConfigurationDescriptor appends a pre-built configuration record
// chain supplied as raw bytes. The chain must begin with a configuration
// record; its wTotalLength field is rewritten to the supplied length.
// When parse is true the chain is scanned and equivalent Interface and
// Endpoint overlay nodes are attached for later introspection.
//
// The chain is structurally validated before anything is appended, so a
// rejected chain leaves the arena unchanged and later scans stay clean.
func (d *Device) SetConfigurationDescriptor(raw []byte, parse bool) (*Configuration, error) {
	if len(raw) < ConfigurationSize {
		return nil, pkg.ErrDescriptorTooShort
	}
	if raw[1] != TypeConfiguration {
		return nil, pkg.ErrDescriptorTypeMismatch
	}
	if err := validateChain(raw); err != nil {
		return nil, err
	}
	offset, err := d.view.arena.Append(raw)
	if err != nil {
		return nil, err
	}
	c := &Configuration{
		view:   view{arena: d.view.arena, offset: offset},
		device: d,
	}
	c.setU16(2, uint16(len(raw)))
	if parse {
		if err := c.parseChain(len(raw)); err != nil {
			return nil, err
		}
	}
	d.configurations = append(d.configurations, c)
	d.setU8(17, uint8(len(d.configurations)))
	return c, nil
}

// Configuration returns the configuration node at the given 0-based index.
func (d *Device) Configuration(index int) (*Configuration, error) {
	if index < 0 || index >= len(d.configurations) {
		return nil, pkg.ErrNotFound
	}
	return d.configurations[index], nil
}

// Configurations returns all configuration nodes in construction order.
func (d *Device) Configurations() []*Configuration {
	return d.configurations
}

// DeviceDescriptor returns the 18-byte device descriptor record.
func (d *Device) DeviceDescriptor() ([]byte, error) {
	return d.view.arena.Slice(d.offset, DeviceSize)
}

// ConfigurationDescriptor returns the full concatenated record chain for
// the configuration at the given 0-based index. The configuration
// record's wTotalLength field reflects every owned sub-record.
func (d *Device) ConfigurationDescriptor(index int) ([]byte, error) {
	c, err := d.Configuration(index)
	if err != nil {
		return nil, err
	}
	return c.Bytes()
}

// StringDescriptor returns the UTF-16 string descriptor record for the
// given index. Index 0 is the language-id record.
func (d *Device) StringDescriptor(index int) ([]byte, error) {
	return d.strings.Descriptor(index)
}

// TotalConfiguredSize returns the serialized length of all configuration
// record chains, the value a caller should pass to the arena's
// SetTotalSize (plus the device record) when pre-sizing.
func (d *Device) TotalConfiguredSize() int {
	total := 0
	for _, c := range d.configurations {
		total += int(c.TotalLength())
	}
	return total
}

// Find scans the arena from its start and returns the offset of the
// occurrence-th record (0-based) whose type tag matches.
func (d *Device) Find(tag uint8, occurrence int) (int, error) {
	return Find(d.view.arena, tag, occurrence)
}

// SetHooks stores the event hook capability for the device-stack glue.
// The descriptor core never invokes the hooks itself.
func (d *Device) SetHooks(h Hooks) {
	d.hooks = h
}

// Hooks returns the stored event hook capability, or nil.
func (d *Device) Hooks() Hooks {
	return d.hooks
}

// Reset clears the arena and the string table, drops all tree nodes, and
// re-appends a fresh device record with defaults. Previously issued
// overlay nodes are invalid after Reset; teardown is whole-arena only.
func (d *Device) Reset() error {
	a := d.view.arena
	a.Reset()
	d.strings.Reset()
	d.configurations = nil
	return d.appendRecord(a)
}

package descriptor

import "fmt"

// USB Descriptor Types (USB 2.0 Spec Table 9-5).
const (
	TypeDevice               = 0x01
	TypeConfiguration        = 0x02
	TypeString               = 0x03
	TypeInterface            = 0x04
	TypeEndpoint             = 0x05
	TypeDeviceQualifier      = 0x06
	TypeOtherSpeedConfig     = 0x07
	TypeInterfacePower       = 0x08
	TypeOTG                  = 0x09
	TypeDebug                = 0x0A
	TypeInterfaceAssociation = 0x0B
	TypeBOS                  = 0x0F
	TypeDeviceCapability     = 0x10
	TypeCSInterface          = 0x24 // Class-specific interface
	TypeCSEndpoint           = 0x25 // Class-specific endpoint
)

// Fixed record sizes per descriptor type, in bytes.
const (
	DeviceSize        = 18
	ConfigurationSize = 9
	InterfaceSize     = 9
	EndpointSize      = 7
	AssociationSize   = 8
)

// USB Class Codes.
const (
	ClassPerInterface = 0x00 // Class defined at interface level
	ClassAudio        = 0x01 // Audio class (includes MIDI streaming)
	ClassCDC          = 0x02 // Communications Device Class
	ClassHID          = 0x03 // Human Interface Device
	ClassPhysical     = 0x05 // Physical
	ClassImage        = 0x06 // Still Imaging
	ClassPrinter      = 0x07 // Printer
	ClassMassStorage  = 0x08 // Mass Storage
	ClassHub          = 0x09 // Hub
	ClassCDCData      = 0x0A // CDC-Data
	ClassSmartCard    = 0x0B // Smart Card
	ClassContentSec   = 0x0D // Content Security
	ClassVideo        = 0x0E // Video
	ClassHealthcare   = 0x0F // Personal Healthcare
	ClassAudioVideo   = 0x10 // Audio/Video Devices
	ClassBillboard    = 0x11 // Billboard Device Class
	ClassDiagnostic   = 0xDC // Diagnostic Device
	ClassWireless     = 0xE0 // Wireless Controller
	ClassMisc         = 0xEF // Miscellaneous
	ClassAppSpecific  = 0xFE // Application Specific
	ClassVendor       = 0xFF // Vendor Specific
)

// Audio subclass codes relevant for MIDI layouts.
const (
	SubClassAudioControl  = 0x01
	SubClassMIDIStreaming = 0x03
)

// Configuration attribute bits.
const (
	ConfigAttrBusPowered   = 0x80 // Bus-powered (required)
	ConfigAttrSelfPowered  = 0x40 // Self-powered
	ConfigAttrRemoteWakeup = 0x20 // Remote wakeup capable
)

// Endpoint transfer types (USB 2.0 Spec Table 9-13).
const (
	TransferControl     = 0x00 // Control transfer
	TransferIsochronous = 0x01 // Isochronous transfer
	TransferBulk        = 0x02 // Bulk transfer
	TransferInterrupt   = 0x03 // Interrupt transfer
)

// Endpoint directions (bit 7 of bEndpointAddress).
const (
	DirectionOut = 0x00 // Host to device
	DirectionIn  = 0x80 // Device to host
)

// Isochronous synchronization types (bits 2-3 of bmAttributes).
const (
	SyncNone     = 0x00 // No synchronization
	SyncAsync    = 0x04 // Asynchronous
	SyncAdaptive = 0x08 // Adaptive
	SyncSync     = 0x0C // Synchronous
)

// Isochronous usage types (bits 4-5 of bmAttributes).
const (
	UsageData     = 0x00 // Data endpoint
	UsageFeedback = 0x10 // Feedback endpoint
	UsageImplicit = 0x20 // Implicit feedback data endpoint
)

// LangIDUSEnglish is the language ID for US English.
const LangIDUSEnglish = 0x0409

// Builder defaults applied when a record is first appended.
const (
	DefaultUSBVersion     = 0x0200 // bcdUSB 2.0
	DefaultMaxPacketSize0 = 64     // EP0 max packet size
	DefaultProductID      = 0x0001
	DefaultDeviceVersion  = 0x0001 // bcdDevice
	DefaultMaxPower       = 50     // 100 mA in half-mA units
	DefaultMaxPacketSize  = 64     // full-speed endpoint packet size
	DefaultInterval       = 1      // bInterval in frame counts
)

// HighSpeedPacketSize is the bulk packet size for high-speed operation.
const HighSpeedPacketSize = 512

// USB Speeds as defined in USB 2.0 specification.
const (
	SpeedLow  Speed = 0 // 1.5 Mbps (USB 1.0)
	SpeedFull Speed = 1 // 12 Mbps (USB 1.1)
	SpeedHigh Speed = 2 // 480 Mbps (USB 2.0)
)

// Speed represents USB connection speed.
type Speed uint8

// String returns a human-readable speed description.
func (s Speed) String() string {
	switch s {
	case SpeedLow:
		return "Low Speed (1.5 Mbps)"
	case SpeedFull:
		return "Full Speed (12 Mbps)"
	case SpeedHigh:
		return "High Speed (480 Mbps)"
	default:
		return fmt.Sprintf("Unknown Speed (%d)", s)
	}
}

// TransferTypeName returns a human-readable transfer type name.
func TransferTypeName(t uint8) string {
	switch t & 0x03 {
	case TransferControl:
		return "Control"
	case TransferIsochronous:
		return "Isochronous"
	case TransferBulk:
		return "Bulk"
	case TransferInterrupt:
		return "Interrupt"
	default:
		return fmt.Sprintf("Unknown(%d)", t)
	}
}

// DirectionName returns a human-readable direction name.
func DirectionName(dir uint8) string {
	if dir&DirectionIn != 0 {
		return "IN"
	}
	return "OUT"
}

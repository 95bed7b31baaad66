// Package descriptor builds, stores, and re-parses the binary descriptor
// records a USB device hands to a host controller stack during
// enumeration.
//
// All serialized records live back-to-back in a single [arena.Arena] in
// append order. The typed tree ([Device] → [Configuration] → [Interface]
// → [Endpoint]) is a hierarchy of overlay views: each node is an (arena,
// offset) pair whose field accessors read and write the arena's bytes at
// fixed relative offsets. Nodes never cache raw addresses, so they stay
// valid as the arena grows; the arena owns all bytes.
//
// # Building
//
// A caller sizes the arena once, then builds top-down; construction
// order determines serialized order:
//
//	a := arena.New(256, 0)
//	dev, _ := descriptor.NewDevice(a)
//	dev.SetVendorID(0xCAFE).SetProductID(0x0001).SetManufacturer("Acme")
//	cfg, _ := dev.NewConfiguration()
//	itf, _ := cfg.NewInterface() // implicit control endpoint 0
//	itf.NewEndpoint(false, descriptor.TransferBulk)
//
// Field setters mutate the arena bytes in place and return the node for
// chaining. Creating an interface auto-creates its control endpoint and
// increments the configuration's interface count; creating an endpoint
// increments the interface's endpoint count and the configuration's
// wTotalLength, which the host relies on to know how many trailing bytes
// to read.
//
// # Querying
//
// Once built, the assembled records are handed to the device stack via
// index-addressed queries: [Device.DeviceDescriptor],
// [Device.ConfigurationDescriptor], and [Device.StringDescriptor].
//
// # Parsing
//
// Descriptors supplied as pre-built raw bytes are adopted with
// [Device.SetConfigurationDescriptor], which can scan the record chain
// and populate an equivalent overlay tree for later introspection, such
// as adapting endpoint packet sizes for high-speed mode with
// [Configuration.AdaptMaxPacketSize].
//
// The package performs no I/O and never blocks; it is not safe for
// concurrent mutation. The construction phase must complete before the
// query surface is exposed to other execution contexts.
package descriptor

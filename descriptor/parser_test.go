package descriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pschatzmann/usbdesc/arena"
	"github.com/pschatzmann/usbdesc/pkg"
)

// buildChain assembles a configuration with one interface and one extra
// bulk IN endpoint and returns its serialized record chain.
func buildChain(t *testing.T) []byte {
	t.Helper()
	d := newTestDevice(t)
	c, err := d.NewConfiguration()
	require.NoError(t, err)
	i, err := c.NewInterface()
	require.NoError(t, err)
	i.SetClass(ClassAudio).SetSubClass(SubClassMIDIStreaming)
	ep, err := i.NewEndpoint(true, TransferBulk)
	require.NoError(t, err)
	ep.SetMaxPacketSize(64).SetInterval(0)

	chain, err := d.ConfigurationDescriptor(0)
	require.NoError(t, err)
	return append([]byte(nil), chain...)
}

func TestParseRoundTrip(t *testing.T) {
	chain := buildChain(t)

	d, err := NewDevice(arena.New(512, 0))
	require.NoError(t, err)
	c, err := d.SetConfigurationDescriptor(chain, true)
	require.NoError(t, err)

	require.Len(t, c.Interfaces(), 1)
	i := c.Interfaces()[0]
	assert.EqualValues(t, 1, c.NumInterfaces())
	assert.EqualValues(t, ClassAudio, i.Class())
	assert.EqualValues(t, SubClassMIDIStreaming, i.SubClass())

	// Control endpoint plus the extra bulk endpoint.
	require.Len(t, i.Endpoints(), 2)
	assert.EqualValues(t, 2, i.NumEndpoints())

	ep, err := i.Endpoint(1)
	require.NoError(t, err)
	assert.EqualValues(t, 0x81, ep.Address())
	assert.EqualValues(t, TransferBulk, ep.TransferType())
	assert.EqualValues(t, 64, ep.MaxPacketSize())
}

func TestParsedOverlayWritesThrough(t *testing.T) {
	chain := buildChain(t)

	d, err := NewDevice(arena.New(512, 0))
	require.NoError(t, err)
	c, err := d.SetConfigurationDescriptor(chain, true)
	require.NoError(t, err)

	// The parsed tree overlays the adopted bytes, e.g. for adapting
	// packet sizes to high-speed mode.
	c.AdaptMaxPacketSize(HighSpeedPacketSize)

	got, err := d.ConfigurationDescriptor(0)
	require.NoError(t, err)
	epOffset, err := Find(d.Arena(), TypeEndpoint, 1)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x02}, got[epOffset-DeviceSize+4:epOffset-DeviceSize+6],
		"wMaxPacketSize rewritten in place")
}

func TestParseWithoutScan(t *testing.T) {
	chain := buildChain(t)

	d, err := NewDevice(arena.New(512, 0))
	require.NoError(t, err)
	c, err := d.SetConfigurationDescriptor(chain, false)
	require.NoError(t, err)

	assert.Len(t, c.Interfaces(), 0, "no overlay nodes without parse")
	assert.EqualValues(t, len(chain), c.TotalLength())
	assert.EqualValues(t, 1, d.NumConfigurations())
}

func TestParseSkipsUnknownRecords(t *testing.T) {
	// Configuration, class-specific interface record, interface, endpoint.
	chain := []byte{
		ConfigurationSize, TypeConfiguration, 0, 0, 1, 1, 0, ConfigAttrBusPowered, 50,
		5, TypeCSInterface, 0x01, 0x02, 0x03,
		InterfaceSize, TypeInterface, 0, 0, 1, ClassVendor, 0, 0, 0,
		EndpointSize, TypeEndpoint, 0x02, TransferBulk, 64, 0, 0,
	}

	d, err := NewDevice(arena.New(512, 0))
	require.NoError(t, err)
	c, err := d.SetConfigurationDescriptor(chain, true)
	require.NoError(t, err)

	require.Len(t, c.Interfaces(), 1)
	i := c.Interfaces()[0]
	assert.EqualValues(t, ClassVendor, i.Class())
	require.Len(t, i.Endpoints(), 1)
	assert.EqualValues(t, 0x02, i.Endpoints()[0].Address())
}

func TestParseEndpointBeforeInterfaceIgnored(t *testing.T) {
	chain := []byte{
		ConfigurationSize, TypeConfiguration, 0, 0, 0, 1, 0, ConfigAttrBusPowered, 50,
		EndpointSize, TypeEndpoint, 0x01, TransferBulk, 64, 0, 0,
	}

	d, err := NewDevice(arena.New(512, 0))
	require.NoError(t, err)
	c, err := d.SetConfigurationDescriptor(chain, true)
	require.NoError(t, err)
	assert.Len(t, c.Interfaces(), 0)
}

func TestParseZeroLengthRecordFails(t *testing.T) {
	chain := []byte{
		ConfigurationSize, TypeConfiguration, 0, 0, 1, 1, 0, ConfigAttrBusPowered, 50,
		0, TypeInterface, 0, 0, 0, 0, 0, 0, 0,
	}

	d, err := NewDevice(arena.New(512, 0))
	require.NoError(t, err)
	before := d.Arena().Len()
	_, err = d.SetConfigurationDescriptor(chain, true)
	require.ErrorIs(t, err, pkg.ErrMalformedDescriptor)

	// A failed parse must not expose a partial tree.
	assert.Len(t, d.Configurations(), 0)
	assert.EqualValues(t, 0, d.NumConfigurations())

	// The rejected bytes must not reach the arena either: record scans
	// over the stored bytes have to keep working afterwards.
	assert.Equal(t, before, d.Arena().Len())
	_, err = d.Find(TypeEndpoint, 0)
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestParseTruncatedRecordFails(t *testing.T) {
	chain := buildChain(t)
	truncated := chain[:len(chain)-3]

	d, err := NewDevice(arena.New(512, 0))
	require.NoError(t, err)
	before := d.Arena().Len()
	_, err = d.SetConfigurationDescriptor(truncated, true)
	require.ErrorIs(t, err, pkg.ErrMalformedDescriptor)
	assert.Len(t, d.Configurations(), 0)
	assert.Equal(t, before, d.Arena().Len(), "rejected chain leaves no bytes behind")
}

func TestAdoptWithoutScanStillValidates(t *testing.T) {
	chain := []byte{
		ConfigurationSize, TypeConfiguration, 0, 0, 1, 1, 0, ConfigAttrBusPowered, 50,
		0, TypeInterface, 0, 0, 0, 0, 0, 0, 0,
	}

	d, err := NewDevice(arena.New(512, 0))
	require.NoError(t, err)
	before := d.Arena().Len()
	_, err = d.SetConfigurationDescriptor(chain, false)
	require.ErrorIs(t, err, pkg.ErrMalformedDescriptor)
	assert.Equal(t, before, d.Arena().Len())
}

func TestSetConfigurationDescriptorValidation(t *testing.T) {
	d, err := NewDevice(arena.New(512, 0))
	require.NoError(t, err)

	_, err = d.SetConfigurationDescriptor([]byte{9, TypeConfiguration}, false)
	assert.ErrorIs(t, err, pkg.ErrDescriptorTooShort)

	bad := buildChain(t)
	bad[1] = TypeDevice
	_, err = d.SetConfigurationDescriptor(bad, false)
	assert.ErrorIs(t, err, pkg.ErrDescriptorTypeMismatch)
}

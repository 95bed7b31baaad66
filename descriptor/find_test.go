package descriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pschatzmann/usbdesc/arena"
	"github.com/pschatzmann/usbdesc/pkg"
)

func TestFindByOccurrence(t *testing.T) {
	d := newTestDevice(t)
	c, err := d.NewConfiguration()
	require.NoError(t, err)
	i, err := c.NewInterface()
	require.NoError(t, err)
	_, err = i.NewEndpoint(true, TransferBulk)
	require.NoError(t, err)

	// Records: device(0) config(18) interface(27) endpoint(36) endpoint(43).
	first, err := d.Find(TypeEndpoint, 0)
	require.NoError(t, err)
	assert.Equal(t, 36, first)

	second, err := d.Find(TypeEndpoint, 1)
	require.NoError(t, err)
	assert.Equal(t, 43, second)

	_, err = d.Find(TypeEndpoint, 2)
	assert.ErrorIs(t, err, pkg.ErrNotFound)

	cfg, err := d.Find(TypeConfiguration, 0)
	require.NoError(t, err)
	assert.Equal(t, 18, cfg)
}

func TestFindNoMatch(t *testing.T) {
	d := newTestDevice(t)
	_, err := d.Find(TypeEndpoint, 0)
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestFindInvalidOccurrence(t *testing.T) {
	d := newTestDevice(t)
	_, err := d.Find(TypeDevice, -1)
	assert.ErrorIs(t, err, pkg.ErrInvalidParameter)
}

func TestFindZeroLengthRecordFails(t *testing.T) {
	a := arena.New(64, 0)
	_, err := a.Append([]byte{0, TypeDevice, 0, 0})
	require.NoError(t, err)

	_, err = Find(a, TypeDevice, 0)
	assert.ErrorIs(t, err, pkg.ErrMalformedDescriptor)
}

func TestFindEmptyArena(t *testing.T) {
	_, err := Find(arena.New(64, 0), TypeDevice, 0)
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

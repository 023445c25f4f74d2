package bitfields_test

import (
	"testing"

	"github.com/catnip-embedded/netstack/addr"
	"github.com/catnip-embedded/netstack/bitfields"

	"github.com/stretchr/testify/assert"
)

func TestVersionAndHeaderLength(t *testing.T) {
	t.Parallel()

	v := bitfields.StandardIPv4()
	assert.Equal(t, uint8(4), v.Version())
	assert.Equal(t, uint8(5), v.HeaderLength())
	assert.Equal(t, uint8(0x45), v.Byte())
}

func TestVersionAndHeaderLengthBuilders(t *testing.T) {
	t.Parallel()

	v := bitfields.NewVersionAndHeaderLength().WithVersion(6).WithHeaderLength(15)
	assert.Equal(t, uint8(6), v.Version())
	assert.Equal(t, uint8(15), v.HeaderLength())
	assert.Equal(t, uint8(0x6F), v.Byte())
}

func TestDSCPAndECN(t *testing.T) {
	t.Parallel()

	d := bitfields.NewDSCPAndECN().WithDSCP(addr.DSCPRealTime).WithECN(addr.ECNCongestionSeen)
	assert.Equal(t, addr.DSCPRealTime, d.DSCP())
	assert.Equal(t, addr.ECNCongestionSeen, d.ECN())
	assert.Equal(t, uint8(46<<2|3), d.Byte())
}

func TestDSCPAndECNDefault(t *testing.T) {
	t.Parallel()

	d := bitfields.NewDSCPAndECN()
	assert.Equal(t, addr.DSCPStandard, d.DSCP())
	assert.Equal(t, addr.ECNNotCapable, d.ECN())
	assert.Equal(t, uint8(0), d.Byte())
}

func TestFragmentationDefault(t *testing.T) {
	t.Parallel()

	f := bitfields.NewFragmentation()
	assert.True(t, f.DoNotFragment())
	assert.False(t, f.MoreFragments())
	assert.Equal(t, uint16(0), f.FragmentOffset())
}

func TestFragmentationBuilders(t *testing.T) {
	t.Parallel()

	f := bitfields.NewFragmentation().
		WithDoNotFragment(false).
		WithMoreFragments(true).
		WithFragmentOffset(1000)
	assert.False(t, f.DoNotFragment())
	assert.True(t, f.MoreFragments())
	assert.Equal(t, uint16(1000), f.FragmentOffset())
}

func TestFragmentationOffsetClipsTo13Bits(t *testing.T) {
	t.Parallel()

	f := bitfields.NewFragmentation().WithFragmentOffset(0xFFFF)
	assert.Equal(t, uint16(0x1FFF), f.FragmentOffset())
}

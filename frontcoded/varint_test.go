package frontcoded

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTripInt8(t *testing.T, v int64) {
	c := int8Codec{}
	n := c.count(v)
	buf := make([]int8, n+4)
	w := c.write(buf, 1, v)
	require.Equal(t, n, w)
	got, rn := c.read(buf, 1)
	assert.Equal(t, v, got)
	assert.Equal(t, n, rn)
}

func TestInt8Codec_RoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, 63, 127, 128, 1000, 1 << 14, 1 << 20, 1<<35 - 1} {
		roundTripInt8(t, v)
	}
}

func TestInt8Codec_Count(t *testing.T) {
	c := int8Codec{}
	assert.Equal(t, 1, c.count(0))
	assert.Equal(t, 1, c.count(127))
	assert.Equal(t, 2, c.count(128))
	assert.Equal(t, 2, c.count(1<<14-1))
	assert.Equal(t, 3, c.count(1<<14))
}

func roundTripUint16(t *testing.T, v int64) {
	c := uint16Codec{}
	n := c.count(v)
	buf := make([]uint16, n+2)
	w := c.write(buf, 1, v)
	require.Equal(t, n, w)
	got, rn := c.read(buf, 1)
	assert.Equal(t, v, got)
	assert.Equal(t, n, rn)
}

func TestUint16Codec_RoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, 1<<15 - 1, 1 << 15, 1<<31 - 1} {
		roundTripUint16(t, v)
	}
}

func TestUint16Codec_Width(t *testing.T) {
	c := uint16Codec{}
	assert.Equal(t, 1, c.count(1<<15-1))
	assert.Equal(t, 2, c.count(1<<15))
}

func roundTripInt16(t *testing.T, v int64) {
	c := int16Codec{}
	n := c.count(v)
	buf := make([]int16, n+2)
	w := c.write(buf, 1, v)
	require.Equal(t, n, w)
	got, rn := c.read(buf, 1)
	assert.Equal(t, v, got)
	assert.Equal(t, n, rn)
}

func TestInt16Codec_RoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, 1<<15 - 1, 1 << 15, 1<<31 - 1} {
		roundTripInt16(t, v)
	}
}

func TestInt32Codec_RoundTrip(t *testing.T) {
	c := int32Codec{}
	buf := make([]int32, 2)
	assert.Equal(t, 1, c.count(123456789))
	w := c.write(buf, 1, 123456789)
	assert.Equal(t, 1, w)
	got, n := c.read(buf, 1)
	assert.Equal(t, int64(123456789), got)
	assert.Equal(t, 1, n)
}

func TestInt64Codec_RoundTrip(t *testing.T) {
	c := int64Codec{}
	buf := make([]int64, 2)
	w := c.write(buf, 1, 1<<40)
	assert.Equal(t, 1, w)
	got, n := c.read(buf, 1)
	assert.Equal(t, int64(1<<40), got)
	assert.Equal(t, 1, n)
}

func TestWidthOf(t *testing.T) {
	assert.Equal(t, WidthInt8, WidthOf[int8]())
	assert.Equal(t, WidthInt16, WidthOf[int16]())
	assert.Equal(t, WidthUint16, WidthOf[uint16]())
	assert.Equal(t, WidthInt32, WidthOf[int32]())
	assert.Equal(t, WidthInt64, WidthOf[int64]())
}

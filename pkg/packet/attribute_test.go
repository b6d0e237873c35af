package packet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAttribute(t *testing.T) {
	attr := NewAttribute(AttrUserName, []byte("alice"))
	assert.Equal(t, AttrUserName, attr.Type)
	assert.Equal(t, []byte("alice"), attr.Value)
	assert.Equal(t, 7, attr.Len())
}

func TestNewTypedAttribute(t *testing.T) {
	attr, err := NewTypedAttribute(integerDef, "Login-User")
	require.NoError(t, err)
	assert.Equal(t, uint8(6), attr.Type)
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x01}, attr.Value)
}

func TestSetValue(t *testing.T) {
	attr := NewAttribute(4, nil)
	require.NoError(t, attr.SetValue(ipaddrDef, "192.0.2.1"))
	assert.Equal(t, []byte{0xC0, 0x00, 0x02, 0x01}, attr.Value)

	err := attr.SetValue(ipaddrDef, "bogus")
	assert.ErrorIs(t, err, ErrInvalidValue)
	// A failed set leaves the previous value intact.
	assert.Equal(t, []byte{0xC0, 0x00, 0x02, 0x01}, attr.Value)
}

func TestAppendWire(t *testing.T) {
	attr := NewStringAttribute(AttrUserName, "alice")

	data, err := attr.appendWire(nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x07, 'a', 'l', 'i', 'c', 'e'}, data)
}

func TestAppendWireBoundary(t *testing.T) {
	// 253-byte value is the longest legal attribute payload.
	attr := NewAttribute(AttrClass, bytes.Repeat([]byte{0xAB}, 253))
	data, err := attr.appendWire(nil)
	require.NoError(t, err)
	assert.Len(t, data, 255)
	assert.Equal(t, uint8(255), data[1])

	attr = NewAttribute(AttrClass, bytes.Repeat([]byte{0xAB}, 254))
	_, err = attr.appendWire(nil)
	assert.ErrorIs(t, err, ErrAttributeTooLong)
}

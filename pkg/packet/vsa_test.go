package packet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nasauth/radius/pkg/dictionaries"
)

func TestVendorSpecificWireFormat(t *testing.T) {
	// VSA(vendor=9, sub=[code=1, value="cisco-avpair=foo"]) serializes as
	// 1A LL 00 00 00 09 01 SL 63 69 73 63 6F ...
	vsa := NewVendorSpecific(9, NewStringAttribute(1, "cisco-avpair=foo"))

	attr, err := vsa.ToAttribute()
	require.NoError(t, err)

	data, err := attr.appendWire(nil)
	require.NoError(t, err)

	want := []byte{0x1A, 0x18, 0x00, 0x00, 0x00, 0x09, 0x01, 0x12}
	want = append(want, []byte("cisco-avpair=foo")...)
	assert.Equal(t, want, data)
}

func TestVendorSpecificRoundTrip(t *testing.T) {
	vsa := NewVendorSpecific(9)
	vsa.Add(NewStringAttribute(1, "cisco-avpair=foo"))
	vsa.Add(NewStringAttribute(1, "cisco-avpair=bar"))
	vsa.Add(NewAttribute(2, []byte{0x00, 0x00, 0x00, 0x2A}))

	attr, err := vsa.ToAttribute()
	require.NoError(t, err)

	parsed, err := ParseVendorSpecific(attr)
	require.NoError(t, err)
	assert.Equal(t, uint32(9), parsed.VendorID)
	require.Len(t, parsed.SubAttributes, 3)
	assert.Equal(t, "cisco-avpair=foo", parsed.SubAttributes[0].GetString())
	assert.Equal(t, "cisco-avpair=bar", parsed.SubAttributes[1].GetString())
	assert.Equal(t, uint8(2), parsed.SubAttributes[2].Type)
}

func TestVendorSpecificEmptyRoundTrip(t *testing.T) {
	vsa := NewVendorSpecific(9)

	attr, err := vsa.ToAttribute()
	require.NoError(t, err)
	assert.Len(t, attr.Value, 4)

	parsed, err := ParseVendorSpecific(attr)
	require.NoError(t, err)
	assert.Equal(t, uint32(9), parsed.VendorID)
	assert.Empty(t, parsed.SubAttributes)
}

func TestVendorSpecificTooLong(t *testing.T) {
	vsa := NewVendorSpecific(9)
	vsa.Add(NewAttribute(1, bytes.Repeat([]byte{0x41}, 130)))
	vsa.Add(NewAttribute(2, bytes.Repeat([]byte{0x42}, 130)))

	_, err := vsa.ToAttribute()
	assert.ErrorIs(t, err, ErrAttributeTooLong)
}

func TestParseVendorSpecificMalformed(t *testing.T) {
	tests := []struct {
		name  string
		value []byte
	}{
		{"shorter than vendor id", []byte{0x00, 0x00, 0x09}},
		{"sub length below header", []byte{0x00, 0x00, 0x00, 0x09, 0x01, 0x01}},
		{"sub extends beyond region", []byte{0x00, 0x00, 0x00, 0x09, 0x01, 0x09, 'x'}},
		{"truncated sub header", []byte{0x00, 0x00, 0x00, 0x09, 0x01}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseVendorSpecific(NewAttribute(AttrVendorSpecific, tt.value))
			assert.ErrorIs(t, err, ErrMalformedAttribute)
		})
	}
}

func TestParseVendorSpecificWrongType(t *testing.T) {
	_, err := ParseVendorSpecific(NewStringAttribute(AttrUserName, "alice"))
	assert.ErrorIs(t, err, ErrMalformedAttribute)
}

func TestVendorSpecificGetters(t *testing.T) {
	vsa := NewVendorSpecific(9)
	vsa.Add(NewStringAttribute(1, "first"))
	vsa.Add(NewStringAttribute(1, "second"))
	vsa.Add(NewStringAttribute(2, "only"))

	assert.Len(t, vsa.Get(1), 2)

	only, err := vsa.GetOne(2)
	require.NoError(t, err)
	assert.Equal(t, "only", only.GetString())

	_, err = vsa.GetOne(1)
	assert.Error(t, err)

	_, err = vsa.GetOne(99)
	assert.ErrorIs(t, err, ErrUnknownAttribute)
}

func TestVendorSpecificGetByName(t *testing.T) {
	dict, err := dictionaries.NewDefault()
	require.NoError(t, err)

	vsa := NewVendorSpecific(9)
	vsa.Add(NewStringAttribute(1, "cisco-avpair=foo"))

	subs, err := vsa.GetByName(dict, "Cisco-AVPair")
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "cisco-avpair=foo", subs[0].GetString())

	_, err = vsa.GetByName(dict, "No-Such-Attr")
	assert.ErrorIs(t, err, ErrUnknownAttribute)
}

func TestVendorSpecificRemove(t *testing.T) {
	vsa := NewVendorSpecific(9)
	vsa.Add(NewStringAttribute(1, "a"))
	vsa.Add(NewStringAttribute(2, "keep"))
	vsa.Add(NewStringAttribute(1, "b"))
	vsa.Add(NewStringAttribute(3, "also-keep"))

	removed := vsa.Remove(1)
	assert.Equal(t, 2, removed)
	require.Len(t, vsa.SubAttributes, 2)
	assert.Equal(t, "keep", vsa.SubAttributes[0].GetString())
	assert.Equal(t, "also-keep", vsa.SubAttributes[1].GetString())

	assert.Zero(t, vsa.Remove(99))
}

func TestVendorSpecificAddTyped(t *testing.T) {
	dict, err := dictionaries.NewDefault()
	require.NoError(t, err)

	def, ok := dict.LookupByCode(9, 1)
	require.True(t, ok)

	vsa := NewVendorSpecific(9)
	require.NoError(t, vsa.AddTyped(def, "shell:priv-lvl=15"))
	require.Len(t, vsa.SubAttributes, 1)

	other := NewVendorSpecific(14122)
	err = other.AddTyped(def, "x")
	assert.ErrorIs(t, err, ErrUnknownAttribute)
}

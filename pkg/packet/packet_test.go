package packet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nasauth/radius/pkg/dictionaries"
)

func TestNewPacket(t *testing.T) {
	tests := []struct {
		name       string
		code       Code
		identifier uint8
	}{
		{"Access-Request", CodeAccessRequest, 1},
		{"Access-Accept", CodeAccessAccept, 2},
		{"Accounting-Request", CodeAccountingRequest, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.code, tt.identifier)
			assert.Equal(t, tt.code, p.Code)
			assert.Equal(t, tt.identifier, p.Identifier)
			assert.Equal(t, uint16(HeaderLength), p.Length())
			assert.Empty(t, p.Attributes)
		})
	}
}

func TestNewAccessRequest(t *testing.T) {
	p := NewAccessRequest("alice", "hunter2")
	assert.Equal(t, CodeAccessRequest, p.Code)

	user, ok := p.GetAttribute(AttrUserName)
	require.True(t, ok)
	assert.Equal(t, "alice", user.GetString())

	// The password stays cleartext until encoding obfuscates it.
	password, ok := p.GetAttribute(AttrUserPassword)
	require.True(t, ok)
	assert.Equal(t, "hunter2", password.GetString())

	assert.Equal(t, [AuthenticatorLength]byte{}, p.Authenticator)
}

func TestNewAccountingRequest(t *testing.T) {
	p := NewAccountingRequest()
	assert.Equal(t, CodeAccountingRequest, p.Code)
	assert.Equal(t, [AuthenticatorLength]byte{}, p.Authenticator)
}

func TestFactoryIdentifiersAdvance(t *testing.T) {
	first := NewAccessRequest("alice", "x")
	second := NewAccountingRequest()
	assert.Equal(t, uint8(first.Identifier+1), second.Identifier)
}

func TestNewResponse(t *testing.T) {
	dict, err := dictionaries.NewDefault()
	require.NoError(t, err)

	request := New(CodeAccessRequest, 7)
	request.Dict = dict

	reply := NewResponse(CodeAccessAccept, request)
	assert.Equal(t, CodeAccessAccept, reply.Code)
	assert.Equal(t, uint8(7), reply.Identifier)
	assert.Same(t, dict, reply.Dict)
}

func TestPacketLength(t *testing.T) {
	p := New(CodeAccessRequest, 1)
	assert.Equal(t, uint16(20), p.Length())

	p.AddAttribute(NewStringAttribute(AttrUserName, "alice"))
	assert.Equal(t, uint16(27), p.Length())

	p.AddAttribute(NewAttribute(AttrNASIPAddress, []byte{10, 0, 0, 1}))
	assert.Equal(t, uint16(33), p.Length())
}

func TestGetAttributes(t *testing.T) {
	p := New(CodeAccessRequest, 1)
	p.AddAttribute(NewAttribute(AttrProxyState, []byte("ps1")))
	p.AddAttribute(NewStringAttribute(AttrUserName, "alice"))
	p.AddAttribute(NewAttribute(AttrProxyState, []byte("ps2")))

	states := p.GetAttributes(AttrProxyState)
	require.Len(t, states, 2)
	assert.Equal(t, "ps1", states[0].GetString())
	assert.Equal(t, "ps2", states[1].GetString())

	_, ok := p.GetAttribute(AttrReplyMessage)
	assert.False(t, ok)
}

func TestRemoveAttributes(t *testing.T) {
	p := New(CodeAccessRequest, 1)
	p.AddAttribute(NewAttribute(AttrProxyState, []byte("ps1")))
	p.AddAttribute(NewStringAttribute(AttrUserName, "alice"))
	p.AddAttribute(NewAttribute(AttrProxyState, []byte("ps2")))
	p.AddAttribute(NewAttribute(AttrProxyState, []byte("ps3")))
	p.AddAttribute(NewStringAttribute(AttrReplyMessage, "hi"))

	removed := p.RemoveAttributes(AttrProxyState)
	assert.Equal(t, 3, removed)

	// Every occurrence is gone and the rest keep their order.
	require.Len(t, p.Attributes, 2)
	assert.Equal(t, AttrUserName, p.Attributes[0].Type)
	assert.Equal(t, AttrReplyMessage, p.Attributes[1].Type)

	assert.Zero(t, p.RemoveAttributes(AttrProxyState))
}

func TestAddAttributeByName(t *testing.T) {
	dict, err := dictionaries.NewDefault()
	require.NoError(t, err)

	p := New(CodeAccessRequest, 1)
	p.Dict = dict

	require.NoError(t, p.AddAttributeByName("User-Name", "alice"))
	require.NoError(t, p.AddAttributeByName("Service-Type", "Framed-User"))
	require.NoError(t, p.AddAttributeByName("NAS-IP-Address", "10.0.0.1"))

	require.Len(t, p.Attributes, 3)
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x02}, p.Attributes[1].Value)
	assert.Equal(t, []byte{0x0A, 0x00, 0x00, 0x01}, p.Attributes[2].Value)
}

func TestAddAttributeByNameVendor(t *testing.T) {
	dict, err := dictionaries.NewDefault()
	require.NoError(t, err)

	p := New(CodeAccessRequest, 1)
	p.Dict = dict

	require.NoError(t, p.AddAttributeByName("Cisco-AVPair", "shell:priv-lvl=15"))

	vsas, err := p.GetVendorSpecific(9)
	require.NoError(t, err)
	require.Len(t, vsas, 1)
	require.Len(t, vsas[0].SubAttributes, 1)
	assert.Equal(t, "shell:priv-lvl=15", vsas[0].SubAttributes[0].GetString())
}

func TestAddAttributeByNameUnknown(t *testing.T) {
	dict, err := dictionaries.NewDefault()
	require.NoError(t, err)

	p := New(CodeAccessRequest, 1)
	p.Dict = dict

	err = p.AddAttributeByName("No-Such-Attribute", "x")
	assert.ErrorIs(t, err, ErrUnknownAttribute)

	bare := New(CodeAccessRequest, 1)
	err = bare.AddAttributeByName("User-Name", "alice")
	assert.ErrorIs(t, err, ErrUnknownAttribute)
}

func TestAddAttributeByNameInvalidValue(t *testing.T) {
	dict, err := dictionaries.NewDefault()
	require.NoError(t, err)

	p := New(CodeAccessRequest, 1)
	p.Dict = dict

	err = p.AddAttributeByName("NAS-IP-Address", "not-an-ip")
	assert.ErrorIs(t, err, ErrInvalidValue)
}

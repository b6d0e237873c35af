package packet

import (
	"fmt"

	"github.com/nasauth/radius/pkg/dictionary"
)

// Packet represents a RADIUS packet as defined in RFC 2865. The length
// field is derived from the attribute list at encode time; attributes
// keep their insertion order on the wire.
type Packet struct {
	Code          Code
	Identifier    uint8
	Authenticator [AuthenticatorLength]byte
	Attributes    []*Attribute
	Dict          *dictionary.Dictionary
}

// New creates a packet with the given code and identifier.
func New(code Code, identifier uint8) *Packet {
	return &Packet{
		Code:       code,
		Identifier: identifier,
		Attributes: make([]*Attribute, 0),
	}
}

// NewAccessRequest creates an Access-Request carrying User-Name and the
// cleartext User-Password. The password is obfuscated during encoding,
// once the request authenticator exists. The identifier comes from the
// process-wide counter.
func NewAccessRequest(username, password string) *Packet {
	p := New(CodeAccessRequest, NextIdentifier())
	p.AddAttribute(NewStringAttribute(AttrUserName, username))
	p.AddAttribute(NewStringAttribute(AttrUserPassword, password))
	return p
}

// NewAccountingRequest creates an Accounting-Request with a zeroed
// authenticator; the real authenticator is computed over the serialized
// packet during encoding per RFC 2866.
func NewAccountingRequest() *Packet {
	return New(CodeAccountingRequest, NextIdentifier())
}

// NewResponse creates a reply packet for a request: same identifier, and
// the request's dictionary carried over.
func NewResponse(code Code, request *Packet) *Packet {
	p := New(code, request.Identifier)
	p.Dict = request.Dict
	return p
}

// Length returns the wire length: the header plus all serialized
// attributes.
func (p *Packet) Length() uint16 {
	length := HeaderLength
	for _, attr := range p.Attributes {
		length += attr.Len()
	}
	return uint16(length)
}

// AddAttribute appends an attribute, preserving insertion order.
func (p *Packet) AddAttribute(attr *Attribute) {
	p.Attributes = append(p.Attributes, attr)
}

// AddVendorSpecific serializes a VSA container and appends it.
func (p *Packet) AddVendorSpecific(vsa *VendorSpecific) error {
	attr, err := vsa.ToAttribute()
	if err != nil {
		return err
	}
	p.AddAttribute(attr)
	return nil
}

// AddAttributeByName resolves an attribute definition through the
// packet's dictionary and appends the parsed value.
func (p *Packet) AddAttributeByName(name, value string) error {
	if p.Dict == nil {
		return fmt.Errorf("%w: packet has no dictionary", ErrUnknownAttribute)
	}

	def, ok := p.Dict.LookupByName(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAttribute, name)
	}

	if def.VendorID != dictionary.VendorNone {
		vsa := NewVendorSpecific(uint32(def.VendorID))
		if err := vsa.AddTyped(def, value); err != nil {
			return err
		}
		return p.AddVendorSpecific(vsa)
	}

	attr, err := NewTypedAttribute(def, value)
	if err != nil {
		return err
	}

	p.AddAttribute(attr)
	return nil
}

// GetAttribute returns the first attribute with the given type.
func (p *Packet) GetAttribute(attrType uint8) (*Attribute, bool) {
	for _, attr := range p.Attributes {
		if attr.Type == attrType {
			return attr, true
		}
	}
	return nil, false
}

// GetAttributes returns all attributes with the given type in order.
func (p *Packet) GetAttributes(attrType uint8) []*Attribute {
	var attrs []*Attribute
	for _, attr := range p.Attributes {
		if attr.Type == attrType {
			attrs = append(attrs, attr)
		}
	}
	return attrs
}

// GetVendorSpecific parses and returns every VSA for the given vendor.
func (p *Packet) GetVendorSpecific(vendorID uint32) ([]*VendorSpecific, error) {
	var vsas []*VendorSpecific

	for _, attr := range p.GetAttributes(AttrVendorSpecific) {
		vsa, err := ParseVendorSpecific(attr)
		if err != nil {
			return nil, err
		}
		if vsa.VendorID == vendorID {
			vsas = append(vsas, vsa)
		}
	}

	return vsas, nil
}

// RemoveAttributes deletes every attribute with the given type,
// preserving the order of the rest. It returns the number removed.
func (p *Packet) RemoveAttributes(attrType uint8) int {
	kept := p.Attributes[:0]
	removed := 0

	for _, attr := range p.Attributes {
		if attr.Type == attrType {
			removed++
			continue
		}
		kept = append(kept, attr)
	}

	p.Attributes = kept
	return removed
}

// SetAuthenticator sets the packet authenticator.
func (p *Packet) SetAuthenticator(auth [AuthenticatorLength]byte) {
	p.Authenticator = auth
}

// String returns a debug rendering of the packet header.
func (p *Packet) String() string {
	return fmt.Sprintf("Code=%s(%d), ID=%d, Length=%d, Attributes=%d",
		p.Code.String(), uint8(p.Code), p.Identifier, p.Length(), len(p.Attributes))
}

package packet

import (
	"fmt"

	"github.com/nasauth/radius/pkg/crypto"
	"github.com/nasauth/radius/pkg/dictionary"
	"github.com/nasauth/radius/pkg/octets"
)

// The codec dispatches on a small set of packet shapes. Access-Request
// obfuscates User-Password during attribute serialization and cannot
// have its authenticator verified without the password; Accounting-Request
// computes its authenticator over the serialized packet; everything else
// is generic.

// EncodeRequest serializes a request packet. For Access-Request, a
// request authenticator is created first (unless the caller already set
// one) so the User-Password obfuscation has its initialization vector.
// For Accounting-Request, the authenticator is computed after the
// attributes are serialized and replaces the zero-filled field.
func (p *Packet) EncodeRequest(secret []byte) ([]byte, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("shared secret required to encode %s", p.Code)
	}

	switch p.Code {
	case CodeAccessRequest:
		if p.Authenticator == [AuthenticatorLength]byte{} {
			auth, err := crypto.NewRequestAuthenticator(secret)
			if err != nil {
				return nil, err
			}
			p.Authenticator = auth
		}

		attrs, err := p.encodeRequestAttributes(secret)
		if err != nil {
			return nil, err
		}

		return p.assemble(p.Authenticator, attrs)

	case CodeAccountingRequest:
		attrs, err := p.encodeAttributes()
		if err != nil {
			return nil, err
		}

		length := uint16(HeaderLength + len(attrs))
		p.Authenticator = crypto.AccountingRequestAuthenticator(uint8(p.Code), p.Identifier, length, attrs, secret)

		return p.assemble(p.Authenticator, attrs)

	default:
		attrs, err := p.encodeAttributes()
		if err != nil {
			return nil, err
		}

		return p.assemble(p.Authenticator, attrs)
	}
}

// EncodeResponse serializes a response packet, deriving the response
// authenticator from the request authenticator and the serialized
// attribute bytes.
func (p *Packet) EncodeResponse(secret []byte, requestAuth [AuthenticatorLength]byte) ([]byte, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("shared secret required to encode %s", p.Code)
	}

	attrs, err := p.encodeAttributes()
	if err != nil {
		return nil, err
	}

	length := uint16(HeaderLength + len(attrs))
	p.Authenticator = crypto.ResponseAuthenticator(uint8(p.Code), p.Identifier, length, requestAuth, attrs, secret)

	return p.assemble(p.Authenticator, attrs)
}

// encodeRequestAttributes serializes the attribute list, obfuscating
// every User-Password value with the request authenticator as IV. The
// attribute list itself is left untouched.
func (p *Packet) encodeRequestAttributes(secret []byte) ([]byte, error) {
	var data []byte

	for _, attr := range p.Attributes {
		if attr.Type == AttrUserPassword {
			cipher, err := crypto.EncryptUserPassword(attr.Value, secret, p.Authenticator)
			if err != nil {
				return nil, err
			}

			obfuscated := &Attribute{Type: attr.Type, Value: cipher}
			var appendErr error
			data, appendErr = obfuscated.appendWire(data)
			if appendErr != nil {
				return nil, appendErr
			}
			continue
		}

		var err error
		data, err = attr.appendWire(data)
		if err != nil {
			return nil, err
		}
	}

	return data, nil
}

func (p *Packet) encodeAttributes() ([]byte, error) {
	var data []byte

	for _, attr := range p.Attributes {
		var err error
		data, err = attr.appendWire(data)
		if err != nil {
			return nil, err
		}
	}

	return data, nil
}

func (p *Packet) assemble(auth [AuthenticatorLength]byte, attrs []byte) ([]byte, error) {
	length := HeaderLength + len(attrs)
	if length > MaxPacketLength {
		return nil, fmt.Errorf("%w: packet length %d exceeds %d", ErrMalformedPacket, length, MaxPacketLength)
	}

	data := make([]byte, length)
	data[0] = byte(p.Code)
	data[1] = p.Identifier
	octets.PutUint16(data[2:4], uint16(length))
	copy(data[4:HeaderLength], auth[:])
	copy(data[HeaderLength:], attrs)

	return data, nil
}

// Decode parses a datagram into a packet, checking the header length
// field against the data and walking the attribute TLVs. No authenticator
// processing happens here; use DecodeRequest or DecodeResponse.
func Decode(data []byte, dict *dictionary.Dictionary) (*Packet, error) {
	if len(data) < HeaderLength {
		return nil, fmt.Errorf("%w: %d bytes is below the header length", ErrMalformedPacket, len(data))
	}

	if len(data) > MaxPacketLength {
		return nil, fmt.Errorf("%w: %d bytes exceeds the maximum packet length", ErrMalformedPacket, len(data))
	}

	length := int(data[2])<<8 | int(data[3])
	if length != len(data) {
		return nil, fmt.Errorf("%w: header declares %d bytes, datagram has %d", ErrMalformedPacket, length, len(data))
	}

	p := &Packet{
		Code:       Code(data[0]),
		Identifier: data[1],
		Attributes: make([]*Attribute, 0),
		Dict:       dict,
	}
	copy(p.Authenticator[:], data[4:HeaderLength])

	offset := HeaderLength
	for offset < length {
		if offset+AttributeHeaderLength > length {
			return nil, fmt.Errorf("%w: truncated attribute header at offset %d", ErrMalformedPacket, offset)
		}

		attrType := data[offset]
		attrLength := int(data[offset+1])

		if attrLength < AttributeHeaderLength {
			return nil, fmt.Errorf("%w: attribute %d declares length %d", ErrMalformedPacket, attrType, attrLength)
		}

		if offset+attrLength > length {
			return nil, fmt.Errorf("%w: attribute %d extends beyond the packet", ErrMalformedPacket, attrType)
		}

		value := make([]byte, attrLength-AttributeHeaderLength)
		copy(value, data[offset+AttributeHeaderLength:offset+attrLength])

		p.Attributes = append(p.Attributes, &Attribute{Type: attrType, Value: value})
		offset += attrLength
	}

	return p, nil
}

// DecodeRequest parses an inbound request datagram. Accounting-Request
// authenticators are verified against their recomputation; Access-Request
// authenticators are accepted as-is, since they cannot be checked without
// the password, and every User-Password attribute is deobfuscated in
// place.
func DecodeRequest(data []byte, secret []byte, dict *dictionary.Dictionary) (*Packet, error) {
	p, err := Decode(data, dict)
	if err != nil {
		return nil, err
	}

	switch p.Code {
	case CodeAccessRequest:
		for _, attr := range p.GetAttributes(AttrUserPassword) {
			cleartext, decErr := crypto.DecryptUserPassword(attr.Value, secret, p.Authenticator)
			if decErr != nil {
				return nil, fmt.Errorf("%w: User-Password: %v", ErrMalformedAttribute, decErr)
			}
			attr.Value = cleartext
		}

	case CodeAccountingRequest:
		attrs := data[HeaderLength:]
		if !crypto.VerifyAccountingRequestAuthenticator(uint8(p.Code), p.Identifier, uint16(len(data)), attrs, p.Authenticator, secret) {
			return nil, fmt.Errorf("%w: %s id=%d", crypto.ErrAuthenticatorMismatch, p.Code, p.Identifier)
		}
	}

	return p, nil
}

// DecodeResponse parses a response datagram against the request that
// elicited it. The identifier is checked before the authenticator.
func DecodeResponse(data []byte, secret []byte, request *Packet) (*Packet, error) {
	p, err := Decode(data, request.Dict)
	if err != nil {
		return nil, err
	}

	if p.Identifier != request.Identifier {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrIdentifierMismatch, request.Identifier, p.Identifier)
	}

	attrs := data[HeaderLength:]
	if !crypto.VerifyResponseAuthenticator(uint8(p.Code), p.Identifier, uint16(len(data)), request.Authenticator, attrs, p.Authenticator, secret) {
		return nil, fmt.Errorf("%w: %s id=%d", crypto.ErrAuthenticatorMismatch, p.Code, p.Identifier)
	}

	return p, nil
}

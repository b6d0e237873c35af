package packet

import (
	"fmt"

	"github.com/nasauth/radius/pkg/dictionary"
)

// Attribute is a single RADIUS attribute TLV. Value carries the wire
// octets; the length field is derived, never stored.
type Attribute struct {
	Type  uint8
	Value []byte
}

// NewAttribute creates an attribute from raw octets.
func NewAttribute(attrType uint8, value []byte) *Attribute {
	return &Attribute{Type: attrType, Value: value}
}

// NewStringAttribute creates an attribute from a string value.
func NewStringAttribute(attrType uint8, value string) *Attribute {
	return &Attribute{Type: attrType, Value: []byte(value)}
}

// NewTypedAttribute parses a textual value according to the dictionary
// definition and creates the attribute.
func NewTypedAttribute(def *dictionary.AttributeType, value string) (*Attribute, error) {
	data, err := EncodeValue(def, value)
	if err != nil {
		return nil, err
	}
	return &Attribute{Type: def.Code, Value: data}, nil
}

// Len returns the serialized size of the attribute: type, length and value.
func (a *Attribute) Len() int {
	return AttributeHeaderLength + len(a.Value)
}

// SetValue replaces the attribute's value with the parse of a textual
// value per the dictionary definition.
func (a *Attribute) SetValue(def *dictionary.AttributeType, value string) error {
	data, err := EncodeValue(def, value)
	if err != nil {
		return err
	}
	a.Value = data
	return nil
}

// GetString returns the value as a string.
func (a *Attribute) GetString() string {
	return string(a.Value)
}

// String returns a debug rendering of the attribute.
func (a *Attribute) String() string {
	return fmt.Sprintf("Type=%d, Length=%d, Value=%x", a.Type, a.Len(), a.Value)
}

// appendWire appends the attribute TLV to dst, rejecting values that do
// not fit the one-byte length field.
func (a *Attribute) appendWire(dst []byte) ([]byte, error) {
	if len(a.Value) > MaxAttributeValueLength {
		return nil, fmt.Errorf("%w: attribute %d value is %d bytes", ErrAttributeTooLong, a.Type, len(a.Value))
	}

	dst = append(dst, a.Type, uint8(a.Len()))
	dst = append(dst, a.Value...)
	return dst, nil
}

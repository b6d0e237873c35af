package packet

import (
	"fmt"

	"github.com/nasauth/radius/pkg/dictionary"
	"github.com/nasauth/radius/pkg/octets"
)

// maxVendorValueLength bounds the serialized VSA value: vendor-id plus
// sub-attribute TLVs. Implementations needing more must emit multiple
// VSA occurrences.
const maxVendorValueLength = 251

// VendorSpecific is the composite Vendor-Specific attribute (type 26): a
// vendor ID followed by an ordered list of sub-attributes, all belonging
// to that vendor's space.
type VendorSpecific struct {
	VendorID      uint32
	SubAttributes []*Attribute
}

// NewVendorSpecific creates a VSA container for the given vendor.
func NewVendorSpecific(vendorID uint32, subs ...*Attribute) *VendorSpecific {
	return &VendorSpecific{VendorID: vendorID, SubAttributes: subs}
}

// Add appends a sub-attribute, preserving insertion order on the wire.
func (v *VendorSpecific) Add(sub *Attribute) {
	v.SubAttributes = append(v.SubAttributes, sub)
}

// AddTyped parses a textual value for a vendor attribute definition and
// appends it. The definition must belong to this container's vendor.
func (v *VendorSpecific) AddTyped(def *dictionary.AttributeType, value string) error {
	if def.VendorID != int64(v.VendorID) {
		return fmt.Errorf("%w: attribute %q belongs to vendor %d, container is vendor %d",
			ErrUnknownAttribute, def.Name, def.VendorID, v.VendorID)
	}

	sub, err := NewTypedAttribute(def, value)
	if err != nil {
		return err
	}

	v.Add(sub)
	return nil
}

// Get returns all sub-attributes with the given code in insertion order.
func (v *VendorSpecific) Get(code uint8) []*Attribute {
	var subs []*Attribute
	for _, sub := range v.SubAttributes {
		if sub.Type == code {
			subs = append(subs, sub)
		}
	}
	return subs
}

// GetOne returns the single sub-attribute with the given code. It fails
// when the code is absent or occurs more than once.
func (v *VendorSpecific) GetOne(code uint8) (*Attribute, error) {
	subs := v.Get(code)
	switch len(subs) {
	case 0:
		return nil, fmt.Errorf("%w: vendor %d sub-attribute %d", ErrUnknownAttribute, v.VendorID, code)
	case 1:
		return subs[0], nil
	default:
		return nil, fmt.Errorf("vendor %d sub-attribute %d occurs %d times", v.VendorID, code, len(subs))
	}
}

// GetByName resolves a sub-attribute code through the dictionary and
// returns all occurrences.
func (v *VendorSpecific) GetByName(dict *dictionary.Dictionary, name string) ([]*Attribute, error) {
	def, ok := dict.LookupVendorAttribute(int64(v.VendorID), name)
	if !ok {
		return nil, fmt.Errorf("%w: %q in vendor space %d", ErrUnknownAttribute, name, v.VendorID)
	}
	return v.Get(def.Code), nil
}

// Remove deletes every sub-attribute with the given code, preserving the
// order of the rest. It returns the number removed.
func (v *VendorSpecific) Remove(code uint8) int {
	kept := v.SubAttributes[:0]
	removed := 0

	for _, sub := range v.SubAttributes {
		if sub.Type == code {
			removed++
			continue
		}
		kept = append(kept, sub)
	}

	v.SubAttributes = kept
	return removed
}

// ToAttribute serializes the container into a type 26 attribute.
func (v *VendorSpecific) ToAttribute() (*Attribute, error) {
	value := make([]byte, 0, VendorSpecificHeaderLength)
	value = octets.AppendUint32(value, v.VendorID)

	for _, sub := range v.SubAttributes {
		var err error
		value, err = sub.appendWire(value)
		if err != nil {
			return nil, err
		}
	}

	if len(value) > maxVendorValueLength {
		return nil, fmt.Errorf("%w: vendor %d VSA value is %d bytes", ErrAttributeTooLong, v.VendorID, len(value))
	}

	return &Attribute{Type: AttrVendorSpecific, Value: value}, nil
}

// ParseVendorSpecific decodes a type 26 attribute into its vendor ID and
// sub-attribute list. The sub-TLV walk must consume the value exactly.
func ParseVendorSpecific(attr *Attribute) (*VendorSpecific, error) {
	if attr.Type != AttrVendorSpecific {
		return nil, fmt.Errorf("%w: type %d is not Vendor-Specific", ErrMalformedAttribute, attr.Type)
	}

	if len(attr.Value) < VendorSpecificHeaderLength {
		return nil, fmt.Errorf("%w: VSA value is %d bytes", ErrMalformedAttribute, len(attr.Value))
	}

	vsa := &VendorSpecific{
		VendorID: octets.Uint32(attr.Value[:VendorSpecificHeaderLength]),
	}

	data := attr.Value[VendorSpecificHeaderLength:]
	offset := 0

	for offset < len(data) {
		if offset+AttributeHeaderLength > len(data) {
			return nil, fmt.Errorf("%w: truncated sub-attribute header at offset %d", ErrMalformedAttribute, offset)
		}

		subType := data[offset]
		subLength := int(data[offset+1])

		if subLength < AttributeHeaderLength {
			return nil, fmt.Errorf("%w: sub-attribute %d declares length %d", ErrMalformedAttribute, subType, subLength)
		}

		if offset+subLength > len(data) {
			return nil, fmt.Errorf("%w: sub-attribute %d extends beyond the VSA", ErrMalformedAttribute, subType)
		}

		value := make([]byte, subLength-AttributeHeaderLength)
		copy(value, data[offset+AttributeHeaderLength:offset+subLength])

		vsa.SubAttributes = append(vsa.SubAttributes, &Attribute{Type: subType, Value: value})
		offset += subLength
	}

	return vsa, nil
}

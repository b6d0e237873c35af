package dictionary

import (
	"fmt"
)

type codeKey struct {
	vendor int64
	code   uint8
}

type nameKey struct {
	vendor int64
	name   string
}

// Dictionary is a registry of attribute types with precomputed lookup
// indexes by (vendor, code) and by name. It is built once at startup and
// is read-only afterwards, so concurrent readers need no locking.
type Dictionary struct {
	byCode map[codeKey]*AttributeType
	byName map[nameKey]*AttributeType

	// firstByName resolves a bare name lookup. The earliest registration
	// wins, so standard attributes shadow later vendor attributes of the
	// same name.
	firstByName map[string]*AttributeType

	vendorByID   map[uint32]*Vendor
	vendorByName map[string]*Vendor
}

// New creates an empty dictionary.
func New() *Dictionary {
	return &Dictionary{
		byCode:       make(map[codeKey]*AttributeType),
		byName:       make(map[nameKey]*AttributeType),
		firstByName:  make(map[string]*AttributeType),
		vendorByID:   make(map[uint32]*Vendor),
		vendorByName: make(map[string]*Vendor),
	}
}

// Register adds a single attribute type. It fails on a duplicate
// (vendor, code) pair or a duplicate name within the same vendor space.
// Name collisions across vendor spaces are permitted.
func (d *Dictionary) Register(attr *AttributeType) error {
	if attr.Name == "" {
		return fmt.Errorf("attribute %d has no name", attr.Code)
	}

	if !attr.DataType.IsValid() {
		return fmt.Errorf("attribute %q has unsupported data type %q", attr.Name, attr.DataType)
	}

	ck := codeKey{vendor: attr.VendorID, code: attr.Code}
	if existing, ok := d.byCode[ck]; ok {
		return fmt.Errorf("duplicate attribute code %d in vendor space %d: already registered as %q",
			attr.Code, attr.VendorID, existing.Name)
	}

	nk := nameKey{vendor: attr.VendorID, name: attr.Name}
	if _, ok := d.byName[nk]; ok {
		return fmt.Errorf("duplicate attribute name %q in vendor space %d", attr.Name, attr.VendorID)
	}

	d.byCode[ck] = attr
	d.byName[nk] = attr

	if _, ok := d.firstByName[attr.Name]; !ok {
		d.firstByName[attr.Name] = attr
	}

	return nil
}

// RegisterAll adds a batch of attribute types, stopping at the first failure.
func (d *Dictionary) RegisterAll(attrs []*AttributeType) error {
	for _, attr := range attrs {
		if err := d.Register(attr); err != nil {
			return err
		}
	}
	return nil
}

// RegisterVendor adds a vendor and all of its attributes. Attribute
// definitions whose VendorID is unset are stamped with the vendor's ID.
func (d *Dictionary) RegisterVendor(vendor *Vendor) error {
	if vendor.Name == "" {
		return fmt.Errorf("vendor %d has no name", vendor.ID)
	}

	if existing, ok := d.vendorByID[vendor.ID]; ok {
		return fmt.Errorf("duplicate vendor ID %d: already registered as %q", vendor.ID, existing.Name)
	}

	if _, ok := d.vendorByName[vendor.Name]; ok {
		return fmt.Errorf("duplicate vendor name %q", vendor.Name)
	}

	for _, attr := range vendor.Attributes {
		if attr.VendorID == 0 || attr.VendorID == VendorNone {
			attr.VendorID = int64(vendor.ID)
		}

		if attr.VendorID != int64(vendor.ID) {
			return fmt.Errorf("attribute %q declares vendor %d inside vendor %d",
				attr.Name, attr.VendorID, vendor.ID)
		}

		if err := d.Register(attr); err != nil {
			return err
		}
	}

	d.vendorByID[vendor.ID] = vendor
	d.vendorByName[vendor.Name] = vendor

	return nil
}

// LookupByCode finds an attribute type by vendor space and code.
// Use VendorNone for standard attributes.
func (d *Dictionary) LookupByCode(vendor int64, code uint8) (*AttributeType, bool) {
	attr, ok := d.byCode[codeKey{vendor: vendor, code: code}]
	return attr, ok
}

// LookupByName finds an attribute type by bare name across all vendor
// spaces; the earliest registration wins.
func (d *Dictionary) LookupByName(name string) (*AttributeType, bool) {
	attr, ok := d.firstByName[name]
	return attr, ok
}

// LookupVendorAttribute finds an attribute by name within one vendor space.
func (d *Dictionary) LookupVendorAttribute(vendor int64, name string) (*AttributeType, bool) {
	attr, ok := d.byName[nameKey{vendor: vendor, name: name}]
	return attr, ok
}

// Vendor finds a vendor definition by ID.
func (d *Dictionary) Vendor(id uint32) (*Vendor, bool) {
	vendor, ok := d.vendorByID[id]
	return vendor, ok
}

// VendorByName finds a vendor definition by name.
func (d *Dictionary) VendorByName(name string) (*Vendor, bool) {
	vendor, ok := d.vendorByName[name]
	return vendor, ok
}

// VendorName returns the registered name for a vendor ID.
func (d *Dictionary) VendorName(id uint32) (string, bool) {
	vendor, ok := d.vendorByID[id]
	if !ok {
		return "", false
	}
	return vendor.Name, true
}

// Merge copies every attribute and vendor from other into d, failing on
// the same conflicts Register would report.
func (d *Dictionary) Merge(other *Dictionary) error {
	for _, vendor := range other.vendorByID {
		if err := d.RegisterVendor(&Vendor{ID: vendor.ID, Name: vendor.Name}); err != nil {
			return err
		}
	}

	for _, attr := range other.byCode {
		if err := d.Register(attr); err != nil {
			return err
		}
	}

	return nil
}

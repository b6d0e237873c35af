package packet

const (
	// HeaderLength is the length of the RADIUS packet header in bytes.
	HeaderLength = 20
	// MaxPacketLength is the maximum allowed RADIUS packet length.
	MaxPacketLength = 4096
	// AuthenticatorLength is the length of the authenticator field.
	AuthenticatorLength = 16
	// AttributeHeaderLength is the length of an attribute header (Type + Length).
	AttributeHeaderLength = 2
	// MaxAttributeValueLength is the longest value a single attribute can carry.
	MaxAttributeValueLength = 253
	// VendorSpecificHeaderLength is the length of a VSA value prefix (Vendor-Id).
	VendorSpecificHeaderLength = 4
)

// Well-known standard attribute types used directly by the codec and server.
const (
	AttrUserName       uint8 = 1
	AttrUserPassword   uint8 = 2
	AttrNASIPAddress   uint8 = 4
	AttrReplyMessage   uint8 = 18
	AttrState          uint8 = 24
	AttrClass          uint8 = 25
	AttrVendorSpecific uint8 = 26
	AttrProxyState     uint8 = 33
	AttrAcctStatusType uint8 = 40
)

package packet

import "errors"

var (
	// ErrMalformedPacket indicates a length mismatch, truncated header or
	// attribute walk failure while decoding a datagram.
	ErrMalformedPacket = errors.New("malformed packet")

	// ErrMalformedAttribute indicates a bad TLV inside a composite
	// attribute, such as a Vendor-Specific sub-attribute walk that does
	// not consume the region exactly.
	ErrMalformedAttribute = errors.New("malformed attribute")

	// ErrAttributeTooLong indicates a value that cannot fit the one-byte
	// attribute length field.
	ErrAttributeTooLong = errors.New("attribute too long")

	// ErrUnknownAttribute indicates a dictionary lookup by name or code
	// returned nothing where a definition was required.
	ErrUnknownAttribute = errors.New("unknown attribute")

	// ErrInvalidValue indicates a value string that cannot be parsed for
	// the attribute's declared data type.
	ErrInvalidValue = errors.New("invalid value")

	// ErrIdentifierMismatch indicates a response whose identifier does not
	// match the request it is being decoded against.
	ErrIdentifierMismatch = errors.New("identifier mismatch")
)

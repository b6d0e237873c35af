package packet

import "fmt"

// Code represents a RADIUS packet code as defined in RFC 2865.
type Code uint8

const (
	CodeAccessRequest      Code = 1
	CodeAccessAccept       Code = 2
	CodeAccessReject       Code = 3
	CodeAccountingRequest  Code = 4
	CodeAccountingResponse Code = 5
	CodeAccessChallenge    Code = 11
	CodeDisconnectRequest  Code = 40
	CodeDisconnectACK      Code = 41
	CodeDisconnectNAK      Code = 42
	CodeCoARequest         Code = 43
	CodeCoAAck             Code = 44
	CodeCoANak             Code = 45
	CodeReserved           Code = 255
)

// String returns the protocol name of the packet code.
func (c Code) String() string {
	switch c {
	case CodeAccessRequest:
		return "Access-Request"
	case CodeAccessAccept:
		return "Access-Accept"
	case CodeAccessReject:
		return "Access-Reject"
	case CodeAccountingRequest:
		return "Accounting-Request"
	case CodeAccountingResponse:
		return "Accounting-Response"
	case CodeAccessChallenge:
		return "Access-Challenge"
	case CodeDisconnectRequest:
		return "Disconnect-Request"
	case CodeDisconnectACK:
		return "Disconnect-ACK"
	case CodeDisconnectNAK:
		return "Disconnect-NAK"
	case CodeCoARequest:
		return "CoA-Request"
	case CodeCoAAck:
		return "CoA-ACK"
	case CodeCoANak:
		return "CoA-NAK"
	case CodeReserved:
		return "Reserved"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(c))
	}
}

// IsRequest reports whether the code names a request packet.
func (c Code) IsRequest() bool {
	switch c {
	case CodeAccessRequest, CodeAccountingRequest, CodeDisconnectRequest, CodeCoARequest:
		return true
	default:
		return false
	}
}

// IsResponse reports whether the code names a response packet.
func (c Code) IsResponse() bool {
	switch c {
	case CodeAccessAccept, CodeAccessReject, CodeAccessChallenge,
		CodeAccountingResponse,
		CodeDisconnectACK, CodeDisconnectNAK,
		CodeCoAAck, CodeCoANak:
		return true
	default:
		return false
	}
}

// ExpectedResponseCodes returns the response codes a conformant peer may
// answer a request with.
func (c Code) ExpectedResponseCodes() []Code {
	switch c {
	case CodeAccessRequest:
		return []Code{CodeAccessAccept, CodeAccessReject, CodeAccessChallenge}
	case CodeAccountingRequest:
		return []Code{CodeAccountingResponse}
	case CodeDisconnectRequest:
		return []Code{CodeDisconnectACK, CodeDisconnectNAK}
	case CodeCoARequest:
		return []Code{CodeCoAAck, CodeCoANak}
	default:
		return nil
	}
}

package packet

import (
	"encoding/hex"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/nasauth/radius/pkg/dictionary"
	"github.com/nasauth/radius/pkg/octets"
)

// EncodeValue parses a textual value according to the attribute type's
// declared data type and returns the wire octets. Integer values accept
// the dictionary's named aliases.
func EncodeValue(def *dictionary.AttributeType, value string) ([]byte, error) {
	switch def.DataType {
	case dictionary.DataTypeString:
		if value == "" {
			return nil, fmt.Errorf("%w: empty string for %s", ErrInvalidValue, def.Name)
		}
		if len(value) > MaxAttributeValueLength {
			return nil, fmt.Errorf("%w: %s value is %d bytes", ErrAttributeTooLong, def.Name, len(value))
		}
		return []byte(value), nil

	case dictionary.DataTypeInteger:
		if named, ok := def.ValueByName(value); ok {
			return encodeUint32(named), nil
		}
		parsed, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer for %s", ErrInvalidValue, value, def.Name)
		}
		return encodeUint32(uint32(parsed)), nil

	case dictionary.DataTypeIPAddr:
		ip := net.ParseIP(value)
		if ip == nil {
			return nil, fmt.Errorf("%w: %q is not an IP address for %s", ErrInvalidValue, value, def.Name)
		}
		ipv4 := ip.To4()
		if ipv4 == nil {
			return nil, fmt.Errorf("%w: %q is not an IPv4 address for %s", ErrInvalidValue, value, def.Name)
		}
		return []byte(ipv4), nil

	case dictionary.DataTypeOctets:
		data, err := hex.DecodeString(strings.TrimPrefix(value, "0x"))
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a hex string for %s", ErrInvalidValue, value, def.Name)
		}
		if len(data) > MaxAttributeValueLength {
			return nil, fmt.Errorf("%w: %s value is %d bytes", ErrAttributeTooLong, def.Name, len(data))
		}
		return data, nil

	default:
		return nil, fmt.Errorf("%w: unsupported data type %q", ErrInvalidValue, def.DataType)
	}
}

// FormatValue renders wire octets for display according to the attribute
// type's declared data type. Integers render their dictionary alias when
// one exists; ipaddr renders dotted-quad.
func FormatValue(def *dictionary.AttributeType, data []byte) string {
	switch def.DataType {
	case dictionary.DataTypeString:
		return string(data)

	case dictionary.DataTypeInteger:
		if len(data) != 4 {
			return fmt.Sprintf("0x%x", data)
		}
		value := octets.Uint32(data)
		if name, ok := def.ValueName(value); ok {
			return name
		}
		return strconv.FormatUint(uint64(value), 10)

	case dictionary.DataTypeIPAddr:
		if len(data) != 4 {
			return fmt.Sprintf("0x%x", data)
		}
		return net.IP(data).String()

	default:
		return fmt.Sprintf("0x%x", data)
	}
}

func encodeUint32(value uint32) []byte {
	data := make([]byte, 4)
	octets.PutUint32(data, value)
	return data
}

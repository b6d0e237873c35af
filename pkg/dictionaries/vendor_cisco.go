package dictionaries

import (
	"github.com/nasauth/radius/pkg/dictionary"
)

// CiscoVendor contains the common Cisco vendor attributes (vendor ID 9).
var CiscoVendor = &dictionary.Vendor{
	ID:   9,
	Name: "Cisco",
	Attributes: []*dictionary.AttributeType{
		{Code: 1, Name: "Cisco-AVPair", DataType: dictionary.DataTypeString},
		{Code: 2, Name: "Cisco-NAS-Port", DataType: dictionary.DataTypeString},
		{ // matches the disconnect cause values a Cisco NAS reports
			Code:     195,
			Name:     "Cisco-Disconnect-Cause",
			DataType: dictionary.DataTypeInteger,
			Values: map[string]uint32{
				"No-Reason":        0,
				"No-Disconnect":    1,
				"Unknown":          2,
				"Call-Disconnect":  3,
				"CLID-Auth-Fail":   4,
				"No-Modem":         9,
				"Idle-Timeout":     21,
				"Session-Timeout":  100,
				"User-Request":     102,
			},
		},
	},
}

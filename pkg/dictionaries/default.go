// Package dictionaries provides embedded dictionary definitions: the
// standard RFC attribute space and common vendor spaces.
package dictionaries

import (
	"github.com/nasauth/radius/pkg/dictionary"
)

// NewDefault creates a dictionary pre-loaded with the standard RFC 2865,
// 2866, 2868 and 2869 attributes (codes 1 through 79) plus the bundled
// vendor dictionaries. Additional dictionaries may be merged on top, for
// example from a dictionary.FileSource.
func NewDefault() (*dictionary.Dictionary, error) {
	dict := dictionary.New()

	if err := dict.RegisterAll(StandardAttributes); err != nil {
		return nil, err
	}

	if err := dict.RegisterVendor(CiscoVendor); err != nil {
		return nil, err
	}

	return dict, nil
}

// StandardAttributes contains the standard attribute space, codes 1-79.
var StandardAttributes = []*dictionary.AttributeType{
	{VendorID: dictionary.VendorNone, Code: 1, Name: "User-Name", DataType: dictionary.DataTypeString},     // RFC2865
	{VendorID: dictionary.VendorNone, Code: 2, Name: "User-Password", DataType: dictionary.DataTypeString}, // RFC2865
	{VendorID: dictionary.VendorNone, Code: 3, Name: "CHAP-Password", DataType: dictionary.DataTypeOctets}, // RFC2865
	{VendorID: dictionary.VendorNone, Code: 4, Name: "NAS-IP-Address", DataType: dictionary.DataTypeIPAddr}, // RFC2865
	{VendorID: dictionary.VendorNone, Code: 5, Name: "NAS-Port", DataType: dictionary.DataTypeInteger},     // RFC2865
	{ // RFC2865
		VendorID: dictionary.VendorNone,
		Code:     6,
		Name:     "Service-Type",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"Login-User":              1,
			"Framed-User":             2,
			"Callback-Login-User":     3,
			"Callback-Framed-User":    4,
			"Outbound-User":           5,
			"Administrative-User":     6,
			"NAS-Prompt-User":         7,
			"Authenticate-Only":       8,
			"Callback-NAS-Prompt":     9,
			"Call-Check":              10,
			"Callback-Administrative": 11,
		},
	},
	{ // RFC2865
		VendorID: dictionary.VendorNone,
		Code:     7,
		Name:     "Framed-Protocol",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"PPP":               1,
			"SLIP":              2,
			"ARAP":              3,
			"Gandalf-SLML":      4,
			"Xylogics-IPX-SLIP": 5,
			"X.75-Synchronous":  6,
		},
	},
	{VendorID: dictionary.VendorNone, Code: 8, Name: "Framed-IP-Address", DataType: dictionary.DataTypeIPAddr}, // RFC2865
	{VendorID: dictionary.VendorNone, Code: 9, Name: "Framed-IP-Netmask", DataType: dictionary.DataTypeIPAddr}, // RFC2865
	{ // RFC2865
		VendorID: dictionary.VendorNone,
		Code:     10,
		Name:     "Framed-Routing",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"None":             0,
			"Broadcast":        1,
			"Listen":           2,
			"Broadcast-Listen": 3,
		},
	},
	{VendorID: dictionary.VendorNone, Code: 11, Name: "Filter-Id", DataType: dictionary.DataTypeString},    // RFC2865
	{VendorID: dictionary.VendorNone, Code: 12, Name: "Framed-MTU", DataType: dictionary.DataTypeInteger}, // RFC2865
	{ // RFC2865
		VendorID: dictionary.VendorNone,
		Code:     13,
		Name:     "Framed-Compression",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"None":                   0,
			"Van-Jacobson-TCP-IP":    1,
			"IPX-Header-Compression": 2,
			"Stac-LZS":               3,
		},
	},
	{VendorID: dictionary.VendorNone, Code: 14, Name: "Login-IP-Host", DataType: dictionary.DataTypeIPAddr}, // RFC2865
	{ // RFC2865
		VendorID: dictionary.VendorNone,
		Code:     15,
		Name:     "Login-Service",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"Telnet":          0,
			"Rlogin":          1,
			"TCP-Clear":       2,
			"PortMaster":      3,
			"LAT":             4,
			"X25-PAD":         5,
			"X25-T3POS":       6,
			"TCP-Clear-Quiet": 8,
		},
	},
	{ // RFC2865
		VendorID: dictionary.VendorNone,
		Code:     16,
		Name:     "Login-TCP-Port",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"Telnet": 23,
			"Rlogin": 513,
			"Rsh":    514,
		},
	},
	{VendorID: dictionary.VendorNone, Code: 18, Name: "Reply-Message", DataType: dictionary.DataTypeString},      // RFC2865
	{VendorID: dictionary.VendorNone, Code: 19, Name: "Callback-Number", DataType: dictionary.DataTypeString},    // RFC2865
	{VendorID: dictionary.VendorNone, Code: 20, Name: "Callback-Id", DataType: dictionary.DataTypeString},        // RFC2865
	{VendorID: dictionary.VendorNone, Code: 22, Name: "Framed-Route", DataType: dictionary.DataTypeString},       // RFC2865
	{VendorID: dictionary.VendorNone, Code: 23, Name: "Framed-IPX-Network", DataType: dictionary.DataTypeIPAddr}, // RFC2865
	{VendorID: dictionary.VendorNone, Code: 24, Name: "State", DataType: dictionary.DataTypeOctets},              // RFC2865
	{VendorID: dictionary.VendorNone, Code: 25, Name: "Class", DataType: dictionary.DataTypeOctets},              // RFC2865
	{VendorID: dictionary.VendorNone, Code: 26, Name: "Vendor-Specific", DataType: dictionary.DataTypeOctets},    // RFC2865
	{VendorID: dictionary.VendorNone, Code: 27, Name: "Session-Timeout", DataType: dictionary.DataTypeInteger},   // RFC2865
	{VendorID: dictionary.VendorNone, Code: 28, Name: "Idle-Timeout", DataType: dictionary.DataTypeInteger},      // RFC2865
	{ // RFC2865
		VendorID: dictionary.VendorNone,
		Code:     29,
		Name:     "Termination-Action",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"Default":        0,
			"RADIUS-Request": 1,
		},
	},
	{VendorID: dictionary.VendorNone, Code: 30, Name: "Called-Station-Id", DataType: dictionary.DataTypeString},          // RFC2865
	{VendorID: dictionary.VendorNone, Code: 31, Name: "Calling-Station-Id", DataType: dictionary.DataTypeString},         // RFC2865
	{VendorID: dictionary.VendorNone, Code: 32, Name: "NAS-Identifier", DataType: dictionary.DataTypeString},             // RFC2865
	{VendorID: dictionary.VendorNone, Code: 33, Name: "Proxy-State", DataType: dictionary.DataTypeOctets},                // RFC2865
	{VendorID: dictionary.VendorNone, Code: 34, Name: "Login-LAT-Service", DataType: dictionary.DataTypeString},          // RFC2865
	{VendorID: dictionary.VendorNone, Code: 35, Name: "Login-LAT-Node", DataType: dictionary.DataTypeString},             // RFC2865
	{VendorID: dictionary.VendorNone, Code: 36, Name: "Login-LAT-Group", DataType: dictionary.DataTypeOctets},            // RFC2865
	{VendorID: dictionary.VendorNone, Code: 37, Name: "Framed-AppleTalk-Link", DataType: dictionary.DataTypeInteger},     // RFC2865
	{VendorID: dictionary.VendorNone, Code: 38, Name: "Framed-AppleTalk-Network", DataType: dictionary.DataTypeInteger},  // RFC2865
	{VendorID: dictionary.VendorNone, Code: 39, Name: "Framed-AppleTalk-Zone", DataType: dictionary.DataTypeString},      // RFC2865
	{ // RFC2866
		VendorID: dictionary.VendorNone,
		Code:     40,
		Name:     "Acct-Status-Type",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"Start":          1,
			"Stop":           2,
			"Interim-Update": 3,
			"Accounting-On":  7,
			"Accounting-Off": 8,
			"Failed":         15,
		},
	},
	{VendorID: dictionary.VendorNone, Code: 41, Name: "Acct-Delay-Time", DataType: dictionary.DataTypeInteger},    // RFC2866
	{VendorID: dictionary.VendorNone, Code: 42, Name: "Acct-Input-Octets", DataType: dictionary.DataTypeInteger},  // RFC2866
	{VendorID: dictionary.VendorNone, Code: 43, Name: "Acct-Output-Octets", DataType: dictionary.DataTypeInteger}, // RFC2866
	{VendorID: dictionary.VendorNone, Code: 44, Name: "Acct-Session-Id", DataType: dictionary.DataTypeString},     // RFC2866
	{ // RFC2866
		VendorID: dictionary.VendorNone,
		Code:     45,
		Name:     "Acct-Authentic",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"RADIUS": 1,
			"Local":  2,
			"Remote": 3,
		},
	},
	{VendorID: dictionary.VendorNone, Code: 46, Name: "Acct-Session-Time", DataType: dictionary.DataTypeInteger},   // RFC2866
	{VendorID: dictionary.VendorNone, Code: 47, Name: "Acct-Input-Packets", DataType: dictionary.DataTypeInteger},  // RFC2866
	{VendorID: dictionary.VendorNone, Code: 48, Name: "Acct-Output-Packets", DataType: dictionary.DataTypeInteger}, // RFC2866
	{ // RFC2866
		VendorID: dictionary.VendorNone,
		Code:     49,
		Name:     "Acct-Terminate-Cause",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"User-Request":        1,
			"Lost-Carrier":        2,
			"Lost-Service":        3,
			"Idle-Timeout":        4,
			"Session-Timeout":     5,
			"Admin-Reset":         6,
			"Admin-Reboot":        7,
			"Port-Error":          8,
			"NAS-Error":           9,
			"NAS-Request":         10,
			"NAS-Reboot":          11,
			"Port-Unneeded":       12,
			"Port-Preempted":      13,
			"Port-Suspended":      14,
			"Service-Unavailable": 15,
			"Callback":            16,
			"User-Error":          17,
			"Host-Request":        18,
		},
	},
	{VendorID: dictionary.VendorNone, Code: 50, Name: "Acct-Multi-Session-Id", DataType: dictionary.DataTypeString},  // RFC2866
	{VendorID: dictionary.VendorNone, Code: 51, Name: "Acct-Link-Count", DataType: dictionary.DataTypeInteger},      // RFC2866
	{VendorID: dictionary.VendorNone, Code: 52, Name: "Acct-Input-Gigawords", DataType: dictionary.DataTypeInteger},  // RFC2869
	{VendorID: dictionary.VendorNone, Code: 53, Name: "Acct-Output-Gigawords", DataType: dictionary.DataTypeInteger}, // RFC2869
	{VendorID: dictionary.VendorNone, Code: 55, Name: "Event-Timestamp", DataType: dictionary.DataTypeInteger},       // RFC2869
	{VendorID: dictionary.VendorNone, Code: 56, Name: "Egress-VLANID", DataType: dictionary.DataTypeInteger},         // RFC4675
	{ // RFC4675
		VendorID: dictionary.VendorNone,
		Code:     57,
		Name:     "Ingress-Filters",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"Enabled":  1,
			"Disabled": 2,
		},
	},
	{VendorID: dictionary.VendorNone, Code: 58, Name: "Egress-VLAN-Name", DataType: dictionary.DataTypeString},       // RFC4675
	{VendorID: dictionary.VendorNone, Code: 59, Name: "User-Priority-Table", DataType: dictionary.DataTypeOctets},    // RFC4675
	{VendorID: dictionary.VendorNone, Code: 60, Name: "CHAP-Challenge", DataType: dictionary.DataTypeOctets},         // RFC2865
	{ // RFC2865
		VendorID: dictionary.VendorNone,
		Code:     61,
		Name:     "NAS-Port-Type",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"Async":              0,
			"Sync":               1,
			"ISDN":               2,
			"ISDN-V120":          3,
			"ISDN-V110":          4,
			"Virtual":            5,
			"PIAFS":              6,
			"HDLC-Clear-Channel": 7,
			"X.25":               8,
			"X.75":               9,
			"G.3-Fax":            10,
			"SDSL":               11,
			"ADSL-CAP":           12,
			"ADSL-DMT":           13,
			"IDSL":               14,
			"Ethernet":           15,
			"xDSL":               16,
			"Cable":              17,
			"Wireless-Other":     18,
			"Wireless-802.11":    19,
		},
	},
	{VendorID: dictionary.VendorNone, Code: 62, Name: "Port-Limit", DataType: dictionary.DataTypeInteger},   // RFC2865
	{VendorID: dictionary.VendorNone, Code: 63, Name: "Login-LAT-Port", DataType: dictionary.DataTypeString}, // RFC2865
	{ // RFC2868
		VendorID: dictionary.VendorNone,
		Code:     64,
		Name:     "Tunnel-Type",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"PPTP": 1,
			"L2F":  2,
			"L2TP": 3,
			"ATMP": 4,
			"VTP":  5,
			"AH":   6,
			"IP":   7,
			"ESP":  9,
			"GRE":  10,
			"VLAN": 13,
		},
	},
	{ // RFC2868
		VendorID: dictionary.VendorNone,
		Code:     65,
		Name:     "Tunnel-Medium-Type",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"IPv4":     1,
			"IPv6":     2,
			"NSAP":     3,
			"HDLC":     4,
			"BBN-1822": 5,
			"IEEE-802": 6,
		},
	},
	{VendorID: dictionary.VendorNone, Code: 66, Name: "Tunnel-Client-Endpoint", DataType: dictionary.DataTypeString}, // RFC2868
	{VendorID: dictionary.VendorNone, Code: 67, Name: "Tunnel-Server-Endpoint", DataType: dictionary.DataTypeString}, // RFC2868
	{VendorID: dictionary.VendorNone, Code: 68, Name: "Acct-Tunnel-Connection", DataType: dictionary.DataTypeString}, // RFC2867
	{VendorID: dictionary.VendorNone, Code: 69, Name: "Tunnel-Password", DataType: dictionary.DataTypeOctets},        // RFC2868
	{VendorID: dictionary.VendorNone, Code: 70, Name: "ARAP-Password", DataType: dictionary.DataTypeOctets},          // RFC2869
	{VendorID: dictionary.VendorNone, Code: 71, Name: "ARAP-Features", DataType: dictionary.DataTypeOctets},          // RFC2869
	{ // RFC2869
		VendorID: dictionary.VendorNone,
		Code:     72,
		Name:     "ARAP-Zone-Access",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"Default-Zone":          1,
			"Zone-Filter-Inclusive": 2,
			"Zone-Filter-Exclusive": 4,
		},
	},
	{VendorID: dictionary.VendorNone, Code: 73, Name: "ARAP-Security", DataType: dictionary.DataTypeInteger},      // RFC2869
	{VendorID: dictionary.VendorNone, Code: 74, Name: "ARAP-Security-Data", DataType: dictionary.DataTypeString}, // RFC2869
	{VendorID: dictionary.VendorNone, Code: 75, Name: "Password-Retry", DataType: dictionary.DataTypeInteger},    // RFC2869
	{ // RFC2869
		VendorID: dictionary.VendorNone,
		Code:     76,
		Name:     "Prompt",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"No-Echo": 0,
			"Echo":    1,
		},
	},
	{VendorID: dictionary.VendorNone, Code: 77, Name: "Connect-Info", DataType: dictionary.DataTypeString},        // RFC2869
	{VendorID: dictionary.VendorNone, Code: 78, Name: "Configuration-Token", DataType: dictionary.DataTypeString}, // RFC2869
	{VendorID: dictionary.VendorNone, Code: 79, Name: "EAP-Message", DataType: dictionary.DataTypeOctets},         // RFC2869
}

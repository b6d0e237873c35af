package packet

import "sync/atomic"

// identifierCounter is the process-wide identifier allocator shared by
// all outbound requests. The 8-bit wrap-around falls out of the uint8
// truncation.
var identifierCounter atomic.Uint32

// NextIdentifier returns the next packet identifier, cycling through
// 0..255.
func NextIdentifier() uint8 {
	return uint8(identifierCounter.Add(1) - 1)
}

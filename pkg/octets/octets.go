package octets

import (
	"crypto/md5"
	"encoding/binary"
)

// Uint32 decodes a big-endian 32-bit integer.
func Uint32(data []byte) uint32 {
	return binary.BigEndian.Uint32(data)
}

// PutUint32 encodes a 32-bit integer in big-endian order into dst
// (must be at least 4 bytes).
func PutUint32(dst []byte, value uint32) {
	binary.BigEndian.PutUint32(dst, value)
}

// AppendUint32 appends a big-endian 32-bit integer to dst.
func AppendUint32(dst []byte, value uint32) []byte {
	return binary.BigEndian.AppendUint32(dst, value)
}

// PutUint16 encodes a 16-bit integer in big-endian order into dst
// (must be at least 2 bytes).
func PutUint16(dst []byte, value uint16) {
	binary.BigEndian.PutUint16(dst, value)
}

// MD5 computes a one-shot MD5 digest over the concatenation of the
// given chunks. Each call owns its hash state.
func MD5(chunks ...[]byte) [16]byte {
	hash := md5.New()
	for _, chunk := range chunks {
		hash.Write(chunk)
	}

	var digest [16]byte
	copy(digest[:], hash.Sum(nil))
	return digest
}

package crypto

import (
	"bytes"
	"crypto/md5"
	"fmt"
)

// MaxPasswordLength is the longest cleartext User-Password accepted for
// obfuscation, per RFC 2865 Section 5.2.
const MaxPasswordLength = 128

const passwordBlockSize = 16

// EncryptUserPassword obfuscates a cleartext password for transport in the
// User-Password attribute of an Access-Request. The cleartext is padded
// with NUL to a multiple of 16 octets and each block is XORed with
// MD5(secret || previous block), seeded by the request authenticator.
func EncryptUserPassword(password, secret []byte, requestAuth [AuthenticatorLength]byte) ([]byte, error) {
	if len(password) > MaxPasswordLength {
		return nil, fmt.Errorf("password exceeds %d bytes: %d", MaxPasswordLength, len(password))
	}

	blocks := (len(password) + passwordBlockSize - 1) / passwordBlockSize
	if blocks == 0 {
		blocks = 1
	}

	padded := make([]byte, blocks*passwordBlockSize)
	copy(padded, password)

	cipher := make([]byte, len(padded))
	previous := requestAuth[:]

	for offset := 0; offset < len(padded); offset += passwordBlockSize {
		hash := md5.New()
		hash.Write(secret)
		hash.Write(previous)
		digest := hash.Sum(nil)

		block := cipher[offset : offset+passwordBlockSize]
		for i := range block {
			block[i] = padded[offset+i] ^ digest[i]
		}

		previous = block
	}

	return cipher, nil
}

// DecryptUserPassword inverts EncryptUserPassword and strips the trailing
// NUL padding.
func DecryptUserPassword(cipher, secret []byte, requestAuth [AuthenticatorLength]byte) ([]byte, error) {
	if len(cipher) == 0 || len(cipher)%passwordBlockSize != 0 {
		return nil, fmt.Errorf("cipher length %d is not a positive multiple of %d", len(cipher), passwordBlockSize)
	}

	if len(cipher) > MaxPasswordLength {
		return nil, fmt.Errorf("cipher exceeds %d bytes: %d", MaxPasswordLength, len(cipher))
	}

	cleartext := make([]byte, len(cipher))
	previous := requestAuth[:]

	for offset := 0; offset < len(cipher); offset += passwordBlockSize {
		hash := md5.New()
		hash.Write(secret)
		hash.Write(previous)
		digest := hash.Sum(nil)

		for i := 0; i < passwordBlockSize; i++ {
			cleartext[offset+i] = cipher[offset+i] ^ digest[i]
		}

		previous = cipher[offset : offset+passwordBlockSize]
	}

	return bytes.TrimRight(cleartext, "\x00"), nil
}

// Package crypto implements the RADIUS authenticator discipline of
// RFC 2865 and RFC 2866: request and response authenticators and the
// User-Password obfuscation round.
package crypto

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/rand"
	"errors"
	"fmt"
)

// AuthenticatorLength is the length of RADIUS authenticators in bytes.
const AuthenticatorLength = 16

// ErrAuthenticatorMismatch indicates authenticator verification failed.
var ErrAuthenticatorMismatch = errors.New("authenticator mismatch")

// NewRequestAuthenticator generates the Request Authenticator for an
// Access-Request. The shared secret is mixed into the random nonce, so
// callers cannot directly control the resulting value:
// MD5(secret || 16 random octets).
func NewRequestAuthenticator(secret []byte) ([AuthenticatorLength]byte, error) {
	nonce := make([]byte, AuthenticatorLength)
	if _, err := rand.Read(nonce); err != nil {
		return [AuthenticatorLength]byte{}, fmt.Errorf("failed to generate authenticator nonce: %w", err)
	}

	hash := md5.New()
	hash.Write(secret)
	hash.Write(nonce)

	var auth [AuthenticatorLength]byte
	copy(auth[:], hash.Sum(nil))
	return auth, nil
}

// AccountingRequestAuthenticator computes the Accounting-Request
// authenticator per RFC 2866:
// MD5(Code + ID + Length + 16 zero octets + Attributes + Secret).
func AccountingRequestAuthenticator(code, identifier uint8, length uint16, attributes, secret []byte) [AuthenticatorLength]byte {
	hash := md5.New()
	hash.Write([]byte{code, identifier, byte(length >> 8), byte(length)})
	hash.Write(make([]byte, AuthenticatorLength))
	hash.Write(attributes)
	hash.Write(secret)

	var auth [AuthenticatorLength]byte
	copy(auth[:], hash.Sum(nil))
	return auth
}

// VerifyAccountingRequestAuthenticator checks a received Accounting-Request
// authenticator against its recomputation.
func VerifyAccountingRequestAuthenticator(code, identifier uint8, length uint16, attributes []byte, received [AuthenticatorLength]byte, secret []byte) bool {
	expected := AccountingRequestAuthenticator(code, identifier, length, attributes, secret)
	return hmac.Equal(expected[:], received[:])
}

// ResponseAuthenticator computes the Response Authenticator per RFC 2865:
// MD5(Code + ID + Length + Request Authenticator + Attributes + Secret).
func ResponseAuthenticator(code, identifier uint8, length uint16, requestAuth [AuthenticatorLength]byte, attributes, secret []byte) [AuthenticatorLength]byte {
	hash := md5.New()
	hash.Write([]byte{code, identifier, byte(length >> 8), byte(length)})
	hash.Write(requestAuth[:])
	hash.Write(attributes)
	hash.Write(secret)

	var auth [AuthenticatorLength]byte
	copy(auth[:], hash.Sum(nil))
	return auth
}

// VerifyResponseAuthenticator checks a received Response Authenticator
// against its recomputation.
func VerifyResponseAuthenticator(code, identifier uint8, length uint16, requestAuth [AuthenticatorLength]byte, attributes []byte, received [AuthenticatorLength]byte, secret []byte) bool {
	expected := ResponseAuthenticator(code, identifier, length, requestAuth, attributes, secret)
	return hmac.Equal(expected[:], received[:])
}

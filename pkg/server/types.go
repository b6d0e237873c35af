package server

import (
	"net"
	"sync"
)

// CredentialStore looks up the stored cleartext password for a user
// name. Implementations may block (SQL, directory) and must be safe for
// concurrent use from server workers.
type CredentialStore interface {
	PasswordFor(username string) (string, bool, error)
}

// ExternalAuthenticator validates credentials against an external system
// such as an LDAP directory. Implementations may block and must be safe
// for concurrent use.
type ExternalAuthenticator interface {
	Authenticate(username, password string) (bool, error)
}

// SecretResolver returns the shared secret for a client address.
// Implementations must be safe for concurrent reads.
type SecretResolver interface {
	SecretFor(addr net.Addr) ([]byte, bool)
}

// StaticSecrets is a SecretResolver backed by a fixed per-client-IP
// table, as loaded from the nas_settings configuration.
type StaticSecrets struct {
	mu      sync.RWMutex
	secrets map[string][]byte
}

// NewStaticSecrets builds a secret table from a client-IP to secret
// mapping.
func NewStaticSecrets(secrets map[string]string) *StaticSecrets {
	table := make(map[string][]byte, len(secrets))
	for ip, secret := range secrets {
		table[ip] = []byte(secret)
	}
	return &StaticSecrets{secrets: table}
}

// Add registers or replaces the secret for a client IP.
func (s *StaticSecrets) Add(ip, secret string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.secrets[ip] = []byte(secret)
}

// SecretFor resolves the secret for the source address's IP.
func (s *StaticSecrets) SecretFor(addr net.Addr) ([]byte, bool) {
	var ip net.IP

	switch a := addr.(type) {
	case *net.UDPAddr:
		ip = a.IP
	case *net.IPAddr:
		ip = a.IP
	default:
		return nil, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	secret, ok := s.secrets[ip.String()]
	return secret, ok
}

// Package config loads the server configuration: authentication paths,
// collaborator settings and the per-NAS shared secret table.
package config

import (
	"fmt"
	"net"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full configuration surface of the server binary.
type Config struct {
	ValidateByLDAP     bool `yaml:"validate_by_ldap"`
	ValidateByDatabase bool `yaml:"validate_by_database"`

	LDAP     LDAPConfig     `yaml:"ldap"`
	Database DatabaseConfig `yaml:"database"`

	// NASSettings maps client IPs (dotted-quad) to their settings.
	NASSettings map[string]NASEntry `yaml:"nas_settings"`

	AuthAddr string `yaml:"auth_addr"`
	AcctAddr string `yaml:"acct_addr"`

	LogLevel string `yaml:"log_level"`

	// DictionaryDir holds additional dictionary files merged at startup.
	DictionaryDir string `yaml:"dictionary_dir"`
}

// LDAPConfig carries the external authenticator settings, opaque to the
// core.
type LDAPConfig struct {
	Path       string `yaml:"path"`
	DomainName string `yaml:"domain_name"`
}

// DatabaseConfig carries the credential store settings, opaque to the
// core.
type DatabaseConfig struct {
	Connection  string `yaml:"connection"`
	PasswordSQL string `yaml:"password_sql"`
}

// NASEntry is the per-client configuration.
type NASEntry struct {
	SecretKey string `yaml:"secret_key"`
}

// Load reads and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	return Parse(data)
}

// Parse unmarshals and validates configuration bytes.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{
		AuthAddr: ":1812",
		AcctAddr: ":1813",
		LogLevel: "info",
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if len(c.NASSettings) == 0 {
		return fmt.Errorf("nas_settings must list at least one client")
	}

	for ip, entry := range c.NASSettings {
		if net.ParseIP(ip) == nil {
			return fmt.Errorf("nas_settings key %q is not an IP address", ip)
		}

		if entry.SecretKey == "" {
			return fmt.Errorf("nas_settings entry %q has no secret_key", ip)
		}
	}

	if c.ValidateByLDAP && c.LDAP.Path == "" {
		return fmt.Errorf("validate_by_ldap is set but ldap.path is empty")
	}

	if c.ValidateByDatabase && c.Database.Connection == "" {
		return fmt.Errorf("validate_by_database is set but database.connection is empty")
	}

	return nil
}

// Secrets flattens the NAS table into a client-IP to secret mapping.
func (c *Config) Secrets() map[string]string {
	secrets := make(map[string]string, len(c.NASSettings))
	for ip, entry := range c.NASSettings {
		secrets[ip] = entry.SecretKey
	}
	return secrets
}

// Package client implements a RADIUS client: one socket, one outstanding
// request at a time, with timed retries.
package client

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/nasauth/radius/pkg/dictionary"
	"github.com/nasauth/radius/pkg/log"
	"github.com/nasauth/radius/pkg/packet"
)

const (
	// DefaultAuthPort is the standard RADIUS authentication port.
	DefaultAuthPort = 1812
	// DefaultAcctPort is the standard RADIUS accounting port.
	DefaultAcctPort = 1813
	// DefaultRetries is the number of send attempts per exchange.
	DefaultRetries = 3
	// DefaultTimeout is the per-attempt receive timeout.
	DefaultTimeout = 3 * time.Second
)

// ErrCommunicationFailure indicates every retry of an exchange timed out
// or failed at the socket.
var ErrCommunicationFailure = errors.New("communication failure")

// Client exchanges RADIUS requests with one server over a single UDP
// socket bound to an ephemeral port. All operations are serialized; two
// goroutines must not call Communicate concurrently, which the internal
// mutex enforces.
type Client struct {
	host     string
	secret   []byte
	dict     *dictionary.Dictionary
	authPort int
	acctPort int
	retries  int
	timeout  time.Duration
	logger   log.Logger

	mu   sync.Mutex
	conn *net.UDPConn
}

// Config carries the client settings. Host and Secret are required; zero
// ports, retries, timeout and logger take the defaults. Dictionary has no
// default; without one, attributes cannot be added by name.
type Config struct {
	Host       string
	Secret     []byte
	Dictionary *dictionary.Dictionary
	AuthPort   int
	AcctPort   int
	Retries    int
	Timeout    time.Duration
	Logger     log.Logger
}

// New binds the client socket and returns a ready client.
func New(cfg Config) (*Client, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("server host required")
	}

	if len(cfg.Secret) == 0 {
		return nil, fmt.Errorf("shared secret required")
	}

	if cfg.AuthPort == 0 {
		cfg.AuthPort = DefaultAuthPort
	}

	if cfg.AcctPort == 0 {
		cfg.AcctPort = DefaultAcctPort
	}

	if cfg.Retries == 0 {
		cfg.Retries = DefaultRetries
	}

	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	if cfg.Logger == nil {
		cfg.Logger = log.NewDefaultLogger()
	}

	conn, err := net.ListenUDP("udp", &net.UDPAddr{})
	if err != nil {
		return nil, fmt.Errorf("failed to bind client socket: %w", err)
	}

	return &Client{
		host:     cfg.Host,
		secret:   cfg.Secret,
		dict:     cfg.Dictionary,
		authPort: cfg.AuthPort,
		acctPort: cfg.AcctPort,
		retries:  cfg.Retries,
		timeout:  cfg.Timeout,
		logger:   cfg.Logger,
		conn:     conn,
	}, nil
}

// Close releases the client socket, aborting any pending exchange.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Communicate sends a request and waits for the matching response,
// retrying on timeout. The datagram is serialized once and resent
// verbatim on every attempt. Decode failures of a received response
// (identifier mismatch, authenticator mismatch, malformed packet) abort
// the exchange immediately.
func (c *Client) Communicate(req *packet.Packet) (*packet.Packet, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if req.Dict == nil {
		req.Dict = c.dict
	}

	data, err := req.EncodeRequest(c.secret)
	if err != nil {
		return nil, err
	}

	port := c.authPort
	if req.Code == packet.CodeAccountingRequest {
		port = c.acctPort
	}

	addr, err := net.ResolveUDPAddr("udp", net.JoinHostPort(c.host, strconv.Itoa(port)))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", c.host, err)
	}

	buffer := make([]byte, packet.MaxPacketLength)
	var lastErr error

	for attempt := 1; attempt <= c.retries; attempt++ {
		if _, err := c.conn.WriteToUDP(data, addr); err != nil {
			lastErr = err
			c.logger.Warnf("send attempt %d/%d to %s failed: %v", attempt, c.retries, addr, err)
			continue
		}

		if err := c.conn.SetReadDeadline(time.Now().Add(c.timeout)); err != nil {
			return nil, fmt.Errorf("failed to set read deadline: %w", err)
		}

		n, _, err := c.conn.ReadFromUDP(buffer)
		if err != nil {
			lastErr = err
			c.logger.Debugf("receive attempt %d/%d for %s id=%d: %v",
				attempt, c.retries, req.Code, req.Identifier, err)
			continue
		}

		resp, err := packet.DecodeResponse(buffer[:n], c.secret, req)
		if err != nil {
			return nil, err
		}

		return resp, nil
	}

	return nil, fmt.Errorf("%w: %s id=%d after %d attempts: %v",
		ErrCommunicationFailure, req.Code, req.Identifier, c.retries, lastErr)
}

// AccessRequest builds an Access-Request for the given credentials, adds
// any extra attributes by name, and runs the exchange.
func (c *Client) AccessRequest(username, password string, attributes map[string]string) (*packet.Packet, error) {
	req := packet.NewAccessRequest(username, password)
	req.Dict = c.dict

	for name, value := range attributes {
		if err := req.AddAttributeByName(name, value); err != nil {
			return nil, fmt.Errorf("failed to add attribute %q: %w", name, err)
		}
	}

	return c.Communicate(req)
}

// AccountingRequest builds an Accounting-Request with the given
// attributes and runs the exchange.
func (c *Client) AccountingRequest(attributes map[string]string) (*packet.Packet, error) {
	req := packet.NewAccountingRequest()
	req.Dict = c.dict

	for name, value := range attributes {
		if err := req.AddAttributeByName(name, value); err != nil {
			return nil, fmt.Errorf("failed to add attribute %q: %w", name, err)
		}
	}

	return c.Communicate(req)
}

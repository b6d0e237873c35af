// Package server implements the RADIUS server loop: UDP receive on the
// authentication and accounting sockets, per-client secret resolution,
// request dispatch and reply emission.
package server

import (
	"fmt"
	"net"
	"sync"

	"github.com/nasauth/radius/pkg/dictionaries"
	"github.com/nasauth/radius/pkg/dictionary"
	"github.com/nasauth/radius/pkg/log"
	"github.com/nasauth/radius/pkg/packet"
)

const (
	// DefaultWorkers is the worker pool size per socket.
	DefaultWorkers = 8
	// queueDepth bounds the in-memory datagram queue per socket.
	queueDepth = 128
)

// Config carries the server settings.
type Config struct {
	// AuthAddr and AcctAddr are the listen addresses, e.g. ":1812".
	AuthAddr string
	AcctAddr string

	// Secrets resolves the shared secret per client IP. Required.
	Secrets SecretResolver

	// Credentials is consulted when UseCredentials is set.
	Credentials CredentialStore
	// External is consulted first when UseExternal is set.
	External ExternalAuthenticator

	UseCredentials bool
	UseExternal    bool

	// Dictionary defaults to the embedded standard dictionary.
	Dictionary *dictionary.Dictionary

	// Workers is the handler pool size per socket.
	Workers int

	Logger log.Logger
}

// Server owns the two UDP sockets for its lifetime; closing them
// terminates the receive loops.
type Server struct {
	authAddr string
	acctAddr string

	secrets        SecretResolver
	credentials    CredentialStore
	external       ExternalAuthenticator
	useCredentials bool
	useExternal    bool

	dict    *dictionary.Dictionary
	workers int
	logger  log.Logger

	mu       sync.Mutex
	authConn *net.UDPConn
	acctConn *net.UDPConn
	ready    chan struct{}
}

// datagram is one received packet queued for a worker.
type datagram struct {
	data []byte
	addr *net.UDPAddr
	conn *net.UDPConn
}

// New validates the configuration and prepares a server.
func New(cfg Config) (*Server, error) {
	if cfg.Secrets == nil {
		return nil, fmt.Errorf("secret resolver required")
	}

	if cfg.AuthAddr == "" {
		cfg.AuthAddr = ":1812"
	}

	if cfg.AcctAddr == "" {
		cfg.AcctAddr = ":1813"
	}

	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}

	if cfg.Logger == nil {
		cfg.Logger = log.NewDefaultLogger()
	}

	dict := cfg.Dictionary
	if dict == nil {
		var err error
		dict, err = dictionaries.NewDefault()
		if err != nil {
			return nil, err
		}
	}

	return &Server{
		authAddr:       cfg.AuthAddr,
		acctAddr:       cfg.AcctAddr,
		secrets:        cfg.Secrets,
		credentials:    cfg.Credentials,
		external:       cfg.External,
		useCredentials: cfg.UseCredentials,
		useExternal:    cfg.UseExternal,
		dict:           dict,
		workers:        cfg.Workers,
		logger:         cfg.Logger,
		ready:          make(chan struct{}),
	}, nil
}

// ListenAndServe binds both sockets and runs the receive loops until the
// sockets are closed.
func (s *Server) ListenAndServe() error {
	authConn, err := listen(s.authAddr)
	if err != nil {
		return fmt.Errorf("failed to bind auth socket: %w", err)
	}

	acctConn, err := listen(s.acctAddr)
	if err != nil {
		authConn.Close()
		return fmt.Errorf("failed to bind acct socket: %w", err)
	}

	s.mu.Lock()
	s.authConn = authConn
	s.acctConn = acctConn
	close(s.ready)
	s.mu.Unlock()

	s.logger.Infof("listening on %s (auth) and %s (acct)", authConn.LocalAddr(), acctConn.LocalAddr())

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		s.receiveLoop(authConn)
	}()

	go func() {
		defer wg.Done()
		s.receiveLoop(acctConn)
	}()

	wg.Wait()
	return nil
}

func listen(addr string) (*net.UDPConn, error) {
	udpAddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, err
	}
	return net.ListenUDP("udp", udpAddr)
}

// receiveLoop feeds a bounded worker pool from one socket. Datagrams
// arriving while the queue is full are dropped.
func (s *Server) receiveLoop(conn *net.UDPConn) {
	queue := make(chan datagram, queueDepth)

	var workers sync.WaitGroup
	workers.Add(s.workers)
	for i := 0; i < s.workers; i++ {
		go func() {
			defer workers.Done()
			for d := range queue {
				s.handleDatagram(d)
			}
		}()
	}

	// Drain the pool once the socket closes.
	defer workers.Wait()
	defer close(queue)

	buffer := make([]byte, packet.MaxPacketLength)

	for {
		n, addr, err := conn.ReadFromUDP(buffer)
		if err != nil {
			return
		}

		data := make([]byte, n)
		copy(data, buffer[:n])

		select {
		case queue <- datagram{data: data, addr: addr, conn: conn}:
		default:
			s.logger.Warnf("queue full, dropping datagram from %s", addr)
		}
	}
}

// handleDatagram runs the full inbound path for one datagram: secret
// resolution, decode, dispatch, reply. Malformed or unexpected input is
// dropped without a reply.
func (s *Server) handleDatagram(d datagram) {
	secret, ok := s.secrets.SecretFor(d.addr)
	if !ok {
		s.logger.Warnf("no shared secret for client %s, dropping", d.addr)
		return
	}

	req, err := packet.DecodeRequest(d.data, secret, s.dict)
	if err != nil {
		s.logger.Warnf("failed to decode datagram from %s: %v", d.addr, err)
		return
	}

	var reply *packet.Packet

	switch req.Code {
	case packet.CodeAccessRequest:
		reply, err = s.handleAccessRequest(req)
	case packet.CodeAccountingRequest:
		reply, err = s.handleAccountingRequest(req)
	default:
		s.logger.Debugf("unsupported packet %s from %s, dropping", req.Code, d.addr)
		return
	}

	if err != nil {
		s.logger.Errorf("failed to handle %s from %s: %v", req.Code, d.addr, err)
		return
	}

	data, err := reply.EncodeResponse(secret, req.Authenticator)
	if err != nil {
		s.logger.Errorf("failed to encode %s for %s: %v", reply.Code, d.addr, err)
		return
	}

	if _, err := d.conn.WriteToUDP(data, d.addr); err != nil {
		s.logger.Errorf("failed to send %s to %s: %v", reply.Code, d.addr, err)
	}
}

// AuthAddr returns the bound authentication socket address. It blocks
// until ListenAndServe has bound the sockets.
func (s *Server) AuthAddr() net.Addr {
	<-s.ready
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authConn.LocalAddr()
}

// AcctAddr returns the bound accounting socket address. It blocks until
// ListenAndServe has bound the sockets.
func (s *Server) AcctAddr() net.Addr {
	<-s.ready
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.acctConn.LocalAddr()
}

// Close releases both sockets, terminating the receive loops.
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var firstErr error

	if s.authConn != nil {
		if err := s.authConn.Close(); err != nil {
			firstErr = err
		}
	}

	if s.acctConn != nil {
		if err := s.acctConn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

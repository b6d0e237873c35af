package server

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nasauth/radius/pkg/packet"
)

type mapStore map[string]string

func (m mapStore) PasswordFor(username string) (string, bool, error) {
	password, ok := m[username]
	return password, ok, nil
}

type failingStore struct{}

func (failingStore) PasswordFor(string) (string, bool, error) {
	return "", false, errors.New("database unreachable")
}

type fixedAuthenticator struct {
	accept bool
	err    error
	calls  int
}

func (f *fixedAuthenticator) Authenticate(_, _ string) (bool, error) {
	f.calls++
	return f.accept, f.err
}

func newTestServer(t *testing.T, cfg Config) *Server {
	t.Helper()

	if cfg.Secrets == nil {
		cfg.Secrets = NewStaticSecrets(map[string]string{"127.0.0.1": "s3cr3t"})
	}

	s, err := New(cfg)
	require.NoError(t, err)
	return s
}

func accessRequest(username, password string) *packet.Packet {
	req := packet.New(packet.CodeAccessRequest, 7)
	req.AddAttribute(packet.NewStringAttribute(packet.AttrUserName, username))
	req.AddAttribute(packet.NewStringAttribute(packet.AttrUserPassword, password))
	return req
}

func TestAccessRequestAcceptFromStore(t *testing.T) {
	s := newTestServer(t, Config{
		Credentials:    mapStore{"alice": "hunter2"},
		UseCredentials: true,
	})

	reply, err := s.handleAccessRequest(accessRequest("alice", "hunter2"))
	require.NoError(t, err)
	assert.Equal(t, packet.CodeAccessAccept, reply.Code)
	assert.Equal(t, uint8(7), reply.Identifier)
}

func TestAccessRequestRejectOnMismatch(t *testing.T) {
	s := newTestServer(t, Config{
		Credentials:    mapStore{"alice": "other"},
		UseCredentials: true,
	})

	reply, err := s.handleAccessRequest(accessRequest("alice", "hunter2"))
	require.NoError(t, err)
	assert.Equal(t, packet.CodeAccessReject, reply.Code)

	msg, ok := reply.GetAttribute(packet.AttrReplyMessage)
	require.True(t, ok)
	assert.Equal(t, "authentication failed", msg.GetString())
}

func TestAccessRequestRejectUnknownUser(t *testing.T) {
	s := newTestServer(t, Config{
		Credentials:    mapStore{},
		UseCredentials: true,
	})

	reply, err := s.handleAccessRequest(accessRequest("mallory", "x"))
	require.NoError(t, err)
	assert.Equal(t, packet.CodeAccessReject, reply.Code)
}

func TestAccessRequestExternalAccepts(t *testing.T) {
	external := &fixedAuthenticator{accept: true}

	s := newTestServer(t, Config{
		External:    external,
		UseExternal: true,
		// The store would reject, but the external path wins.
		Credentials:    mapStore{},
		UseCredentials: true,
	})

	reply, err := s.handleAccessRequest(accessRequest("alice", "hunter2"))
	require.NoError(t, err)
	assert.Equal(t, packet.CodeAccessAccept, reply.Code)
	assert.Equal(t, 1, external.calls)
}

func TestAccessRequestExternalRejectFallsBackToStore(t *testing.T) {
	external := &fixedAuthenticator{accept: false}

	s := newTestServer(t, Config{
		External:       external,
		UseExternal:    true,
		Credentials:    mapStore{"alice": "hunter2"},
		UseCredentials: true,
	})

	reply, err := s.handleAccessRequest(accessRequest("alice", "hunter2"))
	require.NoError(t, err)
	assert.Equal(t, packet.CodeAccessAccept, reply.Code)
	assert.Equal(t, 1, external.calls)
}

func TestAccessRequestExternalErrorFallsBack(t *testing.T) {
	external := &fixedAuthenticator{err: errors.New("ldap down")}

	s := newTestServer(t, Config{
		External:       external,
		UseExternal:    true,
		Credentials:    mapStore{"alice": "hunter2"},
		UseCredentials: true,
	})

	reply, err := s.handleAccessRequest(accessRequest("alice", "hunter2"))
	require.NoError(t, err)
	assert.Equal(t, packet.CodeAccessAccept, reply.Code)
}

func TestAccessRequestStoreError(t *testing.T) {
	s := newTestServer(t, Config{
		Credentials:    failingStore{},
		UseCredentials: true,
	})

	_, err := s.handleAccessRequest(accessRequest("alice", "hunter2"))
	assert.Error(t, err)
}

func TestAccessRequestUnconfigured(t *testing.T) {
	s := newTestServer(t, Config{})

	_, err := s.handleAccessRequest(accessRequest("alice", "hunter2"))
	assert.ErrorIs(t, err, ErrUnconfiguredAuthPath)
}

func TestAccessRequestCopiesProxyState(t *testing.T) {
	s := newTestServer(t, Config{
		Credentials:    mapStore{"alice": "other"},
		UseCredentials: true,
	})

	req := accessRequest("alice", "hunter2")
	req.AddAttribute(packet.NewAttribute(packet.AttrProxyState, []byte("ps1")))
	req.AddAttribute(packet.NewAttribute(packet.AttrProxyState, []byte("ps2")))

	reply, err := s.handleAccessRequest(req)
	require.NoError(t, err)

	states := reply.GetAttributes(packet.AttrProxyState)
	require.Len(t, states, 2)
	assert.Equal(t, "ps1", states[0].GetString())
	assert.Equal(t, "ps2", states[1].GetString())
}

func TestAccountingRequestAcked(t *testing.T) {
	s := newTestServer(t, Config{})

	req := packet.New(packet.CodeAccountingRequest, 12)
	req.AddAttribute(packet.NewAttribute(packet.AttrProxyState, []byte("ps")))

	reply, err := s.handleAccountingRequest(req)
	require.NoError(t, err)
	assert.Equal(t, packet.CodeAccountingResponse, reply.Code)
	assert.Equal(t, uint8(12), reply.Identifier)

	states := reply.GetAttributes(packet.AttrProxyState)
	require.Len(t, states, 1)
	assert.Equal(t, "ps", states[0].GetString())
}

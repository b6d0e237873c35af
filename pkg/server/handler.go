package server

import (
	"errors"
	"fmt"

	"github.com/nasauth/radius/pkg/packet"
)

// ErrUnconfiguredAuthPath indicates an Access-Request arrived while
// neither the external authenticator nor the credential store path is
// enabled.
var ErrUnconfiguredAuthPath = errors.New("no authentication path configured")

// handleAccessRequest implements the access decision: the external
// authenticator is consulted first when enabled; otherwise the supplied
// password is compared against the credential store. Proxy-State
// attributes are echoed in their original order.
func (s *Server) handleAccessRequest(req *packet.Packet) (*packet.Packet, error) {
	if !s.useExternal && !s.useCredentials {
		return nil, fmt.Errorf("%w: Access-Request id=%d", ErrUnconfiguredAuthPath, req.Identifier)
	}

	var username, password string

	if attr, ok := req.GetAttribute(packet.AttrUserName); ok {
		username = attr.GetString()
	}

	if attr, ok := req.GetAttribute(packet.AttrUserPassword); ok {
		password = attr.GetString()
	}

	accepted, err := s.authenticate(username, password)
	if err != nil {
		return nil, err
	}

	code := packet.CodeAccessReject
	if accepted {
		code = packet.CodeAccessAccept
	}

	reply := packet.NewResponse(code, req)

	if !accepted {
		reply.AddAttribute(packet.NewStringAttribute(packet.AttrReplyMessage, "authentication failed"))
	}

	copyProxyState(req, reply)
	return reply, nil
}

func (s *Server) authenticate(username, password string) (bool, error) {
	if s.useExternal && s.external != nil {
		accepted, err := s.external.Authenticate(username, password)
		if err != nil {
			s.logger.Errorf("external authenticator failed for %q: %v", username, err)
		} else if accepted {
			return true, nil
		}
	}

	if s.useCredentials && s.credentials != nil {
		stored, found, err := s.credentials.PasswordFor(username)
		if err != nil {
			return false, fmt.Errorf("credential store failed for %q: %w", username, err)
		}

		if found && stored == password {
			return true, nil
		}
	}

	return false, nil
}

// handleAccountingRequest acknowledges every verified Accounting-Request
// with an Accounting-Response, echoing Proxy-State attributes.
func (s *Server) handleAccountingRequest(req *packet.Packet) (*packet.Packet, error) {
	reply := packet.NewResponse(packet.CodeAccountingResponse, req)
	copyProxyState(req, reply)
	return reply, nil
}

func copyProxyState(req, reply *packet.Packet) {
	for _, attr := range req.GetAttributes(packet.AttrProxyState) {
		reply.AddAttribute(packet.NewAttribute(packet.AttrProxyState, attr.Value))
	}
}

package packet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeString(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeAccessRequest, "Access-Request"},
		{CodeAccessAccept, "Access-Accept"},
		{CodeAccessReject, "Access-Reject"},
		{CodeAccountingRequest, "Accounting-Request"},
		{CodeAccountingResponse, "Accounting-Response"},
		{CodeAccessChallenge, "Access-Challenge"},
		{CodeDisconnectRequest, "Disconnect-Request"},
		{CodeDisconnectACK, "Disconnect-ACK"},
		{CodeDisconnectNAK, "Disconnect-NAK"},
		{CodeCoARequest, "CoA-Request"},
		{CodeCoAAck, "CoA-ACK"},
		{CodeCoANak, "CoA-NAK"},
		{CodeReserved, "Reserved"},
		{Code(99), "Unknown(99)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.String())
		})
	}
}

func TestCodeClassification(t *testing.T) {
	assert.True(t, CodeAccessRequest.IsRequest())
	assert.True(t, CodeAccountingRequest.IsRequest())
	assert.False(t, CodeAccessAccept.IsRequest())

	assert.True(t, CodeAccessAccept.IsResponse())
	assert.True(t, CodeAccountingResponse.IsResponse())
	assert.False(t, CodeAccessRequest.IsResponse())
}

func TestExpectedResponseCodes(t *testing.T) {
	assert.Equal(t, []Code{CodeAccessAccept, CodeAccessReject, CodeAccessChallenge},
		CodeAccessRequest.ExpectedResponseCodes())
	assert.Equal(t, []Code{CodeAccountingResponse},
		CodeAccountingRequest.ExpectedResponseCodes())
	assert.Nil(t, CodeAccessAccept.ExpectedResponseCodes())
}

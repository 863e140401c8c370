package status

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeTable(t *testing.T) {
	// The code table is part of the wire contract and must not drift.
	tests := []struct {
		status  Status
		code    string
		message string
	}{
		{Succeed, "000", "succeed"},
		{DefaultFailed, "001", "failed"},
		{MissingArgument, "002", "missing argument"},
		{SomethingEmpty, "003", "something is empty"},
		{UserExists, "004", "user already exists"},
		{UserNotFound, "005", "user does not exist"},
		{LoginFailed, "006", "login failed"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.code, tt.status.Code)
		assert.Equal(t, tt.message, tt.status.Message)
	}
}

func TestEnvelopeShape(t *testing.T) {
	t.Run("data omitted when empty", func(t *testing.T) {
		out, err := json.Marshal(Fail(LoginFailed))
		require.NoError(t, err)
		assert.JSONEq(t, `{"code":"006","message":"login failed"}`, string(out))
	})

	t.Run("data carried on success", func(t *testing.T) {
		out, err := json.Marshal(OK(map[string]string{"username": "alice"}))
		require.NoError(t, err)
		assert.JSONEq(t, `{"code":"000","message":"succeed","data":{"username":"alice"}}`, string(out))
	})

	t.Run("custom success message", func(t *testing.T) {
		out, err := json.Marshal(OKMessage("user create success"))
		require.NoError(t, err)
		assert.JSONEq(t, `{"code":"000","message":"user create success"}`, string(out))
	})
}

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthResponse_SessionToken(t *testing.T) {
	assert.Equal(t, "t1", AuthResponse{Token: "t1", AccessToken: "t2"}.SessionToken())
	assert.Equal(t, "t2", AuthResponse{AccessToken: "t2"}.SessionToken())
	assert.Equal(t, "", AuthResponse{}.SessionToken())
}

func TestRegisterRequest_UsesUsernameField(t *testing.T) {
	b, err := json.Marshal(RegisterRequest{Username: "Ann", Email: "a@b.c", Password: "p"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"username":"Ann","email":"a@b.c","password":"p"}`, string(b))
}

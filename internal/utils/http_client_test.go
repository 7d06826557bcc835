package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Defaults(t *testing.T) {
	client := NewHTTPClient()

	require.NotNil(t, client)
	require.NotNil(t, client.Client)
	assert.Equal(t, "application/json", client.Header.Get("Accept"))
}

func TestNewHTTPClient_FreshClientPerCall(t *testing.T) {
	// адаптер настраивает base URL и retry после создания,
	// поэтому клиенты не должны делить *resty.Client
	assert.NotSame(t, NewHTTPClient().Client, NewHTTPClient().Client)
}

func TestHTTPClient_NewRequest(t *testing.T) {
	require.NotNil(t, NewHTTPClient().R())
}

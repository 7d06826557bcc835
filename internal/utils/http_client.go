package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client as the shared construction point for
// outbound chat-server requests. Embedding keeps the full resty API
// available while defaults common to every caller live here.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client that always asks for JSON.
// Per-deployment settings (base URL, request timeout, retry policy) are
// layered on by the adapter that owns the client.
func NewHTTPClient() *HTTPClient {
	client := resty.New().SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}
}

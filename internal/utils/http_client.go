package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client. The embedded client is exposed
// directly, so callers use the usual resty request builder:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://cms.local/api/v1/status")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a fresh HTTPClient over a default resty.Client.
// Every call gets its own client, so adapters configured for different
// endpoints do not share headers or connection state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

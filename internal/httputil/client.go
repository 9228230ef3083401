package httputil

import (
	"net/http"
	"time"
)

const DefaultTimeout = 30 * time.Second

const userAgent = "smhi-mcp/1.0 (+https://github.com/Leopaexd/smhi-mcp)"

type userAgentTransport struct {
	next http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("User-Agent", userAgent)
	return t.next.RoundTrip(clone)
}

// NewClient returns an HTTP client with standard timeout configuration and a
// User-Agent identifying this service to the upstream provider.
func NewClient() *http.Client {
	return &http.Client{
		Timeout:   DefaultTimeout,
		Transport: &userAgentTransport{next: http.DefaultTransport},
	}
}

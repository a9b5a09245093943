package providers

import (
	"net/http"
	"strings"
	"time"
)

// FetchTimeout bounds every outbound schedule request.
const FetchTimeout = 10 * time.Second

// Doer is the minimal HTTP client surface adapters depend on.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ResolveHTTPClient returns the given client or a default with the standard
// fetch timeout.
func ResolveHTTPClient(client *http.Client) Doer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: FetchTimeout}
}

// NormalizeBaseURL falls back to def when raw is empty and strips a
// trailing slash.
func NormalizeBaseURL(raw, def string) string {
	if raw == "" {
		raw = def
	}
	return strings.TrimSuffix(raw, "/")
}

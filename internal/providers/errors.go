package providers

import (
	"errors"
	"fmt"
)

// UpstreamError captures a failed response from a required upstream
// endpoint: a non-2xx status or a malformed body.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "upstream request failed"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: %s (status=%d)", e.Provider, msg, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.Provider, msg)
}

// AsUpstreamError attempts to unwrap an error into an UpstreamError.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}

// UnknownSportError reports a sport tag the registry has no adapter for.
// This is a configuration bug, not a runtime condition.
type UnknownSportError struct {
	Sport string
}

func (e *UnknownSportError) Error() string {
	return fmt.Sprintf("unknown sport adapter: %q", e.Sport)
}

// IsUnknownSport reports whether err is an UnknownSportError.
func IsUnknownSport(err error) bool {
	var use *UnknownSportError
	return errors.As(err, &use)
}

package genai

import (
	"fmt"
	"strings"
)

// ConfigError reports required environment values that were absent. No
// network call is attempted when it is returned.
type ConfigError struct {
	Missing []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("missing %s in environment", strings.Join(e.Missing, " or "))
}

// TransportError wraps a failure to reach the completion endpoint.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("completion endpoint unreachable: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RemoteError is a non-2xx reply from the completion endpoint.
type RemoteError struct {
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Body)
}

package types

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidProxyURL indicates a malformed or empty proxy address.
	ErrInvalidProxyURL = errors.New("invalid proxy address")

	// ErrConfigWrite indicates git refused to change its global configuration.
	ErrConfigWrite = errors.New("git config write failed")

	// ErrNoProxyConfigured is returned by a connectivity test while the proxy is disabled.
	ErrNoProxyConfigured = errors.New("no proxy configured")

	// ErrProbeInFlight is returned when a connectivity test is already running.
	ErrProbeInFlight = errors.New("connectivity test already running")
)

// ValidationError describes why an address was rejected before git was invoked.
type ValidationError struct {
	Input  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrInvalidProxyURL.Error(), e.Input, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidProxyURL
}

// ConfigWriteError carries git's diagnostic output for a failed set/unset.
type ConfigWriteError struct {
	Op       string // "set" or "unset"
	Output   string
	ExitCode int
	Err      error
}

func (e *ConfigWriteError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)", ErrConfigWrite.Error(), e.Op)
	if e.ExitCode != 0 {
		fmt.Fprintf(&b, ": exit status %d", e.ExitCode)
	} else if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	if out := strings.TrimSpace(e.Output); out != "" {
		b.WriteString(": ")
		b.WriteString(out)
	}
	return b.String()
}

func (e *ConfigWriteError) Unwrap() error {
	return ErrConfigWrite
}

// Is lets errors.Is match the underlying process error as well.
func (e *ConfigWriteError) Is(target error) bool {
	return e.Err != nil && errors.Is(e.Err, target)
}

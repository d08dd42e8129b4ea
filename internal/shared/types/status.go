package types

import (
	"fmt"
	"time"
)

// Status is the effective proxy state, derived from git's global config on demand.
type Status struct {
	Enabled bool
	URL     ProxyURL
	// SystemProxy is the ambient OS proxy, only looked up while disabled.
	SystemProxy ProxyURL
}

func (s Status) String() string {
	switch {
	case s.Enabled:
		return "enabled  " + s.URL.String()
	case !s.SystemProxy.IsZero():
		return "disabled, system proxy: " + s.SystemProxy.String()
	default:
		return "disabled, no system proxy detected"
	}
}

// ProbeOutcome classifies a connectivity test.
type ProbeOutcome int

const (
	ProbeSuccess ProbeOutcome = iota
	ProbeFailure
	ProbeTimeout
)

func (o ProbeOutcome) String() string {
	switch o {
	case ProbeSuccess:
		return "success"
	case ProbeFailure:
		return "failure"
	case ProbeTimeout:
		return "timeout"
	default:
		return fmt.Sprintf("ProbeOutcome(%d)", int(o))
	}
}

// ProbeResult is the transient outcome of one connectivity test.
type ProbeResult struct {
	Outcome  ProbeOutcome
	Proxy    ProxyURL
	Reason   string // diagnostic text for failures and timeouts
	Duration time.Duration
}

// Message renders the result the way it is shown to the user.
func (r ProbeResult) Message() string {
	switch r.Outcome {
	case ProbeSuccess:
		return "proxy can reach the remote\n" + r.Proxy.String()
	case ProbeTimeout:
		return r.Reason
	default:
		return "proxy cannot reach the remote\n" + r.Reason
	}
}

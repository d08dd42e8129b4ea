package types

import (
	"fmt"
	"net/url"
	"strings"
)

// ProxyURL is a canonical proxy address of the form scheme://host[:port].
// An empty ProxyURL means "no proxy".
type ProxyURL string

const fullWidthColon = "："

// Supported proxy schemes.
const (
	SchemeHTTP   = "http"
	SchemeHTTPS  = "https"
	SchemeSOCKS5 = "socks5"
)

// ParseProxyURL normalizes user input into a ProxyURL.
// Full-width colons are converted to ':' before validation.
func ParseProxyURL(raw string) (ProxyURL, error) {
	s := strings.TrimSpace(strings.ReplaceAll(raw, fullWidthColon, ":"))
	if s == "" {
		return "", &ValidationError{Input: raw, Reason: "address is empty"}
	}
	scheme, _, ok := strings.Cut(s, "://")
	if !ok {
		return "", &ValidationError{Input: raw, Reason: "missing scheme, expected scheme://host:port"}
	}

	switch strings.ToLower(scheme) {
	case SchemeHTTP, SchemeHTTPS, SchemeSOCKS5:
	default:
		return "", &ValidationError{Input: raw, Reason: fmt.Sprintf("unsupported scheme %q", scheme)}
	}

	u, err := url.Parse(s)
	if err != nil {
		return "", &ValidationError{Input: raw, Reason: err.Error()}
	}
	if u.Hostname() == "" {
		return "", &ValidationError{Input: raw, Reason: "missing host"}
	}
	if u.Path != "" && u.Path != "/" {
		return "", &ValidationError{Input: raw, Reason: "path should be empty"}
	}
	if u.User != nil {
		return "", &ValidationError{Input: raw, Reason: "credentials are not supported"}
	}

	return ProxyURL(s), nil
}

// IsZero reports whether p is the absent proxy.
func (p ProxyURL) IsZero() bool { return p == "" }

func (p ProxyURL) String() string { return string(p) }

// Scheme returns the part before "://", or "" for the absent proxy.
func (p ProxyURL) Scheme() string {
	scheme, _, ok := strings.Cut(string(p), "://")
	if !ok {
		return ""
	}
	return scheme
}

// Addr returns the host[:port] part.
func (p ProxyURL) Addr() string {
	_, addr, ok := strings.Cut(string(p), "://")
	if !ok {
		return ""
	}
	return addr
}

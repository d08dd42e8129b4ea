// Package sysproxy reads the operating system's ambient proxy settings.
//
// The result is advisory: it only pre-fills a suggestion while git has no
// proxy configured, so every failure degrades to "no system proxy".
package sysproxy

import (
	"strings"

	"gitproxy_switch/internal/shared/types"
)

// Reader returns the ambient proxy, or "" when there is none.
type Reader interface {
	Read() types.ProxyURL
}

// New returns the Reader for the current platform.
func New() Reader {
	return newPlatformReader()
}

// Static is a Reader returning a fixed value.
type Static types.ProxyURL

// Read implements Reader.
func (s Static) Read() types.ProxyURL { return types.ProxyURL(s) }

// ParseServer converts a WinINet style server specification into a proxy URL.
//
// "host:port" is an HTTP proxy. "socks5=h:p;http=h:p" lists per-scheme
// entries; socks5 wins over http and any other tags are ignored. A malformed
// entry makes the whole specification unusable.
func ParseServer(raw string) types.ProxyURL {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.Contains(raw, "=") {
		return types.ProxyURL(types.SchemeHTTP + "://" + raw)
	}

	entries := make(map[string]string)
	for _, part := range strings.Split(raw, ";") {
		tag, addr, ok := strings.Cut(part, "=")
		if !ok {
			return ""
		}
		entries[strings.ToLower(strings.TrimSpace(tag))] = strings.TrimSpace(addr)
	}

	if addr := entries[types.SchemeSOCKS5]; addr != "" {
		return types.ProxyURL(types.SchemeSOCKS5 + "://" + addr)
	}
	if addr := entries[types.SchemeHTTP]; addr != "" {
		return types.ProxyURL(types.SchemeHTTP + "://" + addr)
	}
	return ""
}

// Package envutil edits KEY=VALUE environment slices passed to child processes.
package envutil

import (
	"slices"
	"strings"
)

// ProxyVars lists the variables git (through libcurl) reads for HTTP(S)
// remotes. Both spellings are set because libcurl ignores upper-case
// HTTP_PROXY on some platforms.
var ProxyVars = []string{"HTTP_PROXY", "HTTPS_PROXY", "http_proxy", "https_proxy"}

func indexOf(env []string, key string) int {
	prefix := key + "="
	return slices.IndexFunc(env, func(e string) bool {
		return strings.HasPrefix(e, prefix)
	})
}

// SetEnv points key at value, replacing the first existing entry or
// appending one. env may be modified in place.
func SetEnv(env []string, key, value string) []string {
	entry := key + "=" + value
	if i := indexOf(env, key); i >= 0 {
		env[i] = entry
		return env
	}
	return append(env, entry)
}

// GetEnv looks key up; ok is false when env has no entry for it.
func GetEnv(env []string, key string) (value string, ok bool) {
	i := indexOf(env, key)
	if i < 0 {
		return "", false
	}
	return env[i][len(key)+1:], true
}

// WithProxy returns a copy of base with every ProxyVars entry set to proxy.
// base itself is left untouched.
func WithProxy(base []string, proxy string) []string {
	env := slices.Clone(base)
	for _, key := range ProxyVars {
		env = SetEnv(env, key, proxy)
	}
	return env
}

package envutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetEnv(t *testing.T) {
	tests := []struct {
		name  string
		env   []string
		key   string
		value string
		want  []string
	}{
		{
			name:  "set new variable",
			env:   []string{"A=1"},
			key:   "B",
			value: "2",
			want:  []string{"A=1", "B=2"},
		},
		{
			name:  "replace existing variable",
			env:   []string{"A=1", "B=2"},
			key:   "A",
			value: "99",
			want:  []string{"A=99", "B=2"},
		},
		{
			name:  "set on nil slice",
			env:   nil,
			key:   "X",
			value: "y",
			want:  []string{"X=y"},
		},
		{
			name:  "key prefix of another key",
			env:   []string{"HTTP_PROXY_EXTRA=1"},
			key:   "HTTP_PROXY",
			value: "http://a:1",
			want:  []string{"HTTP_PROXY_EXTRA=1", "HTTP_PROXY=http://a:1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SetEnv(tt.env, tt.key, tt.value))
		})
	}
}

func TestGetEnv(t *testing.T) {
	v, ok := GetEnv([]string{"A=1", "URL=http://host?a=1"}, "URL")
	assert.True(t, ok)
	assert.Equal(t, "http://host?a=1", v)

	_, ok = GetEnv([]string{"A=1"}, "B")
	assert.False(t, ok)
}

func TestWithProxy(t *testing.T) {
	base := []string{"PATH=/usr/bin", "HTTPS_PROXY=http://old:1"}

	env := WithProxy(base, "socks5://127.0.0.1:1080")

	for _, key := range ProxyVars {
		v, ok := GetEnv(env, key)
		assert.True(t, ok, key)
		assert.Equal(t, "socks5://127.0.0.1:1080", v, key)
	}
	path, _ := GetEnv(env, "PATH")
	assert.Equal(t, "/usr/bin", path)
	assert.Equal(t, []string{"PATH=/usr/bin", "HTTPS_PROXY=http://old:1"}, base, "base must not be modified")
}

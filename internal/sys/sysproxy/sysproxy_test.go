package sysproxy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gitproxy_switch/internal/shared/types"
)

func TestParseServer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want types.ProxyURL
	}{
		{name: "socks5 preferred over http", raw: "socks5=127.0.0.1:1080;http=127.0.0.1:1081", want: "socks5://127.0.0.1:1080"},
		{name: "http only", raw: "http=127.0.0.1:1081;https=127.0.0.1:1082", want: "http://127.0.0.1:1081"},
		{name: "order does not matter", raw: "http=h:1;socks5=s:2", want: "socks5://s:2"},
		{name: "bare address", raw: "127.0.0.1:7890", want: "http://127.0.0.1:7890"},
		{name: "spaces trimmed", raw: " 127.0.0.1:7890 ", want: "http://127.0.0.1:7890"},
		{name: "uppercase tag", raw: "SOCKS5=127.0.0.1:1080", want: "socks5://127.0.0.1:1080"},
		{name: "empty", raw: "", want: ""},
		{name: "no usable tag", raw: "https=127.0.0.1:1082;ftp=127.0.0.1:21", want: ""},
		{name: "malformed entry", raw: "socks5=127.0.0.1:1080;garbage", want: ""},
		{name: "socks5 empty falls back to http", raw: "socks5=;http=h:1", want: "http://h:1"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseServer(tt.raw))
		})
	}
}

func TestStatic(t *testing.T) {
	assert.Equal(t, types.ProxyURL("http://a:1"), Static("http://a:1").Read())
	assert.True(t, Static("").Read().IsZero())
}

func TestNewNeverPanics(t *testing.T) {
	// The result depends on the host; only the contract "no panic, no error" is checked.
	_ = New().Read()
}

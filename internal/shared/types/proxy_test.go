package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProxyURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    ProxyURL
		wantErr bool
	}{
		{name: "http with port", raw: "http://127.0.0.1:7890", want: "http://127.0.0.1:7890"},
		{name: "socks5", raw: "socks5://127.0.0.1:1080", want: "socks5://127.0.0.1:1080"},
		{name: "https without port", raw: "https://proxy.example", want: "https://proxy.example"},
		{name: "surrounding spaces trimmed", raw: "  http://a:1 ", want: "http://a:1"},
		{name: "full-width colons", raw: "http：//127.0.0.1：7890", want: "http://127.0.0.1:7890"},
		{name: "ipv6 host", raw: "socks5://[::1]:1080", want: "socks5://[::1]:1080"},
		{name: "empty", raw: "", wantErr: true},
		{name: "blank", raw: "   ", wantErr: true},
		{name: "missing scheme", raw: "127.0.0.1:7890", wantErr: true},
		{name: "unsupported scheme", raw: "ftp://a:21", wantErr: true},
		{name: "missing host", raw: "http://", wantErr: true},
		{name: "non-empty path", raw: "http://a:1/foo", wantErr: true},
		{name: "bad port", raw: "http://a:port", wantErr: true},
		{name: "credentials", raw: "http://u:p@a:1", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseProxyURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidProxyURL))
				var ve *ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, tt.raw, ve.Input)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProxyURLParts(t *testing.T) {
	p := ProxyURL("socks5://127.0.0.1:1080")
	assert.Equal(t, "socks5", p.Scheme())
	assert.Equal(t, "127.0.0.1:1080", p.Addr())
	assert.False(t, p.IsZero())

	var none ProxyURL
	assert.True(t, none.IsZero())
	assert.Empty(t, none.Scheme())
	assert.Empty(t, none.Addr())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "enabled  http://a:1", Status{Enabled: true, URL: "http://a:1"}.String())
	assert.Equal(t, "disabled, system proxy: http://b:2", Status{SystemProxy: "http://b:2"}.String())
	assert.Equal(t, "disabled, no system proxy detected", Status{}.String())
}

func TestConfigWriteError(t *testing.T) {
	cause := errors.New("exit status 3")
	err := &ConfigWriteError{Op: "set", Output: "error: could not lock config file\n", ExitCode: 3, Err: cause}

	assert.True(t, errors.Is(err, ErrConfigWrite))
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "could not lock config file")
	assert.Contains(t, err.Error(), "exit status 3")
}

func TestProbeResultMessage(t *testing.T) {
	ok := ProbeResult{Outcome: ProbeSuccess, Proxy: "http://a:1"}
	assert.Contains(t, ok.Message(), "http://a:1")

	failed := ProbeResult{Outcome: ProbeFailure, Reason: "fatal: unable to access"}
	assert.Contains(t, failed.Message(), "fatal: unable to access")

	assert.Equal(t, "timeout", ProbeTimeout.String())
}

//go:build linux

package sysproxy

import (
	"fmt"
	"net"
	"os/exec"
	"strconv"
	"strings"

	"gitproxy_switch/internal/shared/logger"
	"gitproxy_switch/internal/shared/types"
)

// gnomeReader reads the GNOME proxy settings through gsettings.
type gnomeReader struct {
	query func(schema, key string) (string, error)
}

func newPlatformReader() Reader {
	return gnomeReader{query: gsettingsGet}
}

func gsettingsGet(schema, key string) (string, error) {
	out, err := exec.Command("gsettings", "get", schema, key).Output()
	if err != nil {
		return "", fmt.Errorf("gsettings get %s %s: %w", schema, key, err)
	}
	return strings.Trim(strings.TrimSpace(string(out)), "'"), nil
}

// Read maps the manual-mode socks and http entries onto the same server
// specification the Windows registry uses.
func (r gnomeReader) Read() types.ProxyURL {
	l := logger.WithComponent("SysProxy")

	mode, err := r.query("org.gnome.system.proxy", "mode")
	if err != nil {
		l.Debug().Err(err).Msg("GNOME proxy settings unavailable.")
		return ""
	}
	if mode != "manual" {
		return ""
	}

	var entries []string
	for _, e := range []struct{ tag, schema string }{
		{types.SchemeSOCKS5, "org.gnome.system.proxy.socks"},
		{types.SchemeHTTP, "org.gnome.system.proxy.http"},
	} {
		if addr := r.hostPort(e.schema); addr != "" {
			entries = append(entries, e.tag+"="+addr)
		}
	}
	if len(entries) == 0 {
		return ""
	}
	return ParseServer(strings.Join(entries, ";"))
}

func (r gnomeReader) hostPort(schema string) string {
	host, err := r.query(schema, "host")
	if err != nil || host == "" {
		return ""
	}
	port, err := r.query(schema, "port")
	if err != nil {
		return ""
	}
	if n, err := strconv.Atoi(port); err != nil || n <= 0 {
		return ""
	}
	return net.JoinHostPort(host, port)
}

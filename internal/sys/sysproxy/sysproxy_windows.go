//go:build windows

package sysproxy

import (
	"gitproxy_switch/internal/shared/logger"
	"gitproxy_switch/internal/shared/types"

	"golang.org/x/sys/windows/registry"
)

const internetSettingsPath = `Software\Microsoft\Windows\CurrentVersion\Internet Settings`

type registryReader struct{}

func newPlatformReader() Reader {
	return registryReader{}
}

// Read consults ProxyEnable and ProxyServer under HKCU Internet Settings.
func (registryReader) Read() types.ProxyURL {
	l := logger.WithComponent("SysProxy")

	key, err := registry.OpenKey(registry.CURRENT_USER, internetSettingsPath, registry.QUERY_VALUE)
	if err != nil {
		l.Debug().Err(err).Msg("Cannot open Internet Settings registry key.")
		return ""
	}
	defer key.Close()

	enabled, _, err := key.GetIntegerValue("ProxyEnable")
	if err != nil || enabled == 0 {
		return ""
	}

	server, _, err := key.GetStringValue("ProxyServer")
	if err != nil {
		l.Debug().Err(err).Msg("Proxy enabled but ProxyServer is unreadable.")
		return ""
	}
	return ParseServer(server)
}

//go:build !linux && !windows

package sysproxy

// Ambient proxy discovery is not implemented on this platform.
func newPlatformReader() Reader {
	return Static("")
}

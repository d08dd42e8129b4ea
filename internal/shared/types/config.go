package types

import "time"

// GitConf describes how the git executable is invoked and which remote the
// proxy applies to.
type GitConf struct {
	Binary string `ini:"binary"`
	// Remote is the URL pattern of the http.<remote>.proxy key.
	Remote string `ini:"remote"`
}

// ProbeConf configures the connectivity test.
type ProbeConf struct {
	Target  string        `ini:"target"`
	Ref     string        `ini:"ref"`
	Timeout time.Duration `ini:"timeout"`
}

// HistoryConf configures the recently used proxy list.
type HistoryConf struct {
	File       string `ini:"file"`
	MaxEntries int    `ini:"max_entries"`
}

// LogConf contains logging specific configuration
type LogConf struct {
	Level string `ini:"level"`
}

// Config is the unified configuration of the tool.
type Config struct {
	GitConf     `ini:"git"`
	ProbeConf   `ini:"probe"`
	HistoryConf `ini:"history"`
	LogConf     `ini:"log"`
}

// DefaultConfig returns the built-in defaults. Every field may be overridden
// by gitproxy.ini.
func DefaultConfig() *Config {
	return &Config{
		GitConf: GitConf{
			Binary: "git",
			Remote: "https://github.com",
		},
		ProbeConf: ProbeConf{
			Target:  "https://github.com/github/gitignore",
			Ref:     "HEAD",
			Timeout: 3 * time.Second,
		},
		HistoryConf: HistoryConf{
			File:       "history.json",
			MaxEntries: 10,
		},
		LogConf: LogConf{
			Level: "info",
		},
	}
}

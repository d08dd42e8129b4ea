package gitconfig

import (
	"context"
	"strings"

	"gitproxy_switch/internal/shared/logger"
	"gitproxy_switch/internal/shared/types"
	"gitproxy_switch/internal/sys/gitexec"
)

// exitKeyNotSet is what `git config --unset-all` returns when no value matches.
// Plain --unset also uses 5 for a key with several values, so it is not used.
const exitKeyNotSet = 5

// Store reads and writes the http.<remote>.proxy key of git's global config.
type Store struct {
	runner gitexec.Runner
	key    string
}

// New creates a Store for the given remote URL pattern, e.g. https://github.com.
func New(runner gitexec.Runner, remote string) *Store {
	return &Store{
		runner: runner,
		key:    "http." + remote + ".proxy",
	}
}

// Key returns the git config key managed by the store.
func (s *Store) Key() string { return s.key }

// Get returns the configured proxy, or "" when the key is unset or git could
// not be queried.
func (s *Store) Get(ctx context.Context) types.ProxyURL {
	l := logger.WithComponent("GitConfig")

	res, err := s.runner.Run(ctx, nil, "config", "--global", "--get", s.key)
	if err != nil {
		l.Debug().Err(err).Str("key", s.key).Msg("git config query failed, treating proxy as unset.")
		return ""
	}
	if res.ExitCode != 0 {
		l.Debug().Int("exit_code", res.ExitCode).Str("key", s.key).Msg("Proxy key not set.")
		return ""
	}
	return types.ProxyURL(strings.TrimSpace(res.Stdout))
}

// Set writes proxy to the key.
func (s *Store) Set(ctx context.Context, proxy types.ProxyURL) error {
	if err := s.write(ctx, "set", "config", "--global", s.key, proxy.String()); err != nil {
		return err
	}
	l := logger.WithComponent("GitConfig")
	l.Info().Str("key", s.key).Str("proxy", proxy.String()).Msg("Proxy written to git global config.")
	return nil
}

// Unset removes every value of the key. Removing an absent key succeeds.
func (s *Store) Unset(ctx context.Context) error {
	if err := s.write(ctx, "unset", "config", "--global", "--unset-all", s.key); err != nil {
		return err
	}
	l := logger.WithComponent("GitConfig")
	l.Info().Str("key", s.key).Msg("Proxy removed from git global config.")
	return nil
}

func (s *Store) write(ctx context.Context, op string, args ...string) error {
	res, err := s.runner.Run(ctx, nil, args...)
	if err != nil {
		cwe := &types.ConfigWriteError{Op: op, Err: err}
		if res != nil {
			cwe.Output = res.Output()
		}
		return cwe
	}
	if res.ExitCode == 0 || (op == "unset" && res.ExitCode == exitKeyNotSet) {
		return nil
	}
	return &types.ConfigWriteError{Op: op, Output: res.Output(), ExitCode: res.ExitCode}
}

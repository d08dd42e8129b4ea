package gitconfig

import (
	"context"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitproxy_switch/internal/shared/types"
	"gitproxy_switch/internal/sys/gitexec"
)

// newRealStore points git's global config at a file in a temp dir.
func newRealStore(t *testing.T) (*Store, *gitexec.Exec) {
	t.Helper()
	git, err := exec.LookPath("git")
	if err != nil {
		t.Skip("git not available")
	}
	t.Setenv("GIT_CONFIG_GLOBAL", filepath.Join(t.TempDir(), "gitconfig"))
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")
	runner := gitexec.New(git)
	return New(runner, "https://github.com"), runner
}

func TestRealGitRoundTrip(t *testing.T) {
	s, _ := newRealStore(t)
	ctx := context.Background()

	assert.True(t, s.Get(ctx).IsZero())
	require.NoError(t, s.Set(ctx, "socks5://127.0.0.1:1080"))
	assert.Equal(t, types.ProxyURL("socks5://127.0.0.1:1080"), s.Get(ctx))

	require.NoError(t, s.Unset(ctx))
	assert.True(t, s.Get(ctx).IsZero())
	require.NoError(t, s.Unset(ctx))
}

func TestRealGitUnsetMultiValuedKey(t *testing.T) {
	s, runner := newRealStore(t)
	ctx := context.Background()

	for _, v := range []string{"http://a:1", "http://b:2"} {
		res, err := runner.Run(ctx, nil, "config", "--global", "--add", s.Key(), v)
		require.NoError(t, err)
		require.Equal(t, 0, res.ExitCode, res.Output())
	}

	require.NoError(t, s.Unset(ctx))
	assert.True(t, s.Get(ctx).IsZero())
}

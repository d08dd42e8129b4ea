package probe

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"gitproxy_switch/internal/shared/envutil"
	"gitproxy_switch/internal/shared/logger"
	"gitproxy_switch/internal/shared/types"
	"gitproxy_switch/internal/sys/gitexec"
)

// DefaultTimeout bounds a single connectivity test.
const DefaultTimeout = 3 * time.Second

// Prober checks that git can reach a remote repository through a proxy.
type Prober struct {
	runner  gitexec.Runner
	target  string
	ref     string
	timeout time.Duration
	environ func() []string
}

// New creates a Prober listing ref of the target repository.
func New(runner gitexec.Runner, target, ref string, timeout time.Duration) *Prober {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Prober{
		runner:  runner,
		target:  target,
		ref:     ref,
		timeout: timeout,
		environ: os.Environ,
	}
}

// Timeout returns the configured bound.
func (p *Prober) Timeout() time.Duration { return p.timeout }

// Test runs `git ls-remote` with the proxy variables of this one child process
// pointing at proxy. Git's global config is not touched.
func (p *Prober) Test(ctx context.Context, proxy types.ProxyURL) types.ProbeResult {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	env := envutil.WithProxy(p.environ(), proxy.String())
	args := []string{"ls-remote", p.target}
	if p.ref != "" {
		args = append(args, p.ref)
	}

	l := logger.WithComponent("Probe")
	l.Debug().Strs("args", args).Str("proxy", proxy.String()).Dur("timeout", p.timeout).Msg("Running git through proxy.")

	start := time.Now()
	res, err := p.runner.Run(ctx, env, args...)
	result := types.ProbeResult{Proxy: proxy, Duration: time.Since(start)}

	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		result.Outcome = types.ProbeTimeout
		result.Reason = fmt.Sprintf("connection timed out (%s), check the proxy configuration", p.timeout)
	case err != nil:
		result.Outcome = types.ProbeFailure
		result.Reason = err.Error()
	case res.ExitCode != 0:
		result.Outcome = types.ProbeFailure
		result.Reason = res.Output()
		if result.Reason == "" {
			result.Reason = fmt.Sprintf("git ls-remote exited with status %d", res.ExitCode)
		}
	default:
		result.Outcome = types.ProbeSuccess
	}
	return result
}

// Package gitexec runs the git executable as a child process.
//
// Every invocation goes through Runner so the console window of the child is
// suppressed the same way on every call site, and so tests can substitute a
// fake git.
package gitexec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// waitDelay bounds how long Run keeps draining pipes after the child was
// killed, in case a grandchild still holds them open.
const waitDelay = time.Second

// Result holds the outcome of one git invocation.
type Result struct {
	// ExitCode is the process exit code. 0 indicates success.
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// Output returns stderr, or stdout when stderr is empty, trimmed.
func (r *Result) Output() string {
	if s := strings.TrimSpace(r.Stderr); s != "" {
		return s
	}
	return strings.TrimSpace(r.Stdout)
}

// Runner executes git with the given arguments.
// A non-zero exit is reported in Result.ExitCode, not as an error. The error
// is non-nil only when the process could not be run or ctx ended first; in
// the latter case it wraps ctx.Err().
type Runner interface {
	Run(ctx context.Context, env []string, args ...string) (*Result, error)
}

// Exec is the Runner backed by a real git binary.
type Exec struct {
	// Binary is the git executable name or path.
	Binary string
}

// New returns an Exec for binary ("git" when empty).
func New(binary string) *Exec {
	if binary == "" {
		binary = "git"
	}
	return &Exec{Binary: binary}
}

// Run implements Runner. A nil env inherits the current process environment.
func (e *Exec) Run(ctx context.Context, env []string, args ...string) (*Result, error) {
	cmd := exec.CommandContext(ctx, e.Binary, args...)
	cmd.Env = env

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	setupProcAttr(cmd)
	cmd.WaitDelay = waitDelay

	start := time.Now()
	err := cmd.Run()
	res := &Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		res.ExitCode = -1
		return res, fmt.Errorf("git %s: %w", firstArg(args), ctxErr)
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, fmt.Errorf("git %s: %w", firstArg(args), err)
	}
	return res, nil
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

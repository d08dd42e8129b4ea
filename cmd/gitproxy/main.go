package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"gitproxy_switch/internal/app"
	"gitproxy_switch/internal/shared/config"
	"gitproxy_switch/internal/shared/logger"
	"gitproxy_switch/internal/shared/types"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// controller is the part of app.Controller the command line drives.
type controller interface {
	Refresh(ctx context.Context) types.Status
	Enable(ctx context.Context, raw string) (types.Status, error)
	Disable(ctx context.Context) (types.Status, error)
	Suggestion(ctx context.Context) types.ProxyURL
	Test(ctx context.Context) (<-chan types.ProbeResult, error)
	History() []types.ProxyURL
	ClearHistory() error
}

var newController = func(cfg *types.Config) controller { return app.New(cfg) }

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("gitproxy", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SortFlags = false
	configDir := fs.String("configdir", defaultConfigDir(), "Directory holding gitproxy.ini and history.json")
	logLevel := fs.String("log-level", "", "Override the [log] level from gitproxy.ini (debug|info|warn|error)")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: gitproxy [flags] <status|enable URL|disable|test|history|clear-history>")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return exitUsage
	}

	iniPath := filepath.Join(*configDir, config.FileName)
	cfg, err := config.Load(iniPath)
	if err != nil {
		// Use standard fmt before logger is initialized.
		fmt.Fprintf(stderr, "Fatal: Failed to load config file '%s': %v\n", iniPath, err)
		return exitError
	}
	if *logLevel != "" {
		cfg.LogConf.Level = *logLevel
	}
	if err := logger.InitWithWriter(cfg.LogConf, stderr); err != nil {
		fmt.Fprintf(stderr, "Fatal: Failed to initialize logger: %v\n", err)
		return exitError
	}

	ctrl := newController(cfg)
	return dispatch(context.Background(), ctrl, fs.Args(), stdout, stderr)
}

func dispatch(ctx context.Context, ctrl controller, args []string, stdout, stderr io.Writer) int {
	cmd, rest := args[0], args[1:]

	switch cmd {
	case "status":
		fmt.Fprintln(stdout, "status: "+ctrl.Refresh(ctx).String())
		if s := ctrl.Suggestion(ctx); !s.IsZero() {
			fmt.Fprintln(stdout, "suggested: "+s.String())
		}
		return exitOK

	case "enable":
		if len(rest) != 1 {
			fmt.Fprintln(stderr, "enable requires exactly one proxy address (scheme://host:port)")
			return exitUsage
		}
		st, err := ctrl.Enable(ctx, rest[0])
		if err != nil {
			fmt.Fprintf(stderr, "failed to set proxy\n%v\n", err)
			return exitError
		}
		fmt.Fprintf(stdout, "proxy enabled\n%s\n", st.URL)
		return exitOK

	case "disable":
		st, err := ctrl.Disable(ctx)
		if err != nil {
			fmt.Fprintf(stderr, "failed to disable proxy\n%v\n", err)
			return exitError
		}
		fmt.Fprintln(stdout, "proxy disabled")
		fmt.Fprintln(stdout, "status: "+st.String())
		return exitOK

	case "test":
		results, err := ctrl.Test(ctx)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return exitError
		}
		fmt.Fprintln(stdout, "testing proxy connection...")
		res := <-results
		if res.Outcome != types.ProbeSuccess {
			fmt.Fprintln(stderr, res.Message())
			return exitError
		}
		fmt.Fprintln(stdout, res.Message())
		return exitOK

	case "history":
		for _, p := range ctrl.History() {
			fmt.Fprintln(stdout, p)
		}
		return exitOK

	case "clear-history":
		if err := ctrl.ClearHistory(); err != nil {
			fmt.Fprintln(stderr, err)
			return exitError
		}
		fmt.Fprintln(stdout, "history cleared")
		return exitOK

	default:
		fmt.Fprintf(stderr, "unknown command %q\n", cmd)
		return exitUsage
	}
}

// defaultConfigDir keeps config and history next to the executable, where the
// original tool kept history.json.
func defaultConfigDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

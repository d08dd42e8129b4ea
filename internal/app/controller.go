package app

import (
	"context"
	"sync"

	"gitproxy_switch/internal/shared/logger"
	"gitproxy_switch/internal/shared/types"
	"gitproxy_switch/internal/sys/sysproxy"
)

// ConfigStore is git's global proxy key.
type ConfigStore interface {
	Get(ctx context.Context) types.ProxyURL
	Set(ctx context.Context, proxy types.ProxyURL) error
	Unset(ctx context.Context) error
}

// HistoryStore is the persisted list of recently used proxies.
type HistoryStore interface {
	Load() []types.ProxyURL
	Add(proxy types.ProxyURL) ([]types.ProxyURL, error)
	Clear() error
}

// ProbeStarter launches an asynchronous connectivity test.
type ProbeStarter interface {
	Start(ctx context.Context, proxy types.ProxyURL) (<-chan types.ProbeResult, error)
}

// Controller is the proxy state machine: Disabled or Enabled(url).
// The state itself lives in git's global config and is re-read on every call.
type Controller struct {
	mu sync.Mutex

	config  ConfigStore
	system  sysproxy.Reader
	history HistoryStore
	prober  ProbeStarter

	// display copy of the history; the HistoryStore stays authoritative.
	recent []types.ProxyURL
}

// NewController wires the collaborators and loads the history.
func NewController(config ConfigStore, system sysproxy.Reader, history HistoryStore, prober ProbeStarter) *Controller {
	return &Controller{
		config:  config,
		system:  system,
		history: history,
		prober:  prober,
		recent:  history.Load(),
	}
}

// Refresh derives the current status without changing anything.
func (c *Controller) Refresh(ctx context.Context) types.Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.refresh(ctx)
}

func (c *Controller) refresh(ctx context.Context) types.Status {
	if proxy := c.config.Get(ctx); !proxy.IsZero() {
		return types.Status{Enabled: true, URL: proxy}
	}
	return types.Status{SystemProxy: c.system.Read()}
}

// Enable validates raw and points git at it. It works from both states, so
// it also switches an active proxy. On failure the previous state is kept.
// A rejected address returns a zero Status without touching git or the OS
// settings; callers keep their last known status.
func (c *Controller) Enable(ctx context.Context, raw string) (types.Status, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	l := logger.WithComponent("Controller")

	proxy, err := types.ParseProxyURL(raw)
	if err != nil {
		l.Warn().Err(err).Msg("Rejected proxy address.")
		return types.Status{}, err
	}

	if err := c.config.Set(ctx, proxy); err != nil {
		l.Error().Err(err).Str("proxy", proxy.String()).Msg("Failed to enable proxy.")
		return c.refresh(ctx), err
	}

	recent, err := c.history.Add(proxy)
	if err != nil {
		l.Warn().Err(err).Msg("Proxy enabled but history could not be saved.")
	}
	c.recent = recent

	l.Info().Str("proxy", proxy.String()).Msg("Proxy enabled.")
	return types.Status{Enabled: true, URL: proxy}, nil
}

// Disable removes git's proxy and reports the fresh status, including the
// ambient system proxy suggestion.
func (c *Controller) Disable(ctx context.Context) (types.Status, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	l := logger.WithComponent("Controller")

	if err := c.config.Unset(ctx); err != nil {
		l.Error().Err(err).Msg("Failed to disable proxy.")
		return c.refresh(ctx), err
	}

	l.Info().Msg("Proxy disabled.")
	return c.refresh(ctx), nil
}

// Suggestion is the address to pre-fill for the user: the active proxy, or
// the system proxy while disabled.
func (c *Controller) Suggestion(ctx context.Context) types.ProxyURL {
	st := c.Refresh(ctx)
	if st.Enabled {
		return st.URL
	}
	return st.SystemProxy
}

// Test starts a connectivity test of the active proxy and returns at once.
// The channel yields a single result. While disabled it returns
// types.ErrNoProxyConfigured without probing.
func (c *Controller) Test(ctx context.Context) (<-chan types.ProbeResult, error) {
	c.mu.Lock()
	proxy := c.config.Get(ctx)
	c.mu.Unlock()

	if proxy.IsZero() {
		return nil, types.ErrNoProxyConfigured
	}
	return c.prober.Start(ctx, proxy)
}

// History returns the recently used proxies, most recent first.
func (c *Controller) History() []types.ProxyURL {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.recent = c.history.Load()
	out := make([]types.ProxyURL, len(c.recent))
	copy(out, c.recent)
	return out
}

// ClearHistory deletes the persisted history.
func (c *Controller) ClearHistory() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.history.Clear(); err != nil {
		return err
	}
	c.recent = nil
	return nil
}

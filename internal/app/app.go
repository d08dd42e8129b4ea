package app

import (
	"gitproxy_switch/internal/core/gitconfig"
	"gitproxy_switch/internal/core/history"
	"gitproxy_switch/internal/core/probe"
	"gitproxy_switch/internal/shared/logger"
	"gitproxy_switch/internal/shared/types"
	"gitproxy_switch/internal/sys/gitexec"
	"gitproxy_switch/internal/sys/sysproxy"
)

// New creates a Controller backed by the real git binary, the platform's
// system proxy settings and the history file named in cfg.
func New(cfg *types.Config) *Controller {
	runner := gitexec.New(cfg.GitConf.Binary)

	store := gitconfig.New(runner, cfg.GitConf.Remote)
	hist := history.NewStore(cfg.HistoryConf.File, cfg.HistoryConf.MaxEntries)
	prober := probe.New(runner, cfg.ProbeConf.Target, cfg.ProbeConf.Ref, cfg.ProbeConf.Timeout)

	logger.Debug().
		Str("key", store.Key()).
		Str("history", cfg.HistoryConf.File).
		Str("probe_target", cfg.ProbeConf.Target).
		Msgf("controller wired, probe timeout %s", prober.Timeout())

	return NewController(store, sysproxy.New(), hist, probe.NewWorker(prober))
}

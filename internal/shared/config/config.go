package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"gopkg.in/ini.v1"

	"gitproxy_switch/internal/shared/types"
)

// FileName is the name of the behaviour config inside the config directory.
const FileName = "gitproxy.ini"

// Load reads the ini file at fileName on top of the built-in defaults.
// A missing file is not an error; the defaults are returned.
func Load(fileName string) (*types.Config, error) {
	cfg := types.DefaultConfig()

	iniFile, err := ini.LooseLoad(fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", fileName, err)
	}
	if err := iniFile.MapTo(cfg); err != nil {
		return nil, fmt.Errorf("failed to map %s: %w", fileName, err)
	}

	if cfg.HistoryConf.File != "" && !filepath.IsAbs(cfg.HistoryConf.File) {
		cfg.HistoryConf.File = filepath.Join(filepath.Dir(fileName), cfg.HistoryConf.File)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the core cannot work with.
func Validate(cfg *types.Config) error {
	var errs []error
	if cfg.GitConf.Binary == "" {
		errs = append(errs, errors.New("git.binary must not be empty"))
	}
	if cfg.GitConf.Remote == "" {
		errs = append(errs, errors.New("git.remote must not be empty"))
	}
	if cfg.ProbeConf.Target == "" {
		errs = append(errs, errors.New("probe.target must not be empty"))
	}
	if cfg.ProbeConf.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("probe.timeout must be positive, got %s", cfg.ProbeConf.Timeout))
	}
	if cfg.HistoryConf.File == "" {
		errs = append(errs, errors.New("history.file must not be empty"))
	}
	if cfg.HistoryConf.MaxEntries < 1 {
		errs = append(errs, fmt.Errorf("history.max_entries must be at least 1, got %d", cfg.HistoryConf.MaxEntries))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

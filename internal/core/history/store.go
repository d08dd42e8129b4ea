package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gitproxy_switch/internal/shared/logger"
	"gitproxy_switch/internal/shared/types"
)

// DefaultMaxEntries is the history length used when none is configured.
const DefaultMaxEntries = 10

// legacyEntry is the record shape written by early releases.
type legacyEntry struct {
	Protocol string `json:"protocol"`
	Addr     string `json:"addr"`
}

// Store persists the most-recently-used proxy list as a JSON array of strings.
// The file is the source of truth; every call re-reads it.
type Store struct {
	filePath   string
	maxEntries int
	mu         sync.Mutex
}

// NewStore creates a Store backed by filePath keeping at most maxEntries items.
func NewStore(filePath string, maxEntries int) *Store {
	if maxEntries < 1 {
		maxEntries = DefaultMaxEntries
	}
	return &Store{
		filePath:   filePath,
		maxEntries: maxEntries,
	}
}

// Load returns the persisted history, most recent first. Unreadable or
// corrupt files yield an empty list.
func (s *Store) Load() []types.ProxyURL {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() []types.ProxyURL {
	l := logger.WithComponent("History")

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			l.Warn().Err(err).Str("path", s.filePath).Msg("Failed to read history file, starting empty.")
		}
		return []types.ProxyURL{}
	}

	entries, err := decode(data)
	if err != nil {
		l.Warn().Err(err).Str("path", s.filePath).Msg("History file is corrupt, starting empty.")
		return []types.ProxyURL{}
	}
	return entries
}

// decode accepts both the canonical ["scheme://addr", ...] form and the
// legacy [{"protocol": ..., "addr": ...}, ...] form. Null, empty and
// address-less entries are dropped.
func decode(data []byte) ([]types.ProxyURL, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	entries := make([]types.ProxyURL, 0, len(raw))
	for i, item := range raw {
		var s *string
		if err := json.Unmarshal(item, &s); err == nil {
			if s != nil && strings.TrimSpace(*s) != "" {
				entries = append(entries, types.ProxyURL(*s))
			}
			continue
		}
		var legacy legacyEntry
		if err := json.Unmarshal(item, &legacy); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if strings.TrimSpace(legacy.Addr) == "" {
			continue
		}
		protocol := legacy.Protocol
		if protocol == "" {
			protocol = types.SchemeHTTP
		}
		entries = append(entries, types.ProxyURL(protocol+"://"+legacy.Addr))
	}
	return entries, nil
}

// Add moves proxy to the front of the history, truncates it and persists it.
// The returned list is the new history even when persisting failed.
func (s *Store) Add(proxy types.ProxyURL) ([]types.ProxyURL, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.load()
	updated := make([]types.ProxyURL, 0, len(current)+1)
	updated = append(updated, proxy)
	for _, p := range current {
		if p != proxy {
			updated = append(updated, p)
		}
	}
	if len(updated) > s.maxEntries {
		updated = updated[:s.maxEntries]
	}

	if err := s.persist(updated); err != nil {
		return updated, fmt.Errorf("failed to save history: %w", err)
	}
	return updated, nil
}

// Clear removes the history file. A missing file is not an error.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.filePath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove history: %w", err)
	}
	logger.Info().Str("path", s.filePath).Msg("History cleared.")
	return nil
}

// persist writes through a temp file and rename so a crash leaves either the
// old file or the complete new one.
func (s *Store) persist(entries []types.ProxyURL) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.filePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".history-*.json")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmpName, s.filePath); err != nil {
		return err
	}

	l := logger.WithComponent("History")
	l.Debug().Int("count", len(entries)).Str("path", s.filePath).Msg("History saved.")
	return nil
}

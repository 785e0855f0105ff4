package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"vmstrip/internal/logging"
)

// Theme selects the tray icon set.
type Theme string

const (
	ThemeDefault   Theme = "default"
	ThemeAlternate Theme = "alternate"
)

// ParseTheme converts a user-supplied theme label into a Theme.
func ParseTheme(value string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "default":
		return ThemeDefault, nil
	case "alternate", "alt":
		return ThemeAlternate, nil
	default:
		return "", fmt.Errorf("unknown theme %q (expected default or alternate)", value)
	}
}

type record struct {
	IconTheme string `json:"icon_theme"`
}

// Store provides thread-safe access to the persisted preferences.
type Store struct {
	path   string
	logger *slog.Logger

	mu    sync.RWMutex
	theme Theme
}

// NewStore loads the settings file at path, defaulting the theme when the
// file is absent or malformed. An empty path makes persistence a no-op.
func NewStore(path string, logger *slog.Logger) *Store {
	logger = logging.NewComponentLogger(logger, "settings")

	s := &Store{
		path:   path,
		logger: logger,
		theme:  ThemeDefault,
	}

	if path == "" {
		return s
	}

	if err := s.load(); err != nil {
		logger.Warn("failed to load settings, using defaults", logging.Error(err))
	}

	return s
}

// Theme returns the active icon theme.
func (s *Store) Theme() Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// SetTheme updates the icon theme and persists it immediately.
func (s *Store) SetTheme(theme Theme) error {
	if theme != ThemeDefault && theme != ThemeAlternate {
		return fmt.Errorf("unknown theme %q", theme)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.theme = theme
	if s.path == "" {
		return nil
	}
	if err := s.save(); err != nil {
		return fmt.Errorf("persist settings: %w", err)
	}

	s.logger.Debug("saved icon theme", logging.String("theme", string(theme)))
	return nil
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil // fresh start
		}
		return fmt.Errorf("read settings file: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("parse settings file: %w", err)
	}

	if theme, err := ParseTheme(rec.IconTheme); err == nil {
		s.theme = theme
	}
	return nil
}

// save writes the settings to disk atomically.
func (s *Store) save() error {
	data, err := json.MarshalIndent(record{IconTheme: string(s.theme)}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath) // cleanup on failure
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// Package settings holds console-wide preferences.
package settings

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"fuel-console/internal/cache"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Persister stores raw setting values.
type Persister interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
}

// RedisPersister stores settings through the shared cache connection. It
// degrades to memory-only when Redis is not configured.
type RedisPersister struct{}

func (RedisPersister) Get(ctx context.Context, key string) ([]byte, bool) {
	return cache.GetCached(ctx, key)
}

func (RedisPersister) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return cache.SetCached(ctx, key, data, ttl)
}

// ThemeStore is the process-wide light/dark preference.
type ThemeStore struct {
	mu    sync.RWMutex
	theme string
	store Persister
}

// NewThemeStore starts with def (light unless "dark").
func NewThemeStore(store Persister, def string) *ThemeStore {
	return &ThemeStore{theme: normalize(def), store: store}
}

// Load replaces the current theme with the persisted one, if any.
func (s *ThemeStore) Load(ctx context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store != nil {
		if raw, ok := s.store.Get(ctx, cache.ThemeKey); ok {
			if theme, valid := parse(string(raw)); valid {
				s.theme = theme
			}
		}
	}
	return s.theme
}

// Theme returns the current theme.
func (s *ThemeStore) Theme() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// Set changes the theme. Only "light" and "dark" are accepted.
func (s *ThemeStore) Set(ctx context.Context, theme string) error {
	parsed, ok := parse(theme)
	if !ok {
		return fmt.Errorf("unknown theme %q", theme)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = parsed
	s.persist(ctx)
	return nil
}

// Toggle flips between light and dark and returns the new theme.
func (s *ThemeStore) Toggle(ctx context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.theme == ThemeDark {
		s.theme = ThemeLight
	} else {
		s.theme = ThemeDark
	}
	s.persist(ctx)
	return s.theme
}

// persist must be called with mu held.
func (s *ThemeStore) persist(ctx context.Context) {
	if s.store == nil {
		return
	}
	if err := s.store.Set(ctx, cache.ThemeKey, []byte(s.theme), 0); err != nil {
		log.Printf("[Settings] Failed to persist theme: %v", err)
	}
}

func parse(theme string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(theme)) {
	case ThemeLight:
		return ThemeLight, true
	case ThemeDark:
		return ThemeDark, true
	}
	return "", false
}

func normalize(theme string) string {
	if t, ok := parse(theme); ok {
		return t
	}
	return ThemeLight
}

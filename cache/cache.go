// Package cache keeps rendered page payloads keyed by request path so public
// reads skip the database, and lets mutating handlers mark paths stale so the
// next request recomputes them.
package cache

import (
	"strings"
	"sync"

	"github.com/altos-estudio/altos-backend/i18n"
)

type Cache struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func New() *Cache {
	return &Cache{entries: make(map[string][]byte)}
}

// Get returns the cached payload for a request path, if present.
func (c *Cache) Get(path string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	payload, ok := c.entries[path]
	return payload, ok
}

// Set stores the payload rendered for a request path.
func (c *Cache) Set(path string, payload []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[path] = payload
}

// Invalidate drops every entry whose locale-stripped path matches one of the
// given paths or lives under it. Invalidate("/") therefore clears the home
// page for every locale.
func (c *Cache) Invalidate(paths ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		trimmed := stripLocale(key)
		for _, path := range paths {
			if trimmed == path || (path != "/" && strings.HasPrefix(trimmed, path+"/")) {
				delete(c.entries, key)
				break
			}
		}
	}
}

// stripLocale removes a leading locale segment, so "/en/projects" and
// "/es/projects" both invalidate under "/projects" and "/en" under "/".
func stripLocale(path string) string {
	rest := strings.TrimPrefix(path, "/")
	segment, tail, _ := strings.Cut(rest, "/")
	if !i18n.IsValid(segment) {
		return path
	}
	if tail == "" {
		return "/"
	}
	return "/" + tail
}

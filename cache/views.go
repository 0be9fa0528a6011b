// Package cache holds the list views served on the public and admin read
// paths. Write actions invalidate the views their entity affects, the same
// way the original pages were revalidated after a successful submission.
package cache

import (
	"sync"
	"time"
)

const (
	Services = "services"
	Stylists = "stylists"
)

type entry struct {
	data    any
	expires time.Time
}

type Views struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
}

func NewViews(ttl time.Duration) *Views {
	return &Views{entries: make(map[string]entry), ttl: ttl}
}

func (v *Views) Get(key string) (any, bool) {
	v.mu.RLock()
	e, ok := v.entries[key]
	v.mu.RUnlock()
	if !ok || time.Now().After(e.expires) {
		return nil, false
	}
	return e.data, true
}

func (v *Views) Set(key string, data any) {
	v.mu.Lock()
	v.entries[key] = entry{data: data, expires: time.Now().Add(v.ttl)}
	v.mu.Unlock()
}

func (v *Views) Invalidate(keys ...string) {
	v.mu.Lock()
	for _, key := range keys {
		delete(v.entries, key)
	}
	v.mu.Unlock()
}

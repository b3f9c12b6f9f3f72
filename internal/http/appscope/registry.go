package appscope

import (
	"sync"
	"time"
)

type entry struct {
	scope    *Scope
	lastSeen time.Time
}

// Registry keeps one Scope per browser session. Scopes are built lazily
// on first request and evicted after sitting idle for the session TTL.
type Registry struct {
	mu      sync.RWMutex
	deps    Deps
	entries map[string]*entry
}

func NewRegistry(deps Deps) *Registry {
	return &Registry{
		deps:    deps,
		entries: make(map[string]*entry),
	}
}

// Get returns the Scope for sessionID, building it on first use.
func (r *Registry) Get(sessionID string) *Scope {
	r.mu.RLock()
	e, ok := r.entries[sessionID]
	r.mu.RUnlock()
	if ok {
		r.mu.Lock()
		e.lastSeen = time.Now()
		r.mu.Unlock()
		return e.scope
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[sessionID]; ok {
		e.lastSeen = time.Now()
		return e.scope
	}
	sc := Build(r.deps, sessionID)
	r.entries[sessionID] = &entry{scope: sc, lastSeen: time.Now()}
	return sc
}

// Drop removes a session's Scope, forcing a rebuild on the next request.
func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	delete(r.entries, sessionID)
	r.mu.Unlock()
}

// Sweep evicts scopes idle longer than the session TTL. Run it
// periodically from main.
func (r *Registry) Sweep() {
	cutoff := time.Now().Add(-r.deps.SessionTTL)
	r.mu.Lock()
	for id, e := range r.entries {
		if e.lastSeen.Before(cutoff) {
			delete(r.entries, id)
		}
	}
	r.mu.Unlock()
}

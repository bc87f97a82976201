// Package session holds the process-wide active-session state: none or
// exactly one authenticated account. The context is owned by the
// composition root and injected into every service that needs it,
// instead of living in a package-level singleton.
package session

import (
	"sync"

	"github.com/Shalini-Dasari/TrustMed/internal/core/domain"
)

// Context is the single active-session reference. The stored snapshot
// is a cached, possibly stale copy of one account record; services
// refresh it after every successful store mutation.
type Context struct {
	mu      sync.RWMutex
	current *domain.Account
}

// NewContext returns an anonymous session context.
func NewContext() *Context {
	return &Context{}
}

// Set replaces the active snapshot with a copy of the given account.
func (c *Context) Set(account *domain.Account) {
	snapshot := cloneAccount(account)
	c.mu.Lock()
	c.current = snapshot
	c.mu.Unlock()
}

// Clear drops the active snapshot. Safe to call when already anonymous.
func (c *Context) Clear() {
	c.mu.Lock()
	c.current = nil
	c.mu.Unlock()
}

// Current returns a copy of the active snapshot and whether one exists.
func (c *Context) Current() (*domain.Account, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.current == nil {
		return nil, false
	}
	return cloneAccount(c.current), true
}

// IsAuthenticated reports whether a session is active.
func (c *Context) IsAuthenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current != nil
}

// cloneAccount deep-copies the mutable parts so callers can't alias
// the stored snapshot.
func cloneAccount(a *domain.Account) *domain.Account {
	if a == nil {
		return nil
	}
	cp := *a
	if a.Documents != nil {
		cp.Documents = make([]string, len(a.Documents))
		copy(cp.Documents, a.Documents)
	}
	if a.RefreshTokenExpiryTime != nil {
		t := *a.RefreshTokenExpiryTime
		cp.RefreshTokenExpiryTime = &t
	}
	return &cp
}

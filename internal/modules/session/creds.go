package session

import (
	"context"
	"sync"
)

// Record is the trio persisted for one browser session: access credential,
// refresh credential and the identity snapshot (JSON). The three live and
// die together; a partial record is never written.
type Record struct {
	Access   string
	Refresh  string
	Identity string
}

// CredentialStore is the durable storage behind a Store. Save and Clear act
// on the whole record; SetAccess rotates only the access credential after a
// silent refresh.
type CredentialStore interface {
	Load(ctx context.Context) (Record, bool, error)
	Save(ctx context.Context, rec Record) error
	SetAccess(ctx context.Context, access string) error
	Clear(ctx context.Context) error
}

// MemoryCreds keeps the record in memory. Used in tests and by the mock API
// tooling; production sessions use the DB-backed store.
type MemoryCreds struct {
	mu  sync.Mutex
	rec Record
	set bool
}

func NewMemoryCreds() *MemoryCreds { return &MemoryCreds{} }

func (m *MemoryCreds) Load(context.Context) (Record, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rec, m.set, nil
}

func (m *MemoryCreds) Save(_ context.Context, rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rec = rec
	m.set = true
	return nil
}

func (m *MemoryCreds) SetAccess(_ context.Context, access string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set {
		return nil
	}
	m.rec.Access = access
	return nil
}

func (m *MemoryCreds) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rec = Record{}
	m.set = false
	return nil
}

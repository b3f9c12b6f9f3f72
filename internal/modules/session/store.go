package session

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/marvakt/ChocoLuxe/internal/api"
)

// Store holds the authenticated identity for one browser session and owns
// its persistence. Credentials and the identity snapshot are written and
// cleared as a unit; other stores subscribe to identity transitions instead
// of reading ambient globals.
type Store struct {
	api   *api.Client
	creds CredentialStore
	log   *slog.Logger

	mu     sync.Mutex
	ident  *api.Identity
	onGain []func()
	onLoss []func()
}

func New(client *api.Client, creds CredentialStore, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{api: client, creds: creds, log: log}
}

// TokenSource exposes the persisted credentials to the HTTP transport.
func (s *Store) TokenSource() api.TokenSource {
	return &tokenSource{creds: s.creds}
}

// Rehydrate restores the identity from durable storage. Malformed stored
// data is treated as absence: a warning is logged and the session stays
// anonymous.
func (s *Store) Rehydrate(ctx context.Context) {
	rec, ok, err := s.creds.Load(ctx)
	if err != nil {
		s.log.Warn("credential load failed", "err", err)
		return
	}
	if !ok || rec.Identity == "" {
		return
	}

	var ident api.Identity
	if err := json.Unmarshal([]byte(rec.Identity), &ident); err != nil {
		s.log.Warn("stored identity snapshot is malformed, treating as logged out", "err", err)
		return
	}

	s.mu.Lock()
	s.ident = &ident
	s.mu.Unlock()
}

// Current returns the identity, if any.
func (s *Store) Current() (api.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ident == nil {
		return api.Identity{}, false
	}
	return *s.ident, true
}

// Login authenticates against the API. On success the access credential,
// refresh credential and identity snapshot are persisted together and the
// identity is returned. Any failure returns nil and leaves prior state
// untouched; nothing is propagated to the caller beyond the nil.
func (s *Store) Login(ctx context.Context, email, password string) *api.Identity {
	ident, access, refresh, err := s.api.Login(ctx, email, password)
	if err != nil {
		s.log.Warn("login failed", "email", email, "err", err)
		return nil
	}

	snapshot, err := json.Marshal(ident)
	if err != nil {
		s.log.Error("identity snapshot encode failed", "err", err)
		return nil
	}
	if err := s.creds.Save(ctx, Record{Access: access, Refresh: refresh, Identity: string(snapshot)}); err != nil {
		// An identity we cannot persist would evaporate on the next request;
		// better to report the login as failed.
		s.log.Error("credential save failed", "err", err)
		return nil
	}

	s.mu.Lock()
	s.ident = &ident
	gained := append([]func(){}, s.onGain...)
	s.mu.Unlock()

	for _, fn := range gained {
		fn()
	}
	return &ident
}

// RegisterResult reports the outcome of a registration attempt. Field names
// the offending form field when the server returned a field-level error.
type RegisterResult struct {
	OK      bool
	Field   string
	Message string
}

// Register creates an account. The first field-level validation error from
// the server is surfaced when present.
func (s *Store) Register(ctx context.Context, in api.RegisterInput) RegisterResult {
	err := s.api.Register(ctx, in)
	if err == nil {
		return RegisterResult{OK: true}
	}

	s.log.Warn("registration failed", "email", in.Email, "err", err)
	if field, msg, ok := api.FirstFieldError(err); ok {
		return RegisterResult{Field: field, Message: msg}
	}
	var ae *api.Error
	if errors.As(err, &ae) && ae.Msg != "" {
		return RegisterResult{Message: ae.Msg}
	}
	return RegisterResult{Message: "Registration failed. Please try again."}
}

// Logout clears the identity and all persisted credentials synchronously.
// Safe to call repeatedly; identity-loss subscribers fire only on the
// authenticated → anonymous transition.
func (s *Store) Logout(ctx context.Context) {
	if err := s.creds.Clear(ctx); err != nil {
		s.log.Error("credential clear failed", "err", err)
	}
	s.dropIdentity()
}

// ForceLogout is invoked by the transport after a failed credential refresh;
// the transport has already wiped the stored credentials.
func (s *Store) ForceLogout() {
	s.dropIdentity()
}

func (s *Store) dropIdentity() {
	s.mu.Lock()
	wasAuthed := s.ident != nil
	s.ident = nil
	lost := append([]func(){}, s.onLoss...)
	s.mu.Unlock()

	if !wasAuthed {
		return
	}
	for _, fn := range lost {
		fn()
	}
}

// OnIdentityGained registers a hook run after a successful login.
func (s *Store) OnIdentityGained(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onGain = append(s.onGain, fn)
}

// OnIdentityLost registers a hook run when the identity goes away.
func (s *Store) OnIdentityLost(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onLoss = append(s.onLoss, fn)
}

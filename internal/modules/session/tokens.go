package session

import (
	"context"

	"github.com/marvakt/ChocoLuxe/internal/api"
)

// tokenSource adapts a CredentialStore to the transport's TokenSource. The
// transport interface carries no context, so storage calls run against the
// background context.
type tokenSource struct {
	creds CredentialStore
}

func (t *tokenSource) Access() string {
	rec, ok, err := t.creds.Load(context.Background())
	if err != nil || !ok {
		return ""
	}
	return rec.Access
}

func (t *tokenSource) Refresh() string {
	rec, ok, err := t.creds.Load(context.Background())
	if err != nil || !ok {
		return ""
	}
	return rec.Refresh
}

func (t *tokenSource) SetAccess(token string) error {
	return t.creds.SetAccess(context.Background(), token)
}

func (t *tokenSource) ClearAll() error {
	return t.creds.Clear(context.Background())
}

var _ api.TokenSource = (*tokenSource)(nil)

// TokenSourceFor exposes a credential store to the HTTP transport. It is
// used during wiring, before the session store itself exists.
func TokenSourceFor(creds CredentialStore) api.TokenSource {
	return &tokenSource{creds: creds}
}

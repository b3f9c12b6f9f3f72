package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"
)

const refreshPath = "/api/auth/token/refresh/"

// AuthTransport attaches the bearer credential to outgoing requests and
// performs one silent refresh-and-retry when the server answers 401. If the
// refresh itself fails, all credentials are cleared together and the
// OnAuthFailure hook fires so the caller can force a logout.
//
// Auth endpoints (login, register, refresh) are passed through untouched and
// never retried.
type AuthTransport struct {
	Base    http.RoundTripper
	Tokens  TokenSource
	BaseURL string // for the refresh call
	Log     *slog.Logger

	mu            sync.Mutex // serializes refresh attempts
	onAuthFailure func()
}

func NewAuthTransport(base http.RoundTripper, tokens TokenSource, baseURL string, log *slog.Logger) *AuthTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &AuthTransport{Base: base, Tokens: tokens, BaseURL: strings.TrimRight(baseURL, "/"), Log: log}
}

// SetOnAuthFailure registers the forced-logout hook. Wired after the session
// store exists since the two reference each other.
func (t *AuthTransport) SetOnAuthFailure(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onAuthFailure = fn
}

func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if strings.HasPrefix(req.URL.Path, "/api/auth/") {
		return t.Base.RoundTrip(req)
	}

	access := t.Tokens.Access()
	if access != "" && tokenExpired(access, time.Now()) {
		if refreshed, err := t.refresh(); err == nil {
			access = refreshed
		}
		// on error fall through with the stale token; the 401 path below
		// handles the rest
	}

	resp, err := t.Base.RoundTrip(withBearer(req, access))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized || t.Tokens.Refresh() == "" {
		return resp, nil
	}

	refreshed, refreshErr := t.refresh()
	if refreshErr != nil {
		if clearErr := t.Tokens.ClearAll(); clearErr != nil && t.Log != nil {
			t.Log.Error("clearing credentials failed", "err", clearErr)
		}
		t.mu.Lock()
		fn := t.onAuthFailure
		t.mu.Unlock()
		if fn != nil {
			fn()
		}
		return resp, nil
	}

	retry, err := rewindRequest(req)
	if err != nil {
		return resp, nil
	}
	resp.Body.Close()
	return t.Base.RoundTrip(withBearer(retry, refreshed))
}

func (t *AuthTransport) refresh() (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	refresh := t.Tokens.Refresh()
	if refresh == "" {
		return "", fmt.Errorf("no refresh token")
	}

	body, _ := json.Marshal(map[string]string{"refresh": refresh})
	req, err := http.NewRequest(http.MethodPost, t.BaseURL+refreshPath, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.Base.RoundTrip(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("refresh rejected: %d", resp.StatusCode)
	}

	var out refreshResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.Access == "" {
		return "", fmt.Errorf("refresh response missing access token")
	}
	if err := t.Tokens.SetAccess(out.Access); err != nil {
		return "", err
	}
	if t.Log != nil {
		t.Log.Debug("access token refreshed")
	}
	return out.Access, nil
}

func withBearer(req *http.Request, access string) *http.Request {
	out := req.Clone(req.Context())
	if access != "" {
		out.Header.Set("Authorization", "Bearer "+access)
	}
	return out
}

// rewindRequest rebuilds the request body for the single retry. Requests
// built by the client use bytes readers, so GetBody is always present when
// there is a body.
func rewindRequest(req *http.Request) (*http.Request, error) {
	out := req.Clone(req.Context())
	if req.Body == nil || req.Body == http.NoBody {
		return out, nil
	}
	if req.GetBody == nil {
		return nil, fmt.Errorf("request body cannot be replayed")
	}
	body, err := req.GetBody()
	if err != nil {
		return nil, err
	}
	out.Body = body
	return out, nil
}

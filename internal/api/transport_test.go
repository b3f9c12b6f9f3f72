package api

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memTokens struct {
	mu      sync.Mutex
	access  string
	refresh string
	cleared bool
}

func (m *memTokens) Access() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.access
}

func (m *memTokens) Refresh() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.refresh
}

func (m *memTokens) SetAccess(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.access = token
	return nil
}

func (m *memTokens) ClearAll() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.access, m.refresh = "", ""
	m.cleared = true
	return nil
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()})
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestAuthTransport_AttachesBearer(t *testing.T) {
	var got string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	tokens := &memTokens{access: signedToken(t, time.Now().Add(time.Hour)), refresh: "r1"}
	tr := NewAuthTransport(nil, tokens, ts.URL, nil)
	client := &http.Client{Transport: tr}

	resp, err := client.Get(ts.URL + "/api/products/")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "Bearer "+tokens.Access(), got)
}

func TestAuthTransport_AuthPathsPassThrough(t *testing.T) {
	var got string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	tokens := &memTokens{access: signedToken(t, time.Now().Add(time.Hour))}
	client := &http.Client{Transport: NewAuthTransport(nil, tokens, ts.URL, nil)}

	resp, err := client.Post(ts.URL+"/api/auth/login/", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Empty(t, got)
}

func TestAuthTransport_RefreshAndRetryOn401(t *testing.T) {
	var mu sync.Mutex
	var resourceCalls, refreshCalls int
	var retryAuth string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		switch r.URL.Path {
		case "/api/auth/token/refresh/":
			refreshCalls++
			w.Write([]byte(`{"access":"` + freshAccess + `"}`))
		case "/api/cart/":
			resourceCalls++
			if resourceCalls == 1 {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			retryAuth = r.Header.Get("Authorization")
			w.Write([]byte(`[]`))
		}
	}))
	defer ts.Close()

	tokens := &memTokens{access: signedToken(t, time.Now().Add(time.Hour)), refresh: "r1"}
	client := &http.Client{Transport: NewAuthTransport(nil, tokens, ts.URL, nil)}

	resp, err := client.Get(ts.URL + "/api/cart/")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, resourceCalls)
	assert.Equal(t, 1, refreshCalls)
	assert.Equal(t, "Bearer "+freshAccess, retryAuth)
	assert.Equal(t, freshAccess, tokens.Access())
}

const freshAccess = "fresh-access-token"

func TestAuthTransport_RefreshFailureClearsEverything(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	tokens := &memTokens{access: signedToken(t, time.Now().Add(time.Hour)), refresh: "r1"}
	tr := NewAuthTransport(nil, tokens, ts.URL, nil)
	var forced bool
	tr.SetOnAuthFailure(func() { forced = true })
	client := &http.Client{Transport: tr}

	resp, err := client.Get(ts.URL + "/api/cart/")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.True(t, tokens.cleared, "expected ClearAll")
	assert.Empty(t, tokens.Access())
	assert.Empty(t, tokens.Refresh())
	assert.True(t, forced, "expected OnAuthFailure hook")
}

func TestAuthTransport_ProactiveRefreshNearExpiry(t *testing.T) {
	var mu sync.Mutex
	var refreshCalls int
	var resourceAuth string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		switch r.URL.Path {
		case "/api/auth/token/refresh/":
			refreshCalls++
			w.Write([]byte(`{"access":"` + freshAccess + `"}`))
		default:
			resourceAuth = r.Header.Get("Authorization")
			w.Write([]byte(`[]`))
		}
	}))
	defer ts.Close()

	// expires inside the leeway window
	tokens := &memTokens{access: signedToken(t, time.Now().Add(5*time.Second)), refresh: "r1"}
	client := &http.Client{Transport: NewAuthTransport(nil, tokens, ts.URL, nil)}

	resp, err := client.Get(ts.URL + "/api/products/")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, 1, refreshCalls)
	assert.Equal(t, "Bearer "+freshAccess, resourceAuth)
}

func TestTokenExpired(t *testing.T) {
	now := time.Now()

	assert.True(t, tokenExpired(signedToken(t, now.Add(-time.Minute)), now))
	assert.True(t, tokenExpired(signedToken(t, now.Add(10*time.Second)), now), "inside leeway")
	assert.False(t, tokenExpired(signedToken(t, now.Add(time.Hour)), now))
	assert.False(t, tokenExpired("", now))
	assert.False(t, tokenExpired("not-a-jwt", now), "unparsable tokens go to the server as-is")
}

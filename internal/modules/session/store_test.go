package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marvakt/ChocoLuxe/internal/api"
)

const loginOK = `{
	"access": "a1", "refresh": "r1",
	"user": {"id": 7, "username": "cocoa", "email": "cocoa@example.com", "role": "user"}
}`

func newTestStore(t *testing.T, handler http.HandlerFunc) (*Store, *MemoryCreds, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	creds := NewMemoryCreds()
	client := api.New(ts.URL, ts.Client(), nil)
	return New(client, creds, nil), creds, ts
}

func TestLogin_PersistsTrioTogether(t *testing.T) {
	store, creds, _ := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login/", r.URL.Path)
		w.Write([]byte(loginOK))
	})

	ident := store.Login(context.Background(), "cocoa@example.com", "secret")
	require.NotNil(t, ident)
	assert.Equal(t, "cocoa", ident.Username)

	cur, ok := store.Current()
	require.True(t, ok)
	assert.Equal(t, int64(7), cur.ID)

	rec, set, err := creds.Load(context.Background())
	require.NoError(t, err)
	require.True(t, set)
	assert.Equal(t, "a1", rec.Access)
	assert.Equal(t, "r1", rec.Refresh)
	assert.Contains(t, rec.Identity, `"cocoa"`)
}

func TestLogin_FailureLeavesPriorStateUntouched(t *testing.T) {
	calls := 0
	store, creds, _ := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.Write([]byte(loginOK))
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid credentials"}`))
	})

	require.NotNil(t, store.Login(context.Background(), "cocoa@example.com", "secret"))

	got := store.Login(context.Background(), "cocoa@example.com", "wrong")
	assert.Nil(t, got)

	// old identity and credentials survive the failed attempt
	cur, ok := store.Current()
	require.True(t, ok)
	assert.Equal(t, "cocoa", cur.Username)
	rec, set, _ := creds.Load(context.Background())
	require.True(t, set)
	assert.Equal(t, "a1", rec.Access)
}

func TestRehydrate_MalformedSnapshotStaysAnonymous(t *testing.T) {
	store, creds, _ := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {})

	require.NoError(t, creds.Save(context.Background(), Record{
		Access: "a1", Refresh: "r1", Identity: `{"id": not-json`,
	}))

	store.Rehydrate(context.Background())
	_, ok := store.Current()
	assert.False(t, ok)
}

func TestRehydrate_RestoresIdentity(t *testing.T) {
	store, creds, _ := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {})

	require.NoError(t, creds.Save(context.Background(), Record{
		Access: "a1", Refresh: "r1",
		Identity: `{"id":7,"username":"cocoa","email":"cocoa@example.com","role":"admin"}`,
	}))

	store.Rehydrate(context.Background())
	cur, ok := store.Current()
	require.True(t, ok)
	assert.True(t, cur.IsAdmin())
}

func TestLogout_IsIdempotentAndFiresLossOnce(t *testing.T) {
	store, creds, _ := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(loginOK))
	})

	losses := 0
	store.OnIdentityLost(func() { losses++ })

	require.NotNil(t, store.Login(context.Background(), "cocoa@example.com", "secret"))

	store.Logout(context.Background())
	store.Logout(context.Background())

	_, ok := store.Current()
	assert.False(t, ok)
	assert.Equal(t, 1, losses)

	_, set, _ := creds.Load(context.Background())
	assert.False(t, set)
}

func TestLogin_RunsGainHooks(t *testing.T) {
	store, _, _ := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(loginOK))
	})

	gains := 0
	store.OnIdentityGained(func() { gains++ })

	require.NotNil(t, store.Login(context.Background(), "cocoa@example.com", "secret"))
	assert.Equal(t, 1, gains)
}

func TestForceLogout_DropsIdentityOnly(t *testing.T) {
	store, _, _ := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(loginOK))
	})

	require.NotNil(t, store.Login(context.Background(), "cocoa@example.com", "secret"))

	losses := 0
	store.OnIdentityLost(func() { losses++ })

	store.ForceLogout()
	_, ok := store.Current()
	assert.False(t, ok)
	assert.Equal(t, 1, losses)
}

func TestRegister_SurfacesFirstFieldError(t *testing.T) {
	store, _, _ := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"email":["user with this email already exists."]}`))
	})

	res := store.Register(context.Background(), api.RegisterInput{
		Username: "cocoa", Email: "cocoa@example.com", Password: "secret123",
	})
	assert.False(t, res.OK)
	assert.Equal(t, "email", res.Field)
	assert.Equal(t, "user with this email already exists.", res.Message)
}

func TestRegister_Success(t *testing.T) {
	store, _, _ := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"message":"registered"}`))
	})

	res := store.Register(context.Background(), api.RegisterInput{
		Username: "cocoa", Email: "cocoa@example.com", Password: "secret123",
	})
	assert.True(t, res.OK)
}

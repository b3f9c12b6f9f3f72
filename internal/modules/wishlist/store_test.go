package wishlist

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marvakt/ChocoLuxe/internal/api"
	"github.com/marvakt/ChocoLuxe/internal/modules/session"
)

type fakeBackend struct {
	mu           sync.Mutex
	listBody     string
	toggleStatus string
}

func (f *fakeBackend) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		list, status := f.listBody, f.toggleStatus
		f.mu.Unlock()
		switch r.URL.Path {
		case "/api/auth/login/":
			w.Write([]byte(`{"access":"a1","refresh":"r1","user":{"id":1,"username":"cocoa","email":"c@example.com","role":"user"}}`))
		case "/api/wishlist/":
			w.Write([]byte(list))
		case "/api/wishlist/toggle/":
			w.Write([]byte(`{"status":"` + status + `"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func newTestWishlist(t *testing.T, backend *fakeBackend) (*Store, *session.Store) {
	t.Helper()
	if backend.listBody == "" {
		backend.listBody = `{"items":[]}`
	}
	ts := httptest.NewServer(backend.handler())
	t.Cleanup(ts.Close)

	client := api.New(ts.URL, ts.Client(), nil)
	sess := session.New(client, session.NewMemoryCreds(), nil)
	return New(client, sess, nil), sess
}

func TestToggle_GuestRejectedLocally(t *testing.T) {
	store, _ := newTestWishlist(t, &fakeBackend{})

	_, err := store.Toggle(context.Background(), 1)
	assert.ErrorIs(t, err, ErrLoginRequired)
}

func TestToggle_AddedThenRemoved(t *testing.T) {
	backend := &fakeBackend{toggleStatus: "added"}
	store, sess := newTestWishlist(t, backend)
	require.NotNil(t, sess.Login(context.Background(), "c@example.com", "pw"))

	backend.mu.Lock()
	backend.listBody = `{"items":[{"id":20,"product":{"id":3,"name":"White Raspberry Bar","price":"229.00","category":"Bars"}}]}`
	backend.mu.Unlock()

	status, err := store.Toggle(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, api.ToggleAdded, status)
	assert.True(t, store.Has(3), "cache rebuilt from the refetch")

	backend.mu.Lock()
	backend.toggleStatus = "removed"
	backend.listBody = `{"items":[]}`
	backend.mu.Unlock()

	status, err = store.Toggle(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, api.ToggleRemoved, status)
	assert.False(t, store.Has(3), "removed item is gone after the refetch")
	assert.Empty(t, store.Lines())
}

func TestIdentityTransitions(t *testing.T) {
	backend := &fakeBackend{
		listBody: `{"items":[{"id":20,"product":{"id":3,"name":"White Raspberry Bar","price":"229.00","category":"Bars"}}]}`,
	}
	store, sess := newTestWishlist(t, backend)

	require.NotNil(t, sess.Login(context.Background(), "c@example.com", "pw"))
	assert.True(t, store.Has(3), "login triggers a fetch")

	sess.Logout(context.Background())
	assert.False(t, store.Has(3), "logout clears the cache")
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marvakt/ChocoLuxe/internal/api"
	"github.com/marvakt/ChocoLuxe/internal/http/appscope"
	"github.com/marvakt/ChocoLuxe/internal/http/flash"
	"github.com/marvakt/ChocoLuxe/internal/http/middleware"
	"github.com/marvakt/ChocoLuxe/internal/modules/cart"
	"github.com/marvakt/ChocoLuxe/internal/modules/checkout"
	"github.com/marvakt/ChocoLuxe/internal/modules/session"
	"github.com/marvakt/ChocoLuxe/pkg/view"
)

// checkoutScope wires a logged-in session, cart and checkout service against
// a backend whose cart endpoint can be switched to failing mid-test.
type checkoutScope struct {
	scope *appscope.Scope

	mu       sync.Mutex
	cartFail bool
}

func (f *checkoutScope) failCart() {
	f.mu.Lock()
	f.cartFail = true
	f.mu.Unlock()
}

func newCheckoutScope(t *testing.T) *checkoutScope {
	t.Helper()
	f := &checkoutScope{}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login/":
			w.Write([]byte(`{"access":"a1","refresh":"r1","user":{"id":1,"username":"cocoa","email":"c@example.com","role":"user"}}`))
		case "/api/cart/":
			f.mu.Lock()
			fail := f.cartFail
			f.mu.Unlock()
			if fail {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"error":"boom"}`))
				return
			}
			w.Write([]byte(`{"items":[{"id":10,"product":{"id":1,"name":"Dark Bar","price":"199.00","category":"Bars"},"quantity":2}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(ts.Close)

	client := api.New(ts.URL, ts.Client(), nil)
	sess := session.New(client, session.NewMemoryCreds(), nil)
	cartStore := cart.New(client, sess, nil)

	require.NotNil(t, sess.Login(context.Background(), "c@example.com", "pw"))

	f.scope = &appscope.Scope{
		API:      client,
		Session:  sess,
		Cart:     cartStore,
		Checkout: checkout.NewService(client, cartStore, nil),
	}
	return f
}

func checkoutGet(t *testing.T, sc *appscope.Scope) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/checkout", nil)
	middleware.SetScope(c, sc)

	h := NewCheckoutHandler(flash.NewCodec([]byte("test-secret"), "flash", false))
	h.Get(c)
	return w
}

func TestCheckoutGet_RendersCart(t *testing.T) {
	f := newCheckoutScope(t)

	w := checkoutGet(t, f.scope)
	require.Equal(t, http.StatusOK, w.Code)

	var page view.CheckoutPage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Len(t, page.Items, 1)
	assert.Equal(t, "₹398.00", page.Total)
	assert.Empty(t, page.AlertError)
}

func TestCheckoutGet_FetchFailureIsVisible(t *testing.T) {
	f := newCheckoutScope(t)
	f.failCart()

	w := checkoutGet(t, f.scope)
	require.Equal(t, http.StatusBadGateway, w.Code)

	var page view.CheckoutPage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Len(t, page.Items, 1, "cached lines still render")
	assert.NotEmpty(t, page.AlertError)
	assert.True(t, page.Retry)
}

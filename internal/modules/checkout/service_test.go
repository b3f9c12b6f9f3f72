package checkout

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marvakt/ChocoLuxe/internal/api"
	"github.com/marvakt/ChocoLuxe/internal/modules/cart"
	"github.com/marvakt/ChocoLuxe/internal/modules/session"
)

func price(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

func TestTotal_SumsPriceTimesQuantity(t *testing.T) {
	lines := []api.CartLine{
		{Product: api.Product{Price: price("199.00")}, Quantity: 2},
		{Product: api.Product{Price: price("499.00")}, Quantity: 1},
	}
	assert.Equal(t, "897", Total(lines).String())
	assert.True(t, Total(nil).IsZero())
}

func TestTotal_IsIdempotent(t *testing.T) {
	lines := []api.CartLine{{Product: api.Product{Price: price("229.00")}, Quantity: 3}}
	first := Total(lines)
	second := Total(lines)
	assert.True(t, first.Equal(second))
}

type checkoutBackend struct {
	mu       sync.Mutex
	cartBody string
	orders   int
}

func (b *checkoutBackend) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login/":
			w.Write([]byte(`{"access":"a1","refresh":"r1","user":{"id":1,"username":"cocoa","email":"c@example.com","role":"user"}}`))
		case "/api/cart/":
			b.mu.Lock()
			body := b.cartBody
			b.mu.Unlock()
			w.Write([]byte(body))
		case "/api/orders/create/":
			b.mu.Lock()
			b.orders++
			b.cartBody = `{"items":[]}`
			b.mu.Unlock()
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"message":"order placed"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func newTestCheckout(t *testing.T, backend *checkoutBackend) (*Service, *cart.Store) {
	t.Helper()
	ts := httptest.NewServer(backend.handler())
	t.Cleanup(ts.Close)

	client := api.New(ts.URL, ts.Client(), nil)
	sess := session.New(client, session.NewMemoryCreds(), nil)
	cartStore := cart.New(client, sess, nil)
	require.NotNil(t, sess.Login(context.Background(), "c@example.com", "pw"))
	return NewService(client, cartStore, nil), cartStore
}

func validDetails() Details {
	return Details{Name: "Cocoa", Address: "12 Cacao Street", Phone: "5551234", Payment: "cod"}
}

func TestValidate_FixedOrder(t *testing.T) {
	backend := &checkoutBackend{cartBody: `{"items":[]}`}
	svc, _ := newTestCheckout(t, backend)

	d := Details{}
	assert.ErrorIs(t, svc.Validate(d), ErrMissingName)

	d.Name = "Cocoa"
	assert.ErrorIs(t, svc.Validate(d), ErrMissingAddress)

	d.Address = "12 Cacao Street"
	assert.ErrorIs(t, svc.Validate(d), ErrMissingPhone)

	d.Phone = "5551234"
	assert.ErrorIs(t, svc.Validate(d), ErrInvalidPayment)

	d.Payment = "wire"
	assert.ErrorIs(t, svc.Validate(d), ErrInvalidPayment)

	d.Payment = "cod"
	assert.ErrorIs(t, svc.Validate(d), ErrEmptyCart)
}

func TestValidate_WhitespaceOnlyFieldsRejected(t *testing.T) {
	backend := &checkoutBackend{cartBody: `{"items":[]}`}
	svc, _ := newTestCheckout(t, backend)

	d := validDetails()
	d.Address = "   "
	assert.ErrorIs(t, svc.Validate(d), ErrMissingAddress)
}

func TestPlaceOrder_CreatesThenRefetchesCart(t *testing.T) {
	backend := &checkoutBackend{
		cartBody: `{"items":[{"id":10,"product":{"id":1,"name":"Dark Bar","price":"199.00","category":"Bars"},"quantity":1}]}`,
	}
	svc, cartStore := newTestCheckout(t, backend)
	require.Equal(t, 1, cartStore.Count())

	require.NoError(t, svc.PlaceOrder(context.Background(), validDetails()))

	assert.Equal(t, 1, backend.orders)
	assert.Zero(t, cartStore.Count(), "server emptied the cart; refetch reflects it")
}

func TestPlaceOrder_EmptyCartNeverReachesServer(t *testing.T) {
	backend := &checkoutBackend{cartBody: `{"items":[]}`}
	svc, _ := newTestCheckout(t, backend)

	err := svc.PlaceOrder(context.Background(), validDetails())
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Zero(t, backend.orders)
}

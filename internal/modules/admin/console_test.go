package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marvakt/ChocoLuxe/internal/api"
)

type adminBackend struct {
	mu          sync.Mutex
	ordersBody  string
	usersBody   string
	failRefetch bool
	lastUpdate  map[string]any
}

func (b *adminBackend) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		orders, users, fail := b.ordersBody, b.usersBody, b.failRefetch
		b.mu.Unlock()
		switch {
		case r.URL.Path == "/api/admin/orders/" && r.Method == http.MethodGet:
			if fail {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			w.Write([]byte(orders))
		case r.URL.Path == "/api/admin/users/" && r.Method == http.MethodGet:
			if fail {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			w.Write([]byte(users))
		case r.URL.Path == "/api/admin/users/2/" && r.Method == http.MethodDelete:
			w.Write([]byte(`{"message":"deleted"}`))
		case r.URL.Path == "/api/admin/orders/5/" && r.Method == http.MethodPut:
			var in map[string]any
			json.NewDecoder(r.Body).Decode(&in)
			b.mu.Lock()
			b.lastUpdate = in
			b.mu.Unlock()
			w.Write([]byte(`{"message":"updated"}`))
		case r.URL.Path == "/api/admin/dashboard/":
			w.Write([]byte(`{"totalRevenue":"1197.00","totalOrders":3,"totalUsers":2,"totalProducts":9,"orderStatus":{"pending":2,"shipped":1}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

const twoUserOrders = `{"orders":[
	{"id":5,"user_id":2,"items":[],"total":"499.00","status":"pending","payment_method":"cod","shipping_address":"a","phone_number":"1","created_at":"2026-08-30T10:00:00Z"},
	{"id":6,"user_id":1,"items":[],"total":"199.00","status":"shipped","payment_method":"upi","shipping_address":"b","phone_number":"2","created_at":"2026-08-29T10:00:00Z"},
	{"id":7,"user_id":2,"items":[],"total":"499.00","status":"pending","payment_method":"cod","shipping_address":"c","phone_number":"3","created_at":"2026-08-29T12:00:00Z"}
]}`

const twoUsers = `{"users":[
	{"id":1,"username":"cocoa","email":"cocoa@example.com","role":"user"},
	{"id":2,"username":"praline","email":"praline@example.com","role":"user"}
]}`

func newTestConsole(t *testing.T, backend *adminBackend) *Console {
	t.Helper()
	if backend.ordersBody == "" {
		backend.ordersBody = twoUserOrders
	}
	if backend.usersBody == "" {
		backend.usersBody = twoUsers
	}
	ts := httptest.NewServer(backend.handler())
	t.Cleanup(ts.Close)

	client := api.New(ts.URL, ts.Client(), nil)
	return NewConsole(client, nil, nil)
}

func TestDeleteUser_PrunesCachesBeforeRefetch(t *testing.T) {
	backend := &adminBackend{}
	console := newTestConsole(t, backend)

	require.NoError(t, console.RefreshOrders(context.Background()))
	require.NoError(t, console.RefreshUsers(context.Background()))
	require.Len(t, console.Orders(), 3)

	// the refetches after the delete fail; the local prune must stand
	backend.mu.Lock()
	backend.failRefetch = true
	backend.mu.Unlock()

	require.NoError(t, console.DeleteUser(context.Background(), 2))

	for _, o := range console.Orders() {
		assert.NotEqual(t, int64(2), o.UserID, "deleted user's orders must be pruned")
	}
	assert.Len(t, console.Orders(), 1)
	assert.Len(t, console.Users(), 1)
	assert.Empty(t, console.OrdersForUser(2))
}

func TestUpdateOrder_ValidatesEnums(t *testing.T) {
	console := newTestConsole(t, &adminBackend{})

	assert.ErrorIs(t, console.UpdateOrder(context.Background(), 5, "lost", "cod"), ErrInvalidStatus)
	assert.ErrorIs(t, console.UpdateOrder(context.Background(), 5, "shipped", "crypto"), ErrInvalidPayment)
}

func TestUpdateOrder_SendsTwoFieldPayload(t *testing.T) {
	backend := &adminBackend{}
	console := newTestConsole(t, backend)

	require.NoError(t, console.UpdateOrder(context.Background(), 5, "shipped", "card"))

	backend.mu.Lock()
	defer backend.mu.Unlock()
	assert.Equal(t, "shipped", backend.lastUpdate["status"])
	assert.Equal(t, "card", backend.lastUpdate["payment_method"])
}

func TestDashboard_DerivesRecentAndDailySales(t *testing.T) {
	console := newTestConsole(t, &adminBackend{})

	ov, err := console.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, ov.TotalOrders)
	assert.Equal(t, "1197", ov.TotalRevenue.String())
	assert.Len(t, ov.RecentOrders, 3)

	require.Len(t, ov.SalesByDay, 2)
	assert.Equal(t, "2026-08-29", ov.SalesByDay[0].Date)
	assert.Equal(t, "698", ov.SalesByDay[0].Total.String())
	assert.Equal(t, "2026-08-30", ov.SalesByDay[1].Date)
	assert.Equal(t, "499", ov.SalesByDay[1].Total.String())
}

func TestOrdersForUser(t *testing.T) {
	console := newTestConsole(t, &adminBackend{})
	require.NoError(t, console.RefreshOrders(context.Background()))

	assert.Len(t, console.OrdersForUser(2), 2)
	assert.Len(t, console.OrdersForUser(1), 1)
	assert.Empty(t, console.OrdersForUser(99))
}

package appscope

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/marvakt/ChocoLuxe/internal/api"
	"github.com/marvakt/ChocoLuxe/internal/modules/admin"
	"github.com/marvakt/ChocoLuxe/internal/modules/cart"
	"github.com/marvakt/ChocoLuxe/internal/modules/catalog"
	"github.com/marvakt/ChocoLuxe/internal/modules/checkout"
	"github.com/marvakt/ChocoLuxe/internal/modules/orders"
	"github.com/marvakt/ChocoLuxe/internal/modules/session"
	"github.com/marvakt/ChocoLuxe/internal/modules/wishlist"
	"github.com/marvakt/ChocoLuxe/internal/storage"
)

// Scope bundles the per-browser-session state: one API client whose
// transport carries that session's tokens, plus the stores built on it.
type Scope struct {
	API      *api.Client
	Session  *session.Store
	Cart     *cart.Store
	Wishlist *wishlist.Store
	Checkout *checkout.Service
	Orders   *orders.Service
	Admin    *admin.Console
	Catalog  *catalog.View
}

// Deps holds everything needed to build a Scope for a session ID.
type Deps struct {
	DB         *gorm.DB
	APIBaseURL string
	SessionTTL time.Duration
	Images     storage.Storage
	Log        *slog.Logger
}

// Build wires a complete Scope for the given session ID. The token
// transport, stores, and identity hooks all share the same credential
// row, so a refresh failure anywhere logs the whole session out.
func Build(d Deps, sessionID string) *Scope {
	creds := session.NewDBCreds(d.DB, sessionID, d.SessionTTL)
	tokens := session.TokenSourceFor(creds)

	transport := api.NewAuthTransport(http.DefaultTransport, tokens, d.APIBaseURL, d.Log)
	client := api.New(d.APIBaseURL, &http.Client{
		Transport: transport,
		Timeout:   30 * time.Second,
	}, d.Log)

	sess := session.New(client, creds, d.Log)
	transport.SetOnAuthFailure(sess.ForceLogout)

	sc := &Scope{
		API:      client,
		Session:  sess,
		Cart:     cart.New(client, sess, d.Log),
		Wishlist: wishlist.New(client, sess, d.Log),
		Orders:   orders.NewService(client, d.Log),
		Admin:    admin.NewConsole(client, d.Images, d.Log),
		Catalog:  catalog.NewView(catalog.DefaultPageSize),
	}
	sc.Checkout = checkout.NewService(client, sc.Cart, d.Log)

	sess.Rehydrate(context.Background())
	return sc
}

package cart

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/marvakt/ChocoLuxe/internal/api"
	"github.com/marvakt/ChocoLuxe/internal/modules/session"
)

// Store caches the current user's cart lines. The cache is never the source
// of truth: every mutation round-trips to the server and then replaces the
// whole collection with a refetch. No local merge, no optimistic edit.
//
// Rapid repeated mutations are not de-duplicated; the last completed refetch
// wins. That matches the behavior this store replaces.
type Store struct {
	api  *api.Client
	sess *session.Store
	log  *slog.Logger

	mu    sync.Mutex
	lines []api.CartLine
}

func New(client *api.Client, sess *session.Store, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	s := &Store{api: client, sess: sess, log: log}
	sess.OnIdentityGained(func() {
		if err := s.Fetch(context.Background()); err != nil {
			log.Warn("cart fetch after login failed", "err", err)
		}
	})
	sess.OnIdentityLost(s.clear)
	return s
}

// Fetch replaces the cached lines with the server's current cart. Without
// an identity it is a no-op.
func (s *Store) Fetch(ctx context.Context) error {
	if _, ok := s.sess.Current(); !ok {
		return nil
	}

	lines, err := s.api.Cart(ctx)
	if err != nil {
		s.log.Warn("cart fetch failed", "err", err)
		return err
	}

	s.mu.Lock()
	s.lines = lines
	s.mu.Unlock()
	return nil
}

// Add puts a product in the cart and refetches. Requires an identity; a
// duplicate item comes back as ErrAlreadyInCart so the caller can phrase it
// differently from a generic failure.
func (s *Store) Add(ctx context.Context, productID int64) error {
	if _, ok := s.sess.Current(); !ok {
		return ErrLoginRequired
	}

	if err := s.api.AddToCart(ctx, productID); err != nil {
		if api.IsConflict(err) {
			return ErrAlreadyInCart
		}
		return fmt.Errorf("add to cart: %w", err)
	}

	// Refetch is unconditional once the mutation succeeded; a failed refetch
	// is logged and the mutation still counts.
	if err := s.Fetch(ctx); err != nil {
		s.log.Warn("cart refetch after add failed", "err", err)
	}
	return nil
}

// Remove deletes a line by product id and refetches.
func (s *Store) Remove(ctx context.Context, productID int64) error {
	if _, ok := s.sess.Current(); !ok {
		return ErrLoginRequired
	}

	if err := s.api.RemoveFromCart(ctx, productID); err != nil {
		return fmt.Errorf("remove from cart: %w", err)
	}
	if err := s.Fetch(ctx); err != nil {
		s.log.Warn("cart refetch after remove failed", "err", err)
	}
	return nil
}

// UpdateQty changes a line's quantity. Quantities below 1 are rejected
// before any network call. Unlike Add/Remove, a server failure here is
// returned so the caller can clear its per-line updating indicator.
func (s *Store) UpdateQty(ctx context.Context, productID int64, qty int) error {
	if qty < 1 {
		return ErrQtyTooLow
	}
	if _, ok := s.sess.Current(); !ok {
		return ErrLoginRequired
	}

	if err := s.api.UpdateCartItem(ctx, productID, qty); err != nil {
		return fmt.Errorf("update quantity: %w", err)
	}
	if err := s.Fetch(ctx); err != nil {
		s.log.Warn("cart refetch after update failed", "err", err)
	}
	return nil
}

// Lines returns a copy of the cached cart.
func (s *Store) Lines() []api.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]api.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Count is the total quantity across lines, for the nav badge.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, l := range s.lines {
		n += l.Quantity
	}
	return n
}

// Subtotal sums price × quantity over the cached lines.
func (s *Store) Subtotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := decimal.Zero
	for _, l := range s.lines {
		total = total.Add(l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}

func (s *Store) clear() {
	s.mu.Lock()
	s.lines = nil
	s.mu.Unlock()
}

package wishlist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/marvakt/ChocoLuxe/internal/api"
	"github.com/marvakt/ChocoLuxe/internal/modules/session"
)

// ErrLoginRequired is returned before any network call when the session has
// no identity.
var ErrLoginRequired = errors.New("please login to use the wishlist")

// Store caches the current user's wishlist. It follows the cart's
// replacement discipline: the server decides membership, the cache is
// rebuilt from a refetch, never inferred from a toggle outcome.
type Store struct {
	api  *api.Client
	sess *session.Store
	log  *slog.Logger

	mu    sync.Mutex
	lines []api.WishlistLine
}

func New(client *api.Client, sess *session.Store, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	s := &Store{api: client, sess: sess, log: log}
	sess.OnIdentityGained(func() {
		if err := s.Fetch(context.Background()); err != nil {
			log.Warn("wishlist fetch after login failed", "err", err)
		}
	})
	sess.OnIdentityLost(s.clear)
	return s
}

// Fetch replaces the cached wishlist with the server's. No-op without an
// identity.
func (s *Store) Fetch(ctx context.Context) error {
	if _, ok := s.sess.Current(); !ok {
		return nil
	}

	lines, err := s.api.Wishlist(ctx)
	if err != nil {
		s.log.Warn("wishlist fetch failed", "err", err)
		return err
	}

	s.mu.Lock()
	s.lines = lines
	s.mu.Unlock()
	return nil
}

// Toggle flips a product's wishlist membership. The returned status is for
// the user-facing message only; the cache comes from the refetch.
func (s *Store) Toggle(ctx context.Context, productID int64) (api.ToggleStatus, error) {
	if _, ok := s.sess.Current(); !ok {
		return "", ErrLoginRequired
	}

	status, err := s.api.ToggleWishlist(ctx, productID)
	if err != nil {
		return "", fmt.Errorf("toggle wishlist: %w", err)
	}

	if err := s.Fetch(ctx); err != nil {
		s.log.Warn("wishlist refetch after toggle failed", "err", err)
	}
	return status, nil
}

// Lines returns a copy of the cached wishlist.
func (s *Store) Lines() []api.WishlistLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]api.WishlistLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Has reports whether the product is in the cached wishlist.
func (s *Store) Has(productID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.lines {
		if l.Product.ID == productID {
			return true
		}
	}
	return false
}

func (s *Store) clear() {
	s.mu.Lock()
	s.lines = nil
	s.mu.Unlock()
}

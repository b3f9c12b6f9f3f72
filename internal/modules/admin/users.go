package admin

import (
	"context"
	"fmt"

	"github.com/marvakt/ChocoLuxe/internal/api"
)

// DeleteUser removes a user. The server cascades the user's orders, so the
// cached order list is pruned by user id immediately, before any refetch,
// to keep the orders surface consistent with what the server is about to
// report. The prune stands even if the follow-up refetches fail.
func (c *Console) DeleteUser(ctx context.Context, userID int64) error {
	if err := c.api.AdminDeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	c.mu.Lock()
	kept := c.orders[:0]
	for _, o := range c.orders {
		if o.UserID != userID {
			kept = append(kept, o)
		}
	}
	c.orders = kept

	users := c.users[:0]
	for _, u := range c.users {
		if u.ID != userID {
			users = append(users, u)
		}
	}
	c.users = users
	c.mu.Unlock()

	if err := c.RefreshUsers(ctx); err != nil {
		c.log.Warn("user refetch after delete failed", "err", err)
	}
	if err := c.RefreshOrders(ctx); err != nil {
		c.log.Warn("order refetch after user delete failed", "err", err)
	}
	return nil
}

// OrdersForUser filters the cached orders by owner, for the per-user
// order count on the users surface.
func (c *Console) OrdersForUser(userID int64) []api.Order {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []api.Order
	for _, o := range c.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}

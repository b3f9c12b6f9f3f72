package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/marvakt/ChocoLuxe/internal/api"
)

var (
	ErrInvalidStatus  = errors.New("invalid order status")
	ErrInvalidPayment = errors.New("invalid payment method")
)

// OrderStatuses are the values the status field accepts.
var OrderStatuses = []string{"pending", "shipped", "delivered", "cancelled"}

// PaymentMethods are the values the payment_method field accepts.
var PaymentMethods = []string{"cod", "upi", "card"}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// UpdateOrder submits the two-field partial update (status, payment method)
// and refetches the order collection.
func (c *Console) UpdateOrder(ctx context.Context, id int64, status, payment string) error {
	if !contains(OrderStatuses, status) {
		return ErrInvalidStatus
	}
	if !contains(PaymentMethods, payment) {
		return ErrInvalidPayment
	}

	in := api.OrderUpdate{Status: status, PaymentMethod: payment}
	if err := c.api.AdminUpdateOrder(ctx, id, in); err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if err := c.RefreshOrders(ctx); err != nil {
		c.log.Warn("order refetch after update failed", "err", err)
	}
	return nil
}

func (c *Console) DeleteOrder(ctx context.Context, id int64) error {
	if err := c.api.AdminDeleteOrder(ctx, id); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if err := c.RefreshOrders(ctx); err != nil {
		c.log.Warn("order refetch after delete failed", "err", err)
	}
	return nil
}

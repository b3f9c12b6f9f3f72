package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/marvakt/ChocoLuxe/internal/shared/apperr"
)

func (c *Client) Cart(ctx context.Context) ([]CartLine, error) {
	raw, err := c.doRaw(ctx, "GET", "/api/cart/", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[CartLine](raw, "items")
}

// AddToCart puts one unit of a product in the cart. The server reports a
// duplicate item with a plain 400, so on this endpoint a 400 is classified
// as a conflict rather than a validation failure.
func (c *Client) AddToCart(ctx context.Context, productID int64) error {
	in := map[string]int64{"product_id": productID}
	err := c.do(ctx, "POST", "/api/cart/add/", in, nil)

	var ae *Error
	if errors.As(err, &ae) && ae.Status == http.StatusBadRequest {
		ae.Kind = apperr.Conflict
	}
	return err
}

func (c *Client) RemoveFromCart(ctx context.Context, productID int64) error {
	in := map[string]int64{"product_id": productID}
	return c.do(ctx, "POST", "/api/cart/remove/", in, nil)
}

func (c *Client) UpdateCartItem(ctx context.Context, productID int64, qty int) error {
	in := map[string]any{"product_id": productID, "qty": qty}
	return c.do(ctx, "PATCH", "/api/cart/update/", in, nil)
}

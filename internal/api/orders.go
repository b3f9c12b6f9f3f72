package api

import "context"

func (c *Client) CreateOrder(ctx context.Context, in CreateOrderInput) error {
	return c.do(ctx, "POST", "/api/orders/create/", in, nil)
}

// Orders lists the caller's own orders, newest first (server-sorted).
func (c *Client) Orders(ctx context.Context) ([]Order, error) {
	raw, err := c.doRaw(ctx, "GET", "/api/orders/", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[Order](raw, "orders")
}

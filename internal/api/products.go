package api

import "context"

func (c *Client) Products(ctx context.Context) ([]Product, error) {
	raw, err := c.doRaw(ctx, "GET", "/api/products/", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[Product](raw, "products")
}

package api

import "context"

func (c *Client) Wishlist(ctx context.Context) ([]WishlistLine, error) {
	raw, err := c.doRaw(ctx, "GET", "/api/wishlist/", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[WishlistLine](raw, "items")
}

// ToggleWishlist flips membership server-side and reports which way it went.
func (c *Client) ToggleWishlist(ctx context.Context, productID int64) (ToggleStatus, error) {
	in := map[string]int64{"product_id": productID}
	var out toggleResponse
	if err := c.do(ctx, "POST", "/api/wishlist/toggle/", in, &out); err != nil {
		return "", err
	}
	return out.Status, nil
}

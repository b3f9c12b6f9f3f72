package api

import (
	"context"
	"fmt"
)

func (c *Client) AdminDashboard(ctx context.Context) (Dashboard, error) {
	var out Dashboard
	err := c.do(ctx, "GET", "/api/admin/dashboard/", nil, &out)
	return out, err
}

func (c *Client) AdminUsers(ctx context.Context) ([]AdminUser, error) {
	raw, err := c.doRaw(ctx, "GET", "/api/admin/users/", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[AdminUser](raw, "users")
}

// AdminDeleteUser removes a user; the server cascades the user's orders.
func (c *Client) AdminDeleteUser(ctx context.Context, userID int64) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/api/admin/users/%d/", userID), nil, nil)
}

func (c *Client) AdminProducts(ctx context.Context) ([]Product, error) {
	raw, err := c.doRaw(ctx, "GET", "/api/admin/products/", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[Product](raw, "products")
}

func (c *Client) AdminCreateProduct(ctx context.Context, in ProductInput) error {
	return c.do(ctx, "POST", "/api/admin/products/add/", in, nil)
}

func (c *Client) AdminUpdateProduct(ctx context.Context, productID int64, in ProductInput) error {
	return c.do(ctx, "PUT", fmt.Sprintf("/api/admin/products/%d/", productID), in, nil)
}

func (c *Client) AdminDeleteProduct(ctx context.Context, productID int64) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/api/admin/products/%d/delete/", productID), nil, nil)
}

func (c *Client) AdminOrders(ctx context.Context) ([]Order, error) {
	raw, err := c.doRaw(ctx, "GET", "/api/admin/orders/", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[Order](raw, "orders")
}

func (c *Client) AdminUpdateOrder(ctx context.Context, orderID int64, in OrderUpdate) error {
	return c.do(ctx, "PUT", fmt.Sprintf("/api/admin/orders/%d/", orderID), in, nil)
}

func (c *Client) AdminDeleteOrder(ctx context.Context, orderID int64) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/api/admin/orders/%d/delete/", orderID), nil, nil)
}

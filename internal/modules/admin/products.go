package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/marvakt/ChocoLuxe/internal/api"
)

var (
	ErrProductNameRequired     = errors.New("product name is required")
	ErrProductPriceRequired    = errors.New("product price must be positive")
	ErrProductCategoryRequired = errors.New("product category is required")
)

func validateProduct(in api.ProductInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrProductNameRequired
	}
	if !in.Price.IsPositive() {
		return ErrProductPriceRequired
	}
	if strings.TrimSpace(in.Category) == "" {
		return ErrProductCategoryRequired
	}
	return nil
}

func (c *Console) CreateProduct(ctx context.Context, in api.ProductInput) error {
	if err := validateProduct(in); err != nil {
		return err
	}
	if err := c.api.AdminCreateProduct(ctx, in); err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	if err := c.RefreshProducts(ctx); err != nil {
		c.log.Warn("product refetch after create failed", "err", err)
	}
	return nil
}

func (c *Console) UpdateProduct(ctx context.Context, id int64, in api.ProductInput) error {
	if err := validateProduct(in); err != nil {
		return err
	}
	if err := c.api.AdminUpdateProduct(ctx, id, in); err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if err := c.RefreshProducts(ctx); err != nil {
		c.log.Warn("product refetch after update failed", "err", err)
	}
	return nil
}

func (c *Console) DeleteProduct(ctx context.Context, id int64) error {
	if err := c.api.AdminDeleteProduct(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if err := c.RefreshProducts(ctx); err != nil {
		c.log.Warn("product refetch after delete failed", "err", err)
	}
	return nil
}

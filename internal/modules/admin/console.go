package admin

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/marvakt/ChocoLuxe/internal/api"
	"github.com/marvakt/ChocoLuxe/internal/storage"
)

// Console backs the four admin surfaces: dashboard, products, orders and
// users. Each surface follows the same discipline as the shopper stores:
// fetch the full collection, cache it, mutate through the dedicated
// endpoint, refetch. The caches exist for rendering and for the one place
// the UI must stay consistent ahead of a refetch (order pruning on user
// delete).
type Console struct {
	api    *api.Client
	images storage.Storage
	log    *slog.Logger

	mu       sync.Mutex
	products []api.Product
	orders   []api.Order
	users    []api.AdminUser
}

func NewConsole(client *api.Client, images storage.Storage, log *slog.Logger) *Console {
	if log == nil {
		log = slog.Default()
	}
	return &Console{api: client, images: images, log: log}
}

func (c *Console) RefreshProducts(ctx context.Context) error {
	products, err := c.api.AdminProducts(ctx)
	if err != nil {
		c.log.Warn("admin products fetch failed", "err", err)
		return err
	}
	c.mu.Lock()
	c.products = products
	c.mu.Unlock()
	return nil
}

func (c *Console) RefreshOrders(ctx context.Context) error {
	orders, err := c.api.AdminOrders(ctx)
	if err != nil {
		c.log.Warn("admin orders fetch failed", "err", err)
		return err
	}
	c.mu.Lock()
	c.orders = orders
	c.mu.Unlock()
	return nil
}

func (c *Console) RefreshUsers(ctx context.Context) error {
	users, err := c.api.AdminUsers(ctx)
	if err != nil {
		c.log.Warn("admin users fetch failed", "err", err)
		return err
	}
	c.mu.Lock()
	c.users = users
	c.mu.Unlock()
	return nil
}

func (c *Console) Products() []api.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]api.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Console) Orders() []api.Order {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]api.Order, len(c.orders))
	copy(out, c.orders)
	return out
}

func (c *Console) Users() []api.AdminUser {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]api.AdminUser, len(c.users))
	copy(out, c.users)
	return out
}

// UploadImage stores a product image and returns the public URL to send to
// the catalog API.
func (c *Console) UploadImage(ctx context.Context, r io.Reader, filename, contentType string, size int64) (string, error) {
	res, err := c.images.Put(ctx, r, storage.PutInput{
		Filename:    filename,
		ContentType: contentType,
		Size:        size,
	})
	if err != nil {
		return "", err
	}
	c.log.Info("product image uploaded", "key", res.Key)
	return res.URL, nil
}

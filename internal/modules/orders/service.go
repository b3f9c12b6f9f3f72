package orders

import (
	"context"
	"log/slog"

	"github.com/marvakt/ChocoLuxe/internal/api"
)

// Service is the read-only shopper view of order history. The server sorts
// by recency descending; the list is trusted as-is.
type Service struct {
	api *api.Client
	log *slog.Logger
}

func NewService(client *api.Client, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{api: client, log: log}
}

func (s *Service) History(ctx context.Context) ([]api.Order, error) {
	orders, err := s.api.Orders(ctx)
	if err != nil {
		s.log.Warn("order history fetch failed", "err", err)
		return nil, err
	}
	return orders, nil
}

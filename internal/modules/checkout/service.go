package checkout

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/marvakt/ChocoLuxe/internal/api"
	"github.com/marvakt/ChocoLuxe/internal/modules/cart"
)

// Details is the shipping form. Payment is one of the server's accepted
// methods (cod, upi, card).
type Details struct {
	Name    string
	Address string
	Phone   string
	Payment string
}

var payments = map[string]struct{}{
	"cod":  {},
	"upi":  {},
	"card": {},
}

// Total sums price × quantity over cart lines. A pure derived value: it is
// recomputed from the lines every time and never stored.
func Total(lines []api.CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}

// Service places orders against the API using the cart store's cache for
// the local preconditions.
type Service struct {
	api  *api.Client
	cart *cart.Store
	log  *slog.Logger
}

func NewService(client *api.Client, cartStore *cart.Store, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{api: client, cart: cartStore, log: log}
}

// Validate applies the local checks in a fixed order so the user always
// sees the most specific message first.
func (s *Service) Validate(d Details) error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrMissingName
	}
	if strings.TrimSpace(d.Address) == "" {
		return ErrMissingAddress
	}
	if strings.TrimSpace(d.Phone) == "" {
		return ErrMissingPhone
	}
	if _, ok := payments[d.Payment]; !ok {
		return ErrInvalidPayment
	}
	if len(s.cart.Lines()) == 0 {
		return ErrEmptyCart
	}
	return nil
}

// PlaceOrder validates locally, creates the order, then refetches the cart;
// the server clears purchased items so the refetch is expected to come back
// empty.
func (s *Service) PlaceOrder(ctx context.Context, d Details) error {
	if err := s.Validate(d); err != nil {
		return err
	}

	in := api.CreateOrderInput{
		ShippingAddress: strings.TrimSpace(d.Address),
		PhoneNumber:     strings.TrimSpace(d.Phone),
		PaymentMethod:   d.Payment,
	}
	if err := s.api.CreateOrder(ctx, in); err != nil {
		return fmt.Errorf("create order: %w", err)
	}

	if err := s.cart.Fetch(ctx); err != nil {
		s.log.Warn("cart refetch after order failed", "err", err)
	}
	return nil
}

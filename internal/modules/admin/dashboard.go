package admin

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/marvakt/ChocoLuxe/internal/api"
)

// SalesPoint is one day's order revenue, for the dashboard chart data.
type SalesPoint struct {
	Date  string // YYYY-MM-DD
	Total decimal.Decimal
}

// Overview bundles the server aggregates with the bits the dashboard
// derives client-side from the cached admin orders.
type Overview struct {
	api.Dashboard
	RecentOrders []api.Order
	SalesByDay   []SalesPoint
}

const recentOrderCount = 5

// Dashboard fetches the aggregates and refreshes the admin order cache to
// derive the recent-orders table and per-day sales buckets. The aggregates
// themselves are trusted as the server reports them.
func (c *Console) Dashboard(ctx context.Context) (Overview, error) {
	dash, err := c.api.AdminDashboard(ctx)
	if err != nil {
		c.log.Warn("admin dashboard fetch failed", "err", err)
		return Overview{}, err
	}

	if err := c.RefreshOrders(ctx); err != nil {
		// aggregates still render; the derived sections just come up empty
		return Overview{Dashboard: dash}, nil
	}

	orders := c.Orders()
	recent := orders
	if len(recent) > recentOrderCount {
		recent = recent[:recentOrderCount]
	}

	return Overview{
		Dashboard:    dash,
		RecentOrders: recent,
		SalesByDay:   salesByDay(orders),
	}, nil
}

func salesByDay(orders []api.Order) []SalesPoint {
	byDate := map[string]decimal.Decimal{}
	for _, o := range orders {
		if o.CreatedAt.IsZero() {
			continue
		}
		date := o.CreatedAt.Format("2006-01-02")
		byDate[date] = byDate[date].Add(o.Total)
	}

	out := make([]SalesPoint, 0, len(byDate))
	for date, total := range byDate {
		out = append(out, SalesPoint{Date: date, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

package catalog

import (
	"sort"
	"strings"

	"github.com/marvakt/ChocoLuxe/internal/api"
)

// Sort order over the product list. Default keeps the server's order
// untouched.
type Sort string

const (
	SortDefault   Sort = "default"
	SortPriceAsc  Sort = "asc"
	SortPriceDesc Sort = "desc"
)

// CategoryAll disables the category filter.
const CategoryAll = "All"

// DefaultPageSize is the storefront grid size.
const DefaultPageSize = 8

// Query is one derived-state pass over a fetched product list.
type Query struct {
	Search   string
	Category string
	Sort     Sort
	Page     int
	PageSize int
}

// Result is the paginated output plus the figures the pager needs.
type Result struct {
	Items      []api.Product
	Total      int // after filtering, before pagination
	Page       int // clamped
	TotalPages int
}

// Apply runs the fixed pipeline: search filter → category filter → sort →
// paginate. The input slice is never modified; sorting copies first.
func Apply(products []api.Product, q Query) Result {
	filtered := products

	if search := strings.TrimSpace(q.Search); search != "" {
		needle := strings.ToLower(search)
		kept := make([]api.Product, 0, len(filtered))
		for _, p := range filtered {
			if strings.Contains(strings.ToLower(p.Name), needle) {
				kept = append(kept, p)
			}
		}
		filtered = kept
	}

	if q.Category != "" && q.Category != CategoryAll {
		kept := make([]api.Product, 0, len(filtered))
		for _, p := range filtered {
			if p.Category == q.Category {
				kept = append(kept, p)
			}
		}
		filtered = kept
	}

	switch q.Sort {
	case SortPriceAsc:
		filtered = sortedByPrice(filtered, true)
	case SortPriceDesc:
		filtered = sortedByPrice(filtered, false)
	default:
		// server order, unmodified
	}

	pageSize := q.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	totalPages := (len(filtered) + pageSize - 1) / pageSize

	page := q.Page
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	return Result{
		Items:      filtered[start:end],
		Total:      len(filtered),
		Page:       page,
		TotalPages: totalPages,
	}
}

// sortedByPrice copies then stable-sorts, so equal prices keep their server
// order and the caller's slice stays intact.
func sortedByPrice(products []api.Product, asc bool) []api.Product {
	out := make([]api.Product, len(products))
	copy(out, products)
	sort.SliceStable(out, func(i, j int) bool {
		if asc {
			return out[i].Price.LessThan(out[j].Price)
		}
		return out[i].Price.GreaterThan(out[j].Price)
	})
	return out
}

// Categories returns "All" followed by the distinct categories in
// first-seen order.
func Categories(products []api.Product) []string {
	out := []string{CategoryAll}
	seen := map[string]struct{}{}
	for _, p := range products {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

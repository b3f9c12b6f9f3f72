package catalog

import "sync"

// View tracks the catalog controls between renders. Changing any upstream
// input (search, category, sort) resets the page to 1 so the whole pipeline
// re-runs from the top.
type View struct {
	mu sync.Mutex
	q  Query
}

func NewView(pageSize int) *View {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &View{q: Query{
		Category: CategoryAll,
		Sort:     SortDefault,
		Page:     1,
		PageSize: pageSize,
	}}
}

func (v *View) Query() Query {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.q
}

func (v *View) SetSearch(s string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if s == v.q.Search {
		return
	}
	v.q.Search = s
	v.q.Page = 1
}

func (v *View) SetCategory(c string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if c == "" {
		c = CategoryAll
	}
	if c == v.q.Category {
		return
	}
	v.q.Category = c
	v.q.Page = 1
}

func (v *View) SetSort(s Sort) {
	v.mu.Lock()
	defer v.mu.Unlock()
	switch s {
	case SortPriceAsc, SortPriceDesc:
	default:
		s = SortDefault
	}
	if s == v.q.Sort {
		return
	}
	v.q.Sort = s
	v.q.Page = 1
}

// SetPage accepts any value; Apply clamps it against the filtered total.
func (v *View) SetPage(p int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if p < 1 {
		p = 1
	}
	v.q.Page = p
}

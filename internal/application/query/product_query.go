// internal/application/query/product_query.go
package query

import (
	"math"
	"sort"
	"strings"

	proddom "naturalglow/internal/domain/product"
)

// SortOrder directs the price sort.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// DefaultPageSize matches the product grid (6 cards per page).
const DefaultPageSize = 6

// FilterState is the ephemeral, UI-session-scoped query input. It is not
// persisted; callers pass it on every query.
type FilterState struct {
	Search   string    `json:"search"`
	Category string    `json:"category"`
	MinPrice float64   `json:"minPrice"`
	MaxPrice float64   `json:"maxPrice"`
	Sort     SortOrder `json:"sort"`
	Page     int       `json:"page"`
	PageSize int       `json:"pageSize"`
}

// Normalize is the input-validation boundary: negative price bounds are
// clamped to 0, a non-positive max means "unbounded", page defaults to 1
// and page size to DefaultPageSize. Products itself assumes a normalized
// state.
func (f FilterState) Normalize() FilterState {
	if f.MinPrice < 0 || math.IsNaN(f.MinPrice) {
		f.MinPrice = 0
	}
	if f.MaxPrice <= 0 || math.IsNaN(f.MaxPrice) {
		f.MaxPrice = math.MaxFloat64
	}
	if f.MaxPrice < f.MinPrice {
		f.MaxPrice = f.MinPrice
	}
	if f.Sort != SortDesc {
		f.Sort = SortAsc
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = DefaultPageSize
	}
	return f
}

// ProductView is a catalog entry plus its display-only offer badge.
type ProductView struct {
	proddom.Product
	Offer bool `json:"offer"`
}

// Page is one page of the filtered+sorted projection.
// OfferIDs lists the badge-tagged ids of the whole filtered set, so a
// badge is stable regardless of which page its product lands on.
type Page struct {
	Items      []ProductView `json:"items"`
	OfferIDs   []string      `json:"offerIds"`
	Page       int           `json:"page"`
	PageSize   int           `json:"pageSize"`
	TotalItems int           `json:"totalItems"`
	TotalPages int           `json:"totalPages"`
}

// Products derives the filtered, sorted, offer-tagged, paginated view.
// Pure and deterministic: same collection + state, same result.
//
// 1. Filter: case-insensitive substring on name or description, optional
//    exact category, inclusive price range.
// 2. Offer tagging: the 2 lowest-priced products of the FILTERED set
//    (stable: ties keep original collection order).
// 3. Sort: stable, by price, per f.Sort.
// 4. Paginate: 1-based page over the filtered+sorted sequence.
func Products(list []proddom.Product, f FilterState) Page {
	term := strings.ToLower(strings.TrimSpace(f.Search))
	category := strings.TrimSpace(f.Category)

	filtered := make([]proddom.Product, 0, len(list))
	for _, p := range list {
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		if p.Price < f.MinPrice || p.Price > f.MaxPrice {
			continue
		}
		filtered = append(filtered, p)
	}

	offers := offerIDs(filtered)

	sorted := make([]proddom.Product, len(filtered))
	copy(sorted, filtered)
	if f.Sort == SortDesc {
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price > sorted[j].Price })
	} else {
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price < sorted[j].Price })
	}

	size := f.PageSize
	if size < 1 {
		size = DefaultPageSize
	}
	page := f.Page
	if page < 1 {
		page = 1
	}

	totalItems := len(sorted)
	totalPages := (totalItems + size - 1) / size

	start := (page - 1) * size
	if start > totalItems {
		start = totalItems
	}
	end := start + size
	if end > totalItems {
		end = totalItems
	}

	items := make([]ProductView, 0, end-start)
	for _, p := range sorted[start:end] {
		items = append(items, ProductView{Product: p, Offer: offerTagged(offers, p.ID)})
	}

	return Page{
		Items:      items,
		OfferIDs:   offers,
		Page:       page,
		PageSize:   size,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

// offerIDs picks the 2 cheapest ids of the filtered set, ascending by
// price, ties broken by original collection order.
func offerIDs(filtered []proddom.Product) []string {
	if len(filtered) == 0 {
		return []string{}
	}

	byPrice := make([]proddom.Product, len(filtered))
	copy(byPrice, filtered)
	sort.SliceStable(byPrice, func(i, j int) bool { return byPrice[i].Price < byPrice[j].Price })

	n := 2
	if len(byPrice) < n {
		n = len(byPrice)
	}

	out := make([]string, 0, n)
	for _, p := range byPrice[:n] {
		out = append(out, p.ID)
	}
	return out
}

func offerTagged(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// internal/application/query/product_query_test.go
package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	proddom "naturalglow/internal/domain/product"
)

func qp(id string, price float64) proddom.Product {
	return proddom.Product{ID: id, Name: "Producto " + id, Price: price}
}

func catalog() []proddom.Product {
	return []proddom.Product{
		{ID: "1", Name: "Crema Facial Hidratante", Description: "con aloe vera", Price: 39.99, Category: "Cuidado Facial"},
		{ID: "2", Name: "Jabón Natural", Description: "de lavanda", Price: 15.99, Category: "Cuidado Corporal"},
		{ID: "3", Name: "Serum Antiedad", Description: "con vitamina C", Price: 45.99, Category: "Cuidado Facial"},
		{ID: "4", Name: "Mascarilla de Arcilla", Description: "purificante", Price: 29.99, Category: "Cuidado Facial"},
		{ID: "5", Name: "Aceite Corporal", Description: "de rosa mosqueta", Price: 22.99, Category: "Cuidado Corporal"},
		{ID: "6", Name: "Kit Completo", Description: "rutina facial completa", Price: 99.99, Category: "Cuidado Facial"},
	}
}

func ids(items []ProductView) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestProductsSortTagAndPaginate(t *testing.T) {
	// three products, ascending sort: order 2,1,3 and the two cheapest
	// carry the offer badge
	list := []proddom.Product{qp("1", 10), qp("2", 5), qp("3", 20)}

	page := Products(list, FilterState{}.Normalize())

	assert.Equal(t, []string{"2", "1", "3"}, ids(page.Items))
	assert.Equal(t, []string{"2", "1"}, page.OfferIDs)
	assert.True(t, page.Items[0].Offer)
	assert.True(t, page.Items[1].Offer)
	assert.False(t, page.Items[2].Offer)
	assert.Equal(t, 3, page.TotalItems)
	assert.Equal(t, 1, page.TotalPages)
}

func TestProductsIsDeterministic(t *testing.T) {
	list := catalog()
	f := FilterState{Category: "Cuidado Facial", Sort: SortDesc}.Normalize()

	first := Products(list, f)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Products(list, f))
	}
}

func TestProductsFilters(t *testing.T) {
	tests := []struct {
		name string
		f    FilterState
		want []string
	}{
		{
			name: "search matches name case-insensitively",
			f:    FilterState{Search: "CREMA"},
			want: []string{"1"},
		},
		{
			name: "search matches description",
			f:    FilterState{Search: "vitamina"},
			want: []string{"3"},
		},
		{
			name: "category exact",
			f:    FilterState{Category: "Cuidado Corporal"},
			want: []string{"2", "5"},
		},
		{
			name: "price range inclusive",
			f:    FilterState{MinPrice: 22.99, MaxPrice: 39.99},
			want: []string{"5", "4", "1"},
		},
		{
			name: "filters combine",
			f:    FilterState{Search: "facial", Category: "Cuidado Facial", MaxPrice: 50},
			want: []string{"1"},
		},
		{
			name: "no match",
			f:    FilterState{Search: "champú"},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Products(catalog(), tt.f.Normalize())
			assert.Equal(t, tt.want, ids(page.Items))
		})
	}
}

func TestProductsOfferScopeIsFilteredSet(t *testing.T) {
	// within the corporal category the two items present are the two
	// cheapest, regardless of cheaper products elsewhere in the catalog
	page := Products(catalog(), FilterState{Category: "Cuidado Corporal"}.Normalize())
	assert.Equal(t, []string{"2", "5"}, page.OfferIDs)

	// unfiltered, the global two cheapest win
	page = Products(catalog(), FilterState{}.Normalize())
	assert.Equal(t, []string{"2", "5"}, page.OfferIDs)

	facial := Products(catalog(), FilterState{Category: "Cuidado Facial"}.Normalize())
	assert.Equal(t, []string{"4", "1"}, facial.OfferIDs)
}

func TestProductsOfferTieKeepsCollectionOrder(t *testing.T) {
	list := []proddom.Product{qp("a", 5), qp("b", 5), qp("c", 5)}
	page := Products(list, FilterState{}.Normalize())
	assert.Equal(t, []string{"a", "b"}, page.OfferIDs)
}

func TestProductsSortDesc(t *testing.T) {
	page := Products(catalog(), FilterState{Sort: SortDesc}.Normalize())
	assert.Equal(t, []string{"6", "3", "1", "4", "5", "2"}, ids(page.Items))
}

func TestProductsStableSortOnEqualPrices(t *testing.T) {
	list := []proddom.Product{qp("a", 5), qp("b", 5), qp("c", 1)}
	page := Products(list, FilterState{}.Normalize())
	assert.Equal(t, []string{"c", "a", "b"}, ids(page.Items))
}

func TestProductsPagination(t *testing.T) {
	list := make([]proddom.Product, 0, 8)
	for i := 1; i <= 8; i++ {
		list = append(list, qp(string(rune('a'+i-1)), float64(i)))
	}

	page1 := Products(list, FilterState{Page: 1}.Normalize())
	require.Len(t, page1.Items, DefaultPageSize)
	assert.Equal(t, 8, page1.TotalItems)
	assert.Equal(t, 2, page1.TotalPages)

	page2 := Products(list, FilterState{Page: 2}.Normalize())
	assert.Equal(t, []string{"g", "h"}, ids(page2.Items))

	// a page past the end is empty, not an error
	page9 := Products(list, FilterState{Page: 9}.Normalize())
	assert.Empty(t, page9.Items)
	assert.Equal(t, 2, page9.TotalPages)

	// offer badges stay on the whole filtered set, not the visible page
	assert.Equal(t, []string{"a", "b"}, page2.OfferIDs)
}

func TestProductsEmptyCollection(t *testing.T) {
	page := Products(nil, FilterState{}.Normalize())
	assert.Empty(t, page.Items)
	assert.Empty(t, page.OfferIDs)
	assert.Equal(t, 0, page.TotalItems)
	assert.Equal(t, 0, page.TotalPages)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   FilterState
		want FilterState
	}{
		{
			name: "zero value gets defaults",
			in:   FilterState{},
			want: FilterState{MaxPrice: maxBound(), Sort: SortAsc, Page: 1, PageSize: DefaultPageSize},
		},
		{
			name: "negative bounds clamped",
			in:   FilterState{MinPrice: -5, MaxPrice: -1, Page: -3, PageSize: -1},
			want: FilterState{MaxPrice: maxBound(), Sort: SortAsc, Page: 1, PageSize: DefaultPageSize},
		},
		{
			name: "max below min raised to min",
			in:   FilterState{MinPrice: 50, MaxPrice: 10},
			want: FilterState{MinPrice: 50, MaxPrice: 50, Sort: SortAsc, Page: 1, PageSize: DefaultPageSize},
		},
		{
			name: "unknown sort falls back to asc",
			in:   FilterState{Sort: SortOrder("sideways")},
			want: FilterState{MaxPrice: maxBound(), Sort: SortAsc, Page: 1, PageSize: DefaultPageSize},
		},
		{
			name: "desc preserved",
			in:   FilterState{Sort: SortDesc, Page: 2, PageSize: 12},
			want: FilterState{MaxPrice: maxBound(), Sort: SortDesc, Page: 2, PageSize: 12},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}

func maxBound() float64 {
	return FilterState{}.Normalize().MaxPrice
}

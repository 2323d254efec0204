// internal/domain/product/entity_test.go
package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRaw(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		raw     map[string]any
		want    Product
		wantErr bool
	}{
		{
			name: "well formed",
			id:   "1",
			raw: map[string]any{
				"name":        "Crema Facial Hidratante",
				"description": "con aloe vera",
				"price":       39.99,
				"image":       "/img/crema.jpg",
				"category":    "Cuidado Facial",
			},
			want: Product{
				ID:          "1",
				Name:        "Crema Facial Hidratante",
				Description: "con aloe vera",
				Price:       39.99,
				Image:       "/img/crema.jpg",
				Category:    "Cuidado Facial",
			},
		},
		{
			name: "string price coerced",
			id:   "1",
			raw:  map[string]any{"name": "Jabón", "price": "15.99"},
			want: Product{ID: "1", Name: "Jabón", Price: 15.99},
		},
		{
			name: "integer price coerced",
			id:   "1",
			raw:  map[string]any{"name": "Jabón", "price": int64(16)},
			want: Product{ID: "1", Name: "Jabón", Price: 16},
		},
		{
			name:    "missing price rejected",
			id:      "1",
			raw:     map[string]any{"name": "Jabón"},
			wantErr: true,
		},
		{
			name:    "non-numeric price rejected",
			id:      "1",
			raw:     map[string]any{"name": "Jabón", "price": "gratis"},
			wantErr: true,
		},
		{
			name:    "negative price rejected",
			id:      "1",
			raw:     map[string]any{"name": "Jabón", "price": -1.0},
			wantErr: true,
		},
		{
			name:    "blank name rejected",
			id:      "1",
			raw:     map[string]any{"name": "   ", "price": 5.0},
			wantErr: true,
		},
		{
			name:    "nil body rejected",
			id:      "1",
			raw:     nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromRaw(tt.id, tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidProduct)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRawRoundTrip(t *testing.T) {
	p, err := New("1", "Serum Antiedad", "con vitamina C", 45.99, "/img/serum.jpg", "Cuidado Facial")
	require.NoError(t, err)

	got, err := FromRaw(p.ID, p.ToRaw())
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestNewTrimsFields(t *testing.T) {
	p, err := New("  1  ", "  Jabón  ", " suave ", 5, " /a.jpg ", " Cuidado Corporal ")
	require.NoError(t, err)
	assert.Equal(t, Product{ID: "1", Name: "Jabón", Description: "suave", Price: 5, Image: "/a.jpg", Category: "Cuidado Corporal"}, p)
}

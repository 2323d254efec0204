// internal/domain/cart/codec_test.go
package cart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeLinesSanitizes(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    []Line
	}{
		{
			name:    "well formed",
			payload: `[{"id":"1","name":"Crema","price":39.99,"image":"/a.jpg","quantity":2}]`,
			want:    []Line{{ProductID: "1", Name: "Crema", Price: 39.99, Image: "/a.jpg", Quantity: 2}},
		},
		{
			name:    "string price coerced",
			payload: `[{"id":"1","price":"15.99","quantity":1}]`,
			want:    []Line{{ProductID: "1", Price: 15.99, Quantity: 1}},
		},
		{
			name:    "non-numeric price kept invalid",
			payload: `[{"id":"1","price":"abc","quantity":1}]`,
			want:    []Line{{ProductID: "1", Price: invalidPrice, Quantity: 1}},
		},
		{
			name:    "missing price kept invalid",
			payload: `[{"id":"1","quantity":1}]`,
			want:    []Line{{ProductID: "1", Price: invalidPrice, Quantity: 1}},
		},
		{
			name:    "bad quantity coerced to one",
			payload: `[{"id":"1","price":5,"quantity":"many"},{"id":"2","price":5,"quantity":-4}]`,
			want: []Line{
				{ProductID: "1", Price: 5, Quantity: 1},
				{ProductID: "2", Price: 5, Quantity: 1},
			},
		},
		{
			name:    "record without id dropped",
			payload: `[{"price":5,"quantity":1},{"id":"  ","price":5,"quantity":1},{"id":"2","price":5,"quantity":1}]`,
			want:    []Line{{ProductID: "2", Price: 5, Quantity: 1}},
		},
		{
			name:    "not an array",
			payload: `{"id":"1"}`,
			want:    []Line{},
		},
		{
			name:    "garbage",
			payload: `not json at all`,
			want:    []Line{},
		},
		{
			name:    "empty",
			payload: ``,
			want:    []Line{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeLines([]byte(tt.payload)))
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	in := []Line{
		{ProductID: "1", Name: "Crema Facial", Price: 39.99, Image: "/a.jpg", Quantity: 2},
		{ProductID: "2", Name: "Serum", Price: 45.99, Image: "/b.jpg", Quantity: 1},
	}

	data, err := EncodeLines(in)
	require.NoError(t, err)

	assert.Equal(t, in, DecodeLines(data))
}

func TestEncodeLinesOmitsNonFinitePrice(t *testing.T) {
	data, err := EncodeLines([]Line{{ProductID: "1", Price: math.NaN(), Quantity: 3}})
	require.NoError(t, err)

	got := DecodeLines(data)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ProductID)
	assert.Equal(t, 3, got[0].Quantity)
	assert.False(t, got[0].Valid(), "restored line must stay out of totals")
}

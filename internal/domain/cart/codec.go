// internal/domain/cart/codec.go
package cart

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// EncodeLines serializes lines to the persisted JSON array layout
// ([{id,name,price,image,quantity}, ...] — same shape the web client kept
// in localStorage). A non-finite price is omitted so the payload stays
// valid JSON; DecodeLines restores it as an invalid price.
func EncodeLines(lines []Line) ([]byte, error) {
	out := make([]map[string]any, 0, len(lines))
	for _, l := range lines {
		rec := map[string]any{
			"id":       l.ProductID,
			"name":     l.Name,
			"image":    l.Image,
			"quantity": l.Quantity,
		}
		if validPrice(l.Price) {
			rec["price"] = l.Price
		}
		out = append(out, rec)
	}
	return json.Marshal(out)
}

// DecodeLines rebuilds lines from persisted data, sanitizing field by
// field. Malformed persisted state never fails the load:
//   - records without a product id are dropped
//   - a non-numeric or sub-1 quantity is coerced to 1
//   - a missing or non-numeric price is kept as an invalid value so the
//     line still displays but is excluded from totals
//
// A payload that is not a JSON array at all yields an empty cart.
func DecodeLines(data []byte) []Line {
	if len(data) == 0 {
		return []Line{}
	}

	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return []Line{}
	}

	out := make([]Line, 0, len(raw))
	for _, rec := range raw {
		if rec == nil {
			continue
		}

		pid := strings.TrimSpace(rawString(rec["id"]))
		if pid == "" {
			continue
		}

		qty, ok := rawInt(rec["quantity"])
		if !ok || qty < 1 {
			qty = 1
		}

		price, ok := rawFloat(rec["price"])
		if !ok {
			price = invalidPrice
		}

		out = append(out, Line{
			ProductID: pid,
			Name:      rawString(rec["name"]),
			Price:     price,
			Image:     rawString(rec["image"]),
			Quantity:  qty,
		})
	}
	return out
}

// invalidPrice marks a price that failed numeric coercion. Negative, so
// Line.Valid rejects it and totals skip the line.
const invalidPrice = float64(-1)

func rawString(v any) string {
	if v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	default:
		return fmt.Sprint(v)
	}
}

func rawInt(v any) (int, bool) {
	switch t := v.(type) {
	case float64:
		return int(t), true
	case int:
		return t, true
	case json.Number:
		n, err := t.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, false
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func rawFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

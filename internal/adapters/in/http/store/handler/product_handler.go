// internal/adapters/in/http/store/handler/product_handler.go
package handler

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"naturalglow/internal/application/query"
	proddom "naturalglow/internal/domain/product"
)

// ProductHandler serves the catalog.
// Intended mount (router side):
// - GET /store/products?search=&category=&minPrice=&maxPrice=&sort=&page=&pageSize=
// - GET /store/products/{id}
type ProductHandler struct {
	repo proddom.Repository
}

func NewProductHandler(repo proddom.Repository) http.Handler {
	return &ProductHandler{repo: repo}
}

func (h *ProductHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.repo == nil {
		writeErr(w, http.StatusInternalServerError, "product handler is not configured")
		return
	}
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	// tolerate both /store/products and a StripPrefix'd path
	path := strings.TrimRight(r.URL.Path, "/")
	if id := productIDFromPath(path); id != "" {
		h.getOne(w, r, id)
		return
	}
	h.list(w, r)
}

func (h *ProductHandler) list(w http.ResponseWriter, r *http.Request) {
	products, err := h.repo.List(r.Context())
	if err != nil {
		writeErr(w, http.StatusBadGateway, "failed to load catalog")
		return
	}

	writeJSON(w, http.StatusOK, query.Products(products, filterFromQuery(r)))
}

func (h *ProductHandler) getOne(w http.ResponseWriter, r *http.Request, id string) {
	p, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		writeErr(w, http.StatusBadGateway, "failed to load product")
		return
	}
	if p == nil {
		writeErr(w, http.StatusNotFound, "product not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// filterFromQuery is the input-validation boundary for FilterState:
// absent, unparsable or negative numbers fall back to the normalized
// defaults. An explicit maxPrice=0 is kept as an inclusive bound; only a
// missing or unparsable maxPrice means "unbounded".
func filterFromQuery(r *http.Request) query.FilterState {
	q := r.URL.Query()

	f := query.FilterState{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		MinPrice: parseFloatDefault(q.Get("minPrice"), 0),
		MaxPrice: parseFloatDefault(q.Get("maxPrice"), math.MaxFloat64),
		Sort:     query.SortOrder(strings.TrimSpace(q.Get("sort"))),
		Page:     parseIntDefault(q.Get("page"), 1),
		PageSize: parseIntDefault(q.Get("pageSize"), query.DefaultPageSize),
	}.Normalize()

	// Normalize reads max<=0 as "unset"; restore an explicit zero bound.
	if v, ok := parseFloat(q.Get("maxPrice")); ok && v == 0 {
		f.MaxPrice = 0
		if f.MaxPrice < f.MinPrice {
			f.MaxPrice = f.MinPrice
		}
	}
	return f
}

func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func parseFloatDefault(s string, def float64) float64 {
	f, ok := parseFloat(s)
	if !ok {
		return def
	}
	return f
}

func parseIntDefault(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func productIDFromPath(path string) string {
	const prefix = "/store/products/"
	if strings.HasPrefix(path, prefix) {
		return strings.TrimSpace(strings.TrimPrefix(path, prefix))
	}
	return ""
}

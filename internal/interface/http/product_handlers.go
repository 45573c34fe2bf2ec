package http

import "net/http"

func (a *API) handleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := a.products.ListProducts(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}

	out := make([]map[string]any, 0, len(products))
	for _, p := range products {
		out = append(out, mapProduct(p))
	}
	writeJSON(w, http.StatusOK, out)
}

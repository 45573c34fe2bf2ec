// Package http exposes the backend resource contract over HTTP so the REST
// client has a real counterpart: GET /products, GET /cart, POST /cart,
// PUT /cart/{id}, DELETE /cart/{id}.
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	domcart "example.com/storefront/app/internal/domain/cart"
	domproduct "example.com/storefront/app/internal/domain/product"
)

type API struct {
	products  domproduct.Lister
	cart      domcart.Backend
	validator *validator.Validate
	logger    *zap.Logger
}

func NewAPI(products domproduct.Lister, cart domcart.Backend, logger *zap.Logger) *API {
	return &API{
		products:  products,
		cart:      cart,
		validator: validator.New(),
		logger:    logger,
	}
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/products", a.handleListProducts)

	r.Route("/cart", func(r chi.Router) {
		r.Get("/", a.handleListLines)
		r.Post("/", a.handleCreateLine)
		r.Put("/{id}", a.handleUpdateLine)
		r.Delete("/{id}", a.handleDeleteLine)
	})

	return r
}

func (a *API) decodeAndValidate(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return a.validator.Struct(dst)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Error string `json:"error"`
}

func respondError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func mapProduct(p *domproduct.Product) map[string]any {
	out := map[string]any{
		"id":          p.ID,
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price.InexactFloat64(),
		"imageUrl":    p.ImageURL,
	}
	if p.Category != "" {
		out["category"] = p.Category
	}
	return out
}

func mapLine(l *domcart.Line) map[string]any {
	return map[string]any{
		"id":        l.ID,
		"productId": l.ProductID,
		"name":      l.ProductName,
		"unitPrice": l.UnitPrice.InexactFloat64(),
		"quantity":  l.Quantity,
	}
}

func handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domcart.ErrLineNotFound),
		errors.Is(err, domproduct.ErrProductNotFound):
		respondError(w, http.StatusNotFound, err)
	case errors.Is(err, domcart.ErrInvalidQuantity):
		respondError(w, http.StatusBadRequest, err)
	default:
		respondError(w, http.StatusInternalServerError, err)
	}
}

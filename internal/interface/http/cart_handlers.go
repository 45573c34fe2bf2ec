package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	domcart "example.com/storefront/app/internal/domain/cart"
)

type createLineRequest struct {
	ProductID string  `json:"productId" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	UnitPrice float64 `json:"unitPrice" validate:"gte=0"`
	Quantity  int64   `json:"quantity" validate:"required,gte=1"`
}

type updateLineRequest struct {
	Quantity int64 `json:"quantity" validate:"required,gte=1"`
}

func (a *API) handleListLines(w http.ResponseWriter, r *http.Request) {
	lines, err := a.cart.ListLines(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}

	out := make([]map[string]any, 0, len(lines))
	for i := range lines {
		out = append(out, mapLine(&lines[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *API) handleCreateLine(w http.ResponseWriter, r *http.Request) {
	var req createLineRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	line, err := a.cart.CreateLine(r.Context(), domcart.NewLine{
		ProductID:   req.ProductID,
		ProductName: req.Name,
		UnitPrice:   decimal.NewFromFloat(req.UnitPrice),
		Quantity:    req.Quantity,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}

	a.logger.Info("cart line created",
		zap.String("line_id", line.ID),
		zap.String("product_id", line.ProductID))
	writeJSON(w, http.StatusCreated, mapLine(line))
}

func (a *API) handleUpdateLine(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateLineRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	line, err := a.cart.UpdateLineQuantity(r.Context(), id, req.Quantity)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapLine(line))
}

func (a *API) handleDeleteLine(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := a.cart.DeleteLine(r.Context(), id); err != nil {
		handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

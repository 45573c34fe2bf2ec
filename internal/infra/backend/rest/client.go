// Package rest talks to a remote cart/catalog resource over the REST
// contract: GET /products, GET /cart, POST /cart, PUT /cart/{id},
// DELETE /cart/{id}. The alternate remote variants differ only in base URL.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	domcart "example.com/storefront/app/internal/domain/cart"
	domproduct "example.com/storefront/app/internal/domain/product"
)

type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

func NewClient(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		logger:  logger,
	}
}

type productRecord struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	Category    string  `json:"category,omitempty"`
}

type lineRecord struct {
	ID        string  `json:"id"`
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int64   `json:"quantity"`
}

type createLineRequest struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int64   `json:"quantity"`
}

type updateLineRequest struct {
	Quantity int64 `json:"quantity"`
}

func (c *Client) ListProducts(ctx context.Context) ([]*domproduct.Product, error) {
	var records []productRecord
	if err := c.do(ctx, http.MethodGet, "/products", nil, &records); err != nil {
		return nil, err
	}

	products := make([]*domproduct.Product, 0, len(records))
	for _, rec := range records {
		products = append(products, &domproduct.Product{
			ID:          rec.ID,
			Name:        rec.Name,
			Description: rec.Description,
			Price:       decimal.NewFromFloat(rec.Price),
			ImageURL:    rec.ImageURL,
			Category:    rec.Category,
		})
	}
	return products, nil
}

func (c *Client) ListLines(ctx context.Context) ([]domcart.Line, error) {
	var records []lineRecord
	if err := c.do(ctx, http.MethodGet, "/cart", nil, &records); err != nil {
		return nil, err
	}

	lines := make([]domcart.Line, 0, len(records))
	for _, rec := range records {
		lines = append(lines, rec.toLine())
	}
	return lines, nil
}

func (c *Client) CreateLine(ctx context.Context, nl domcart.NewLine) (*domcart.Line, error) {
	body := createLineRequest{
		ProductID: nl.ProductID,
		Name:      nl.ProductName,
		UnitPrice: nl.UnitPrice.InexactFloat64(),
		Quantity:  nl.Quantity,
	}

	var rec lineRecord
	if err := c.do(ctx, http.MethodPost, "/cart", body, &rec); err != nil {
		return nil, err
	}
	line := rec.toLine()
	return &line, nil
}

func (c *Client) UpdateLineQuantity(ctx context.Context, lineID string, quantity int64) (*domcart.Line, error) {
	// Rejected before any I/O.
	if quantity < 1 {
		return nil, domcart.ErrInvalidQuantity
	}

	var rec lineRecord
	if err := c.do(ctx, http.MethodPut, "/cart/"+lineID, updateLineRequest{Quantity: quantity}, &rec); err != nil {
		return nil, err
	}
	line := rec.toLine()
	return &line, nil
}

func (c *Client) DeleteLine(ctx context.Context, lineID string) error {
	return c.do(ctx, http.MethodDelete, "/cart/"+lineID, nil, nil)
}

func (rec lineRecord) toLine() domcart.Line {
	return domcart.Line{
		ID:          rec.ID,
		ProductID:   rec.ProductID,
		ProductName: rec.Name,
		UnitPrice:   decimal.NewFromFloat(rec.UnitPrice),
		Quantity:    rec.Quantity,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	op := method + " " + path

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("backend request", zap.String("op", op))

	resp, err := c.http.Do(req)
	if err != nil {
		return &domcart.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Warn("backend request failed",
			zap.String("op", op),
			zap.Int("status", resp.StatusCode))
		return &domcart.TransportError{Op: op, Status: resp.StatusCode}
	}
	if out == nil {
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domcart.TransportError{Op: op, Err: err}
	}
	// A 204 or 200 with an empty body is an empty success payload, not a
	// parse error.
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &domcart.TransportError{Op: op, Err: err}
	}
	return nil
}

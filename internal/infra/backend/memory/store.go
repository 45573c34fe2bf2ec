// Package memory simulates the backend resource in process. The store is a
// faithfully dumb resource: CreateLine never deduplicates by product, the
// one-line-per-product invariant belongs to reconciliation.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	domcart "example.com/storefront/app/internal/domain/cart"
	domproduct "example.com/storefront/app/internal/domain/product"
)

type Store struct {
	mu       sync.Mutex
	products []*domproduct.Product
	lines    []domcart.Line
}

func NewStore(products []*domproduct.Product) *Store {
	return &Store{products: products}
}

func (s *Store) ListProducts(ctx context.Context) ([]*domproduct.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domproduct.Product, 0, len(s.products))
	for _, p := range s.products {
		cloned := *p
		out = append(out, &cloned)
	}
	return out, nil
}

func (s *Store) ListLines(ctx context.Context) ([]domcart.Line, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domcart.Line, len(s.lines))
	copy(out, s.lines)
	return out, nil
}

func (s *Store) CreateLine(ctx context.Context, nl domcart.NewLine) (*domcart.Line, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	line := domcart.Line{
		ID:          uuid.NewString(),
		ProductID:   nl.ProductID,
		ProductName: nl.ProductName,
		UnitPrice:   nl.UnitPrice,
		Quantity:    nl.Quantity,
	}
	s.lines = append(s.lines, line)
	return &line, nil
}

func (s *Store) UpdateLineQuantity(ctx context.Context, lineID string, quantity int64) (*domcart.Line, error) {
	if quantity < 1 {
		return nil, domcart.ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == lineID {
			s.lines[i].Quantity = quantity
			updated := s.lines[i]
			return &updated, nil
		}
	}
	return nil, domcart.ErrLineNotFound
}

func (s *Store) DeleteLine(ctx context.Context, lineID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == lineID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return nil
		}
	}
	return domcart.ErrLineNotFound
}

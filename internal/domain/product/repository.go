package product

import "context"

type Lister interface {
	ListProducts(ctx context.Context) ([]*Product, error)
}

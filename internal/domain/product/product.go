package product

import "github.com/shopspring/decimal"

// Product is a catalog entry. Immutable once fetched.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	ImageURL    string
	Category    string
}

type ListFilter struct {
	Category string
}

func (f ListFilter) Matches(p *Product) bool {
	return f.Category == "" || p.Category == f.Category
}

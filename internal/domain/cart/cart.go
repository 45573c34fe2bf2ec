package cart

import "github.com/shopspring/decimal"

// Line is one cart entry. ID is assigned by the backend and stable for the
// line's lifetime; Quantity is the only mutable field. Name and unit price
// are captured at add time and never re-synced.
type Line struct {
	ID          string
	ProductID   string
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int64
}

func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity))
}

// NewLine carries the fields for creating a line; the backend assigns the ID.
type NewLine struct {
	ProductID   string
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int64
}

// Cart holds at most one line per product. The backend never enforces that
// invariant; reconciliation does.
type Cart struct {
	Lines []Line
}

func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

func (c *Cart) ItemCount() int64 {
	var count int64
	for _, l := range c.Lines {
		count += l.Quantity
	}
	return count
}

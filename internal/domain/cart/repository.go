package cart

import "context"

// Backend is the cart side of the adapter capability set. The REST client
// and the in-memory simulation both satisfy it; the rest of the system is
// indifferent to which one is wired in.
type Backend interface {
	ListLines(ctx context.Context) ([]Line, error)
	CreateLine(ctx context.Context, nl NewLine) (*Line, error)
	UpdateLineQuantity(ctx context.Context, lineID string, quantity int64) (*Line, error)
	DeleteLine(ctx context.Context, lineID string) error
}

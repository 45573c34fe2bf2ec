package storefront

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	domcart "example.com/storefront/app/internal/domain/cart"
	domproduct "example.com/storefront/app/internal/domain/product"
	"example.com/storefront/app/internal/notify"
)

type CatalogSource interface {
	Products(ctx context.Context, filter domproduct.ListFilter) ([]*domproduct.Product, error)
	Lookup(ctx context.Context, productID string) (*domproduct.Product, error)
}

// Renderer receives the full cart after every state-changing operation. The
// view must fully replace prior content, never append.
type Renderer interface {
	RenderCart(c *domcart.Cart)
}

type Service struct {
	catalog  CatalogSource
	backend  domcart.Backend
	notifier notify.Notifier
	renderer Renderer
	logger   *zap.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewService(catalog CatalogSource, backend domcart.Backend, notifier notify.Notifier, renderer Renderer, logger *zap.Logger) *Service {
	return &Service{
		catalog:  catalog,
		backend:  backend,
		notifier: notifier,
		renderer: renderer,
		logger:   logger,
		locks:    make(map[string]*sync.Mutex),
	}
}

// productLock serializes reconciliation per product. Two overlapping adds of
// the same product would otherwise both observe "no existing line" and both
// create one, breaking the one-line-per-product invariant.
func (s *Service) productLock(productID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[productID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[productID] = l
	}
	return l
}

// AddToCart reconciles an add into either a new line or an increment of the
// existing line for the same product. Either way the user's intent is "add",
// so only the "added" notification is emitted.
func (s *Service) AddToCart(ctx context.Context, productID string, desiredQty int64) error {
	if desiredQty < 1 {
		s.notifier.Notify(domcart.ErrInvalidQuantity.Error(), notify.SeverityError)
		return domcart.ErrInvalidQuantity
	}

	p, err := s.catalog.Lookup(ctx, productID)
	if err != nil {
		s.notifier.Notify("product not found in catalog", notify.SeverityError)
		return err
	}

	lock := s.productLock(productID)
	lock.Lock()
	defer lock.Unlock()

	lines, err := s.backend.ListLines(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var existing *domcart.Line
	for i := range lines {
		if lines[i].ProductID == productID {
			existing = &lines[i]
			break
		}
	}

	if existing != nil {
		newQty := existing.Quantity + desiredQty
		if _, err := s.backend.UpdateLineQuantity(ctx, existing.ID, newQty); err != nil {
			return s.fail(ctx, err)
		}
		s.logger.Info("incremented cart line",
			zap.String("line_id", existing.ID),
			zap.String("product_id", productID),
			zap.Int64("quantity", newQty))
	} else {
		created, err := s.backend.CreateLine(ctx, domcart.NewLine{
			ProductID:   p.ID,
			ProductName: p.Name,
			UnitPrice:   p.Price,
			Quantity:    desiredQty,
		})
		if err != nil {
			return s.fail(ctx, err)
		}
		s.logger.Info("created cart line",
			zap.String("line_id", created.ID),
			zap.String("product_id", productID),
			zap.Int64("quantity", desiredQty))
	}

	s.notifier.Notify(fmt.Sprintf("%q added to cart", p.Name), notify.SeveritySuccess)
	return s.renderCart(ctx)
}

// SetLineQuantity parses raw user input and persists the new quantity. On
// invalid input the backend is left untouched and the cart is re-rendered to
// discard the optimistic edit.
func (s *Service) SetLineQuantity(ctx context.Context, lineID, rawInput string) error {
	qty, err := ParseQuantity(rawInput)
	if err != nil {
		return s.fail(ctx, err)
	}

	line, err := s.backend.UpdateLineQuantity(ctx, lineID, qty)
	if err != nil {
		return s.fail(ctx, err)
	}

	s.logger.Info("updated cart line quantity",
		zap.String("line_id", lineID),
		zap.Int64("quantity", qty))
	s.notifier.Notify(fmt.Sprintf("quantity of %q updated", line.ProductName), notify.SeverityInfo)
	return s.renderCart(ctx)
}

// RemoveLine deletes a line. The yes/no confirmation gate belongs to the
// caller and must run before this is invoked.
func (s *Service) RemoveLine(ctx context.Context, lineID, name string) error {
	if err := s.backend.DeleteLine(ctx, lineID); err != nil {
		return s.fail(ctx, err)
	}

	s.logger.Info("removed cart line", zap.String("line_id", lineID))
	s.notifier.Notify(fmt.Sprintf("%q removed from cart", name), notify.SeverityError)
	return s.renderCart(ctx)
}

func (s *Service) Cart(ctx context.Context) (*domcart.Cart, error) {
	lines, err := s.backend.ListLines(ctx)
	if err != nil {
		return nil, err
	}
	return &domcart.Cart{Lines: lines}, nil
}

func (s *Service) Catalog(ctx context.Context, filter domproduct.ListFilter) ([]*domproduct.Product, error) {
	return s.catalog.Products(ctx, filter)
}

// fail surfaces the error and re-renders the cart so the view converges to
// last-known-good server state.
func (s *Service) fail(ctx context.Context, err error) error {
	s.notifier.Notify(err.Error(), notify.SeverityError)
	if rerr := s.renderCart(ctx); rerr != nil {
		s.logger.Warn("corrective re-render failed", zap.Error(rerr))
	}
	return err
}

func (s *Service) renderCart(ctx context.Context) error {
	c, err := s.Cart(ctx)
	if err != nil {
		return err
	}
	s.renderer.RenderCart(c)
	return nil
}

// ParseQuantity parses raw user input as a cart quantity: a positive
// integer, nothing else.
func ParseQuantity(raw string) (int64, error) {
	qty, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || qty < 1 {
		return 0, domcart.ErrInvalidQuantity
	}
	return qty, nil
}

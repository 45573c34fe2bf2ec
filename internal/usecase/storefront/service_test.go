package storefront

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"example.com/storefront/app/internal/currency"
	domcart "example.com/storefront/app/internal/domain/cart"
	domproduct "example.com/storefront/app/internal/domain/product"
	"example.com/storefront/app/internal/notify"
)

type mockBackend struct {
	mu     sync.Mutex
	lines  []domcart.Line
	nextID int

	listDelay time.Duration
	listErr   error
	createErr error
	updateErr error
	deleteErr error
}

func newMockBackend() *mockBackend {
	return &mockBackend{}
}

func (m *mockBackend) ListLines(ctx context.Context) ([]domcart.Line, error) {
	m.mu.Lock()
	lines := make([]domcart.Line, len(m.lines))
	copy(lines, m.lines)
	delay := m.listDelay
	err := m.listErr
	m.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}
	if err != nil {
		return nil, err
	}
	return lines, nil
}

func (m *mockBackend) CreateLine(ctx context.Context, nl domcart.NewLine) (*domcart.Line, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.createErr != nil {
		return nil, m.createErr
	}
	m.nextID++
	line := domcart.Line{
		ID:          fmt.Sprintf("line-%d", m.nextID),
		ProductID:   nl.ProductID,
		ProductName: nl.ProductName,
		UnitPrice:   nl.UnitPrice,
		Quantity:    nl.Quantity,
	}
	m.lines = append(m.lines, line)
	return &line, nil
}

func (m *mockBackend) UpdateLineQuantity(ctx context.Context, lineID string, quantity int64) (*domcart.Line, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.updateErr != nil {
		return nil, m.updateErr
	}
	for i := range m.lines {
		if m.lines[i].ID == lineID {
			m.lines[i].Quantity = quantity
			updated := m.lines[i]
			return &updated, nil
		}
	}
	return nil, domcart.ErrLineNotFound
}

func (m *mockBackend) DeleteLine(ctx context.Context, lineID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.deleteErr != nil {
		return m.deleteErr
	}
	for i := range m.lines {
		if m.lines[i].ID == lineID {
			m.lines = append(m.lines[:i], m.lines[i+1:]...)
			return nil
		}
	}
	return domcart.ErrLineNotFound
}

type mockCatalog struct {
	products map[string]*domproduct.Product
}

func newMockCatalog(products ...*domproduct.Product) *mockCatalog {
	m := &mockCatalog{products: make(map[string]*domproduct.Product)}
	for _, p := range products {
		m.products[p.ID] = p
	}
	return m
}

func (m *mockCatalog) Products(ctx context.Context, filter domproduct.ListFilter) ([]*domproduct.Product, error) {
	var out []*domproduct.Product
	for _, p := range m.products {
		if filter.Matches(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockCatalog) Lookup(ctx context.Context, productID string) (*domproduct.Product, error) {
	p, ok := m.products[productID]
	if !ok {
		return nil, domproduct.ErrProductNotFound
	}
	return p, nil
}

type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
	severity []notify.Severity
}

func (r *recordingNotifier) Notify(message string, severity notify.Severity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, message)
	r.severity = append(r.severity, severity)
}

func (r *recordingNotifier) last() (string, notify.Severity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.messages) == 0 {
		return "", ""
	}
	return r.messages[len(r.messages)-1], r.severity[len(r.severity)-1]
}

type recordingRenderer struct {
	mu    sync.Mutex
	carts []*domcart.Cart
}

func (r *recordingRenderer) RenderCart(c *domcart.Cart) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.carts = append(r.carts, c)
}

func (r *recordingRenderer) renders() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.carts)
}

func deskProduct() *domproduct.Product {
	return &domproduct.Product{
		ID:    "1",
		Name:  "Desk",
		Price: decimal.RequireFromString("459.90"),
	}
}

func newTestService(backend domcart.Backend, products ...*domproduct.Product) (*Service, *recordingNotifier, *recordingRenderer) {
	notifier := &recordingNotifier{}
	renderer := &recordingRenderer{}
	svc := NewService(newMockCatalog(products...), backend, notifier, renderer, zap.NewNop())
	return svc, notifier, renderer
}

func TestAddToCart_CreatesLineWhenAbsent(t *testing.T) {
	backend := newMockBackend()
	svc, notifier, renderer := newTestService(backend, deskProduct())

	err := svc.AddToCart(context.Background(), "1", 1)
	require.NoError(t, err)

	lines, err := backend.ListLines(context.Background())
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.Equal(t, "1", lines[0].ProductID)
	require.Equal(t, "Desk", lines[0].ProductName)
	require.Equal(t, int64(1), lines[0].Quantity)

	msg, severity := notifier.last()
	require.Contains(t, msg, "added to cart")
	require.Equal(t, notify.SeveritySuccess, severity)
	require.Equal(t, 1, renderer.renders())
}

func TestAddToCart_IncrementsExistingLine(t *testing.T) {
	backend := newMockBackend()
	svc, notifier, _ := newTestService(backend, deskProduct())

	require.NoError(t, svc.AddToCart(context.Background(), "1", 2))
	require.NoError(t, svc.AddToCart(context.Background(), "1", 3))

	lines, err := backend.ListLines(context.Background())
	require.NoError(t, err)
	require.Len(t, lines, 1, "same product must reconcile into one line")
	require.Equal(t, int64(5), lines[0].Quantity)

	// The increment path reports "added", never "updated": the user's
	// intent was an add.
	msg, severity := notifier.last()
	require.Contains(t, msg, "added to cart")
	require.NotContains(t, msg, "updated")
	require.Equal(t, notify.SeveritySuccess, severity)
}

func TestAddToCart_InvalidQuantity(t *testing.T) {
	for _, qty := range []int64{0, -1, -100} {
		t.Run(fmt.Sprintf("quantity %d", qty), func(t *testing.T) {
			backend := newMockBackend()
			svc, _, _ := newTestService(backend, deskProduct())

			err := svc.AddToCart(context.Background(), "1", qty)
			require.ErrorIs(t, err, domcart.ErrInvalidQuantity)

			lines, err := backend.ListLines(context.Background())
			require.NoError(t, err)
			require.Empty(t, lines, "backend must stay untouched")
		})
	}
}

func TestAddToCart_UnknownProduct(t *testing.T) {
	backend := newMockBackend()
	svc, _, _ := newTestService(backend, deskProduct())

	err := svc.AddToCart(context.Background(), "999", 1)
	require.ErrorIs(t, err, domproduct.ErrProductNotFound)

	lines, err := backend.ListLines(context.Background())
	require.NoError(t, err)
	require.Empty(t, lines)
}

func TestAddToCart_TransportErrorTriggersCorrectiveRender(t *testing.T) {
	backend := newMockBackend()
	backend.createErr = &domcart.TransportError{Op: "POST /cart", Status: 500}
	svc, notifier, renderer := newTestService(backend, deskProduct())

	err := svc.AddToCart(context.Background(), "1", 1)

	var terr *domcart.TransportError
	require.ErrorAs(t, err, &terr)
	require.Equal(t, 500, terr.Status)

	_, severity := notifier.last()
	require.Equal(t, notify.SeverityError, severity)
	require.Equal(t, 1, renderer.renders(), "failure must re-render last-known-good state")
	require.Empty(t, renderer.carts[0].Lines)
}

func TestAddToCart_ConcurrentSameProductYieldsOneLine(t *testing.T) {
	backend := newMockBackend()
	// Widen the read-then-write window so an unserialized implementation
	// would create two lines.
	backend.listDelay = 20 * time.Millisecond
	svc, _, _ := newTestService(backend, deskProduct())

	quantities := []int64{1, 2}
	errs := make([]error, len(quantities))

	var wg sync.WaitGroup
	for i, qty := range quantities {
		wg.Add(1)
		go func(i int, q int64) {
			defer wg.Done()
			errs[i] = svc.AddToCart(context.Background(), "1", q)
		}(i, qty)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	lines, err := backend.ListLines(context.Background())
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.Equal(t, int64(3), lines[0].Quantity)
}

func TestSetLineQuantity_Valid(t *testing.T) {
	backend := newMockBackend()
	svc, notifier, _ := newTestService(backend, deskProduct())
	require.NoError(t, svc.AddToCart(context.Background(), "1", 1))

	lines, err := backend.ListLines(context.Background())
	require.NoError(t, err)

	require.NoError(t, svc.SetLineQuantity(context.Background(), lines[0].ID, "5"))

	lines, err = backend.ListLines(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(5), lines[0].Quantity)
	require.True(t, lines[0].Subtotal().Equal(decimal.RequireFromString("2299.50")))

	msg, severity := notifier.last()
	require.Contains(t, msg, "updated")
	require.Equal(t, notify.SeverityInfo, severity)
}

func TestSetLineQuantity_InvalidInput(t *testing.T) {
	for _, raw := range []string{"0", "-1", "abc", "", "1.5"} {
		t.Run(fmt.Sprintf("input %q", raw), func(t *testing.T) {
			backend := newMockBackend()
			svc, notifier, renderer := newTestService(backend, deskProduct())
			require.NoError(t, svc.AddToCart(context.Background(), "1", 2))
			before := renderer.renders()

			lines, err := backend.ListLines(context.Background())
			require.NoError(t, err)

			err = svc.SetLineQuantity(context.Background(), lines[0].ID, raw)
			require.ErrorIs(t, err, domcart.ErrInvalidQuantity)

			lines, err = backend.ListLines(context.Background())
			require.NoError(t, err)
			require.Equal(t, int64(2), lines[0].Quantity, "stored quantity must be unchanged")

			_, severity := notifier.last()
			require.Equal(t, notify.SeverityError, severity)
			require.Equal(t, before+1, renderer.renders(), "corrective re-render expected")
		})
	}
}

func TestSetLineQuantity_UnknownLine(t *testing.T) {
	backend := newMockBackend()
	svc, _, _ := newTestService(backend, deskProduct())

	err := svc.SetLineQuantity(context.Background(), "missing", "3")
	require.ErrorIs(t, err, domcart.ErrLineNotFound)
}

func TestRemoveLine_OnlyLineLeavesEmptyCart(t *testing.T) {
	backend := newMockBackend()
	svc, notifier, _ := newTestService(backend, deskProduct())
	require.NoError(t, svc.AddToCart(context.Background(), "1", 2))

	lines, err := backend.ListLines(context.Background())
	require.NoError(t, err)

	require.NoError(t, svc.RemoveLine(context.Background(), lines[0].ID, lines[0].ProductName))

	c, err := svc.Cart(context.Background())
	require.NoError(t, err)
	require.Empty(t, c.Lines)
	require.True(t, c.Total().IsZero())
	require.Equal(t, int64(0), c.ItemCount())
	require.Equal(t, "R$ 0,00", currency.Format(c.Total()))

	msg, _ := notifier.last()
	require.Contains(t, msg, "removed from cart")
}

func TestRemoveLine_Unknown(t *testing.T) {
	backend := newMockBackend()
	svc, _, _ := newTestService(backend, deskProduct())

	err := svc.RemoveLine(context.Background(), "missing", "Desk")
	require.ErrorIs(t, err, domcart.ErrLineNotFound)
}

func TestScenario_AddTwiceAccumulatesTotals(t *testing.T) {
	backend := newMockBackend()
	svc, _, _ := newTestService(backend, deskProduct())

	require.NoError(t, svc.AddToCart(context.Background(), "1", 1))

	c, err := svc.Cart(context.Background())
	require.NoError(t, err)
	require.Len(t, c.Lines, 1)
	require.Equal(t, int64(1), c.Lines[0].Quantity)
	require.Equal(t, "R$ 459,90", currency.Format(c.Total()))

	require.NoError(t, svc.AddToCart(context.Background(), "1", 2))

	c, err = svc.Cart(context.Background())
	require.NoError(t, err)
	require.Len(t, c.Lines, 1)
	require.Equal(t, int64(3), c.Lines[0].Quantity)
	require.Equal(t, "R$ 1.379,70", currency.Format(c.Total()))
}

func TestParseQuantity(t *testing.T) {
	qty, err := ParseQuantity(" 5 ")
	require.NoError(t, err)
	require.Equal(t, int64(5), qty)

	for _, raw := range []string{"0", "-3", "x", "2.0", ""} {
		_, err := ParseQuantity(raw)
		require.ErrorIs(t, err, domcart.ErrInvalidQuantity, "input %q", raw)
	}
}

// Package render projects catalog and cart data into styled terminal output
// using lipgloss. Catalog and Cart are pure functions of their input: the
// returned text fully replaces any prior view, so rendering twice with the
// same data yields the same visible state.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	domcart "example.com/storefront/app/internal/domain/cart"
	domproduct "example.com/storefront/app/internal/domain/product"
	"example.com/storefront/app/internal/currency"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	priceStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	totalStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
)

// Catalog renders the product grid, or an empty-state message.
func Catalog(products []*domproduct.Product) string {
	if len(products) == 0 {
		return subtleStyle.Render("No products found.") + "\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Catalog") + "\n\n")
	for _, p := range products {
		b.WriteString(fmt.Sprintf("%s  %s\n", titleStyle.Render(p.Name), subtleStyle.Render("#"+p.ID)))
		if p.Category != "" {
			b.WriteString(subtleStyle.Render(p.Category) + "\n")
		}
		if p.Description != "" {
			b.WriteString(truncate(p.Description, 70) + "\n")
		}
		b.WriteString(priceStyle.Render(currency.Format(p.Price)) + "\n\n")
	}
	return b.String()
}

// Cart renders line items with subtotals, the running total and the item
// count, or the empty-cart message.
func Cart(c *domcart.Cart) string {
	if len(c.Lines) == 0 {
		var b strings.Builder
		b.WriteString(subtleStyle.Render("Your cart is empty.") + "\n")
		b.WriteString(fmt.Sprintf("Total: %s\n", totalStyle.Render(currency.Format(c.Total()))))
		b.WriteString("Items: 0\n")
		return b.String()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Cart") + "\n\n")
	for _, l := range c.Lines {
		b.WriteString(fmt.Sprintf("%s  %s\n", titleStyle.Render(l.ProductName), subtleStyle.Render("line "+l.ID)))
		b.WriteString(fmt.Sprintf("  %d x %s = %s\n", l.Quantity, currency.Format(l.UnitPrice), priceStyle.Render(currency.Format(l.Subtotal()))))
	}
	b.WriteString(fmt.Sprintf("\nTotal: %s\n", totalStyle.Render(currency.Format(c.Total()))))
	b.WriteString(fmt.Sprintf("Items: %d\n", c.ItemCount()))
	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

// Terminal writes rendered views to a writer after every state change.
type Terminal struct {
	out io.Writer
}

func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{out: out}
}

func (t *Terminal) RenderCart(c *domcart.Cart) {
	fmt.Fprint(t.out, Cart(c))
}

func (t *Terminal) RenderCatalog(products []*domproduct.Product) {
	fmt.Fprint(t.out, Catalog(products))
}

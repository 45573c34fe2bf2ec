package memory

import (
	"github.com/shopspring/decimal"

	domproduct "example.com/storefront/app/internal/domain/product"
)

// Seed returns the demo furniture catalog used by the simulated backend.
func Seed() []*domproduct.Product {
	return []*domproduct.Product{
		{
			ID:          "1",
			Name:        "Sofá Retrátil 3 Lugares",
			Description: "Sofá retrátil e reclinável com tecido suede e estrutura de madeira.",
			Price:       decimal.RequireFromString("1899.90"),
			ImageURL:    "https://placehold.co/400x300?text=Sofa",
			Category:    "Sala",
		},
		{
			ID:          "2",
			Name:        "Mesa de Jantar 6 Cadeiras",
			Description: "Mesa de jantar em MDF com tampo de vidro e seis cadeiras estofadas.",
			Price:       decimal.RequireFromString("1249.00"),
			ImageURL:    "https://placehold.co/400x300?text=Mesa",
			Category:    "Sala",
		},
		{
			ID:          "3",
			Name:        "Guarda-Roupa Casal",
			Description: "Guarda-roupa de casal com seis portas, três gavetas e espelho.",
			Price:       decimal.RequireFromString("999.90"),
			ImageURL:    "https://placehold.co/400x300?text=Guarda-Roupa",
			Category:    "Quarto",
		},
		{
			ID:          "4",
			Name:        "Escrivaninha Home Office",
			Description: "Escrivaninha compacta com nicho para livros e suporte para monitor.",
			Price:       decimal.RequireFromString("459.90"),
			ImageURL:    "https://placehold.co/400x300?text=Escrivaninha",
			Category:    "Escritório",
		},
		{
			ID:          "5",
			Name:        "Estante para Livros",
			Description: "Estante com cinco prateleiras em madeira maciça.",
			Price:       decimal.RequireFromString("389.50"),
			ImageURL:    "https://placehold.co/400x300?text=Estante",
			Category:    "Escritório",
		},
	}
}

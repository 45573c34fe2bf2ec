package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"example.com/storefront/app/internal/catalog"
	domcart "example.com/storefront/app/internal/domain/cart"
	domproduct "example.com/storefront/app/internal/domain/product"
	"example.com/storefront/app/internal/infra/backend/memory"
	"example.com/storefront/app/internal/infra/backend/rest"
	"example.com/storefront/app/internal/notify"
	"example.com/storefront/app/internal/render"
	"example.com/storefront/app/internal/usecase/storefront"
)

var backendFlag string

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Catalog and shopping cart CLI",
	Long: `storefront browses a product catalog and maintains a shopping cart
against a REST backend or an in-memory simulation.

Select the backend with --backend: "memory" for the built-in simulation, or
a base URL such as http://localhost:8080 for a remote cart resource.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&backendFlag, "backend",
		getenv("STOREFRONT_BACKEND", "memory"),
		`backend: "memory" or a base URL`)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func newLogger() (*zap.Logger, error) {
	return zap.NewProduction()
}

// newService wires the selected backend adapter into the storefront core.
func newService(cmd *cobra.Command, logger *zap.Logger) *storefront.Service {
	var (
		lister  domproduct.Lister
		backend domcart.Backend
	)
	if backendFlag == "memory" {
		store := memory.NewStore(memory.Seed())
		lister, backend = store, store
	} else {
		client := rest.NewClient(backendFlag, logger)
		lister, backend = client, client
	}

	cache := catalog.NewCache(lister)
	notifier := notify.NewTerminal(cmd.OutOrStdout())
	renderer := render.NewTerminal(cmd.OutOrStdout())
	return storefront.NewService(cache, backend, notifier, renderer, logger)
}

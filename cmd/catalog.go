package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	domproduct "example.com/storefront/app/internal/domain/product"
	"example.com/storefront/app/internal/render"
)

var catalogCategory string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List products in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		svc := newService(cmd, logger)
		products, err := svc.Catalog(cmd.Context(), domproduct.ListFilter{Category: catalogCategory})
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), render.Catalog(products))
		return nil
	},
}

func init() {
	catalogCmd.Flags().StringVar(&catalogCategory, "category", "", "filter by category")
	rootCmd.AddCommand(catalogCmd)
}

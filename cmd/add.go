package cmd

import (
	"github.com/spf13/cobra"
)

var addQuantity int64

var addCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Add a product to the cart",
	Long: `Adds a product to the cart. If a cart line for the product already
exists its quantity is incremented; otherwise a new line is created.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		svc := newService(cmd, logger)
		return svc.AddToCart(cmd.Context(), args[0], addQuantity)
	},
}

func init() {
	addCmd.Flags().Int64VarP(&addQuantity, "quantity", "q", 1, "quantity to add")
	rootCmd.AddCommand(addCmd)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"example.com/storefront/app/internal/render"
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Show the cart with subtotals, total and item count",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		svc := newService(cmd, logger)
		c, err := svc.Cart(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), render.Cart(c))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cartCmd)
}

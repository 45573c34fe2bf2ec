package cmd

import (
	"github.com/spf13/cobra"
)

var setQuantityCmd = &cobra.Command{
	Use:   "set-quantity <line-id> <quantity>",
	Short: "Set the quantity of a cart line",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		svc := newService(cmd, logger)
		// Raw input goes to the core untouched; it owns the validation.
		return svc.SetLineQuantity(cmd.Context(), args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(setQuantityCmd)
}

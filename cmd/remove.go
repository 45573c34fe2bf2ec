package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	domcart "example.com/storefront/app/internal/domain/cart"
)

var removeForce bool

var removeCmd = &cobra.Command{
	Use:   "remove <line-id>",
	Short: "Remove a line from the cart",
	Args:  cobra.ExactArgs(1),
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
		var line *domcart.Line
		for i := range c.Lines {
			if c.Lines[i].ID == args[0] {
				line = &c.Lines[i]
				break
			}
		}
		if line == nil {
			return domcart.ErrLineNotFound
		}

		// Confirmation happens before any state-changing call.
		if !removeForce {
			fmt.Fprintf(cmd.OutOrStdout(), "Remove %q from cart? [y/N]: ", line.ProductName)
			reader := bufio.NewReader(cmd.InOrStdin())
			answer, _ := reader.ReadString('\n')
			answer = strings.ToLower(strings.TrimSpace(answer))
			if answer != "y" && answer != "yes" {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}
		}

		return svc.RemoveLine(cmd.Context(), line.ID, line.ProductName)
	},
}

func init() {
	removeCmd.Flags().BoolVarP(&removeForce, "force", "f", false, "skip confirmation prompt")
	rootCmd.AddCommand(removeCmd)
}

package cmd

import (
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"example.com/storefront/app/internal/infra/backend/memory"
	httpapi "example.com/storefront/app/internal/interface/http"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the simulated backend as an HTTP server",
	Long: `Serves the backend resource contract over HTTP backed by the
in-memory store, so other storefront invocations (or any HTTP client) can
target it with --backend.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		store := memory.NewStore(memory.Seed())
		api := httpapi.NewAPI(store, store, logger)

		logger.Info("listening", zap.String("addr", serveAddr))
		if err := http.ListenAndServe(serveAddr, api.Router()); err != nil {
			logger.Error("server stopped", zap.Error(err))
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", getenv("APP_ADDR", ":8080"), "listen address")
	rootCmd.AddCommand(serveCmd)
}

// Package serve runs the background updater and the HTTP lookup API.
package serve

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tphakala/hamkit/internal/api"
	"github.com/tphakala/hamkit/internal/logger"
	"github.com/tphakala/hamkit/internal/runtime"
)

// Command creates a new cobra.Command that keeps the country database fresh
// and answers lookups over HTTP until the context is cancelled.
func Command(rt *runtime.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the lookup API with periodic database refresh",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			log := logger.Global().Module("serve")

			if err := rt.EnsureDatabase(ctx); err != nil {
				log.Warn("starting with an empty country database", logger.Error(err))
			}

			if err := rt.Resolver.Start(ctx); err != nil {
				return err
			}
			defer rt.Resolver.Stop()

			if !rt.Settings.API.Enabled {
				log.Info("API disabled, running updater only")
				<-ctx.Done()
				return nil
			}

			server := api.New(api.ConfigFromSettings(rt.Settings), rt.Resolver,
				api.WithLogger(api.GetLogger()),
				api.WithMetrics(rt.Metrics))
			return server.Run(ctx)
		},
	}

	if err := setupFlags(cmd); err != nil {
		fmt.Printf("error setting up flags for serve command: %v\n", err)
	}

	return cmd
}

func setupFlags(cmd *cobra.Command) error {
	cmd.Flags().String("listen", viper.GetString("api.listen"), "Address for the HTTP API")
	if err := viper.BindPFlag("api.listen", cmd.Flags().Lookup("listen")); err != nil {
		return fmt.Errorf("error binding flags: %w", err)
	}
	return nil
}
